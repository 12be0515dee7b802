package domain

import (
	"math"
	"strconv"
	"strings"
)

// DescMaxLen caps item descriptions so cached payloads stay small.
const DescMaxLen = 160

const TempIDPrefix = "tmp-"

// SanitizeDesc truncates a description to DescMaxLen runes.
func SanitizeDesc(s string) string {
	r := []rune(s)
	if len(r) > DescMaxLen {
		return string(r[:DescMaxLen])
	}
	return s
}

// NonNegative coerces a price-like value, mapping NaN/negative to zero.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// QtyOrDefault returns qty, or def when qty is not positive.
func QtyOrDefault(qty, def int) int {
	if qty <= 0 {
		return def
	}
	return qty
}

// ClampStars forces a star rating into [1,5].
func ClampStars(stars int) int {
	if stars < 1 {
		return 1
	}
	if stars > 5 {
		return 5
	}
	return stars
}

// Round2 rounds to 2 decimals, the precision kept for rating averages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NextAvg folds one more star into a running mean.
func NextAvg(avg float64, count, stars int) float64 {
	return Round2((avg*float64(count) + float64(stars)) / float64(count+1))
}

// IsTempID reports whether an identifier is a client-generated placeholder
// that does not exist remotely yet: either an explicit tmp- token or any
// value that is not a server-assigned integer (e.g. a UUID).
func IsTempID(id string) bool {
	if strings.HasPrefix(id, TempIDPrefix) {
		return true
	}
	_, err := strconv.ParseInt(id, 10, 64)
	return err != nil
}

// ParseServerID converts a client-side id back to the backend's integer key.
func ParseServerID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatServerID renders a backend serial as the client-side string id.
func FormatServerID(n int64) string {
	return strconv.FormatInt(n, 10)
}
