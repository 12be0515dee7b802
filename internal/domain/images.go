package domain

import (
	"encoding/base64"
	"strings"
)

// DefaultImage is served when an item has no usable image reference.
const DefaultImage = "/assets/img/placeholder.png"

// EncodeImage wraps raw image bytes as a self-describing data URI so the
// payload can be stored in a plain text column.
func EncodeImage(data []byte, mime string) string {
	if len(data) == 0 {
		return ""
	}
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ResolveImage normalizes a stored image reference into something the UI can
// load directly: data URIs and absolute URLs pass through, bare paths are
// resolved against baseURL, anything empty falls back to DefaultImage.
func ResolveImage(ref, baseURL string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return DefaultImage
	}
	if strings.HasPrefix(ref, "data:") ||
		strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") {
		return ref
	}
	if baseURL == "" {
		return DefaultImage
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(ref, "/")
}
