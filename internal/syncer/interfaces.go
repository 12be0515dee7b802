package syncer

import (
	"context"
	"time"

	"mezze/internal/domain"
	"mezze/internal/gateway"
)

// CatalogSource is the slice of the remote gateway the public catalog
// sync needs.
type CatalogSource interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	MenuItems(ctx context.Context, onlyAvailable bool, offset, limit int) ([]domain.MenuItem, error)
}

// AdminSource adds the bounded bulk reads used by the admin sync.
type AdminSource interface {
	CatalogSource
	OrdersSince(ctx context.Context, since time.Time, limit int) ([]domain.Order, error)
	OrderItems(ctx context.Context, orderIDs []string) ([]domain.OrderLine, error)
	ReservationsBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.Reservation, error)
	Ratings(ctx context.Context, limit int) ([]domain.RatingEntry, error)
}

var _ AdminSource = (*gateway.Client)(nil)
