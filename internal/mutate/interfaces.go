package mutate

import (
	"context"

	"mezze/internal/domain"
	"mezze/internal/gateway"
)

// Remote is the slice of the gateway the mutation operations write
// through. Remote is the source of truth: the local cache is only patched
// after a remote write succeeds.
type Remote interface {
	CreateOrderWithItems(ctx context.Context, orderName, phone, tableNo, notes string, items []domain.OrderItem) (string, error)
	UpdateOrder(ctx context.Context, id string, patch gateway.OrderPatch) error
	DeleteOrder(ctx context.Context, id string) error

	InsertReservation(ctx context.Context, r domain.Reservation) error
	UpdateReservation(ctx context.Context, id string, patch gateway.ReservationPatch) error
	DeleteReservation(ctx context.Context, id string) error

	InsertCategory(ctx context.Context, cat domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch gateway.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	InsertMenuItem(ctx context.Context, in gateway.MenuItemInput) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, patch gateway.MenuItemPatch) (domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error

	InsertRating(ctx context.Context, itemID string, stars int) error
}

// Pinger sends best-effort broadcasts to admin surfaces.
type Pinger interface {
	Ping(ctx context.Context, event string, payload map[string]any)
}

var (
	_ Remote = (*gateway.Client)(nil)
	_ Pinger = (*gateway.Broadcaster)(nil)
)
