package syncer

import (
	"context"
	"time"

	"mezze/internal/domain"
	"mezze/internal/events"
	"mezze/internal/localstore"
)

// Bounded windows keeping a cold-start sync payload finite regardless of
// data volume.
const (
	ordersDaysBack       = 30
	ordersLimit          = 500
	reservationsDaysBack = 7
	reservationsDaysFwd  = 60
	reservationsLimit    = 1000
	ratingsLimit         = 5000
	orderItemsChunk      = 1000
)

// AdminEngine mirrors the admin working set: full catalog, a bounded
// window of orders with their line items, reservations and raw ratings.
type AdminEngine struct {
	src   AdminSource
	store *localstore.Store
	bus   *events.Bus
	now   func() time.Time
}

func NewAdminEngine(src AdminSource, store *localstore.Store, bus *events.Bus) *AdminEngine {
	return &AdminEngine{
		src:   src,
		store: store,
		bus:   bus,
		now:   time.Now,
	}
}

// Sync wholesale-replaces every admin collection and regenerates the
// order notification feed, preserving read flags by stable id. Emits
// admin-synced once on success.
func (e *AdminEngine) Sync(ctx context.Context) error {
	cats, err := e.src.Categories(ctx)
	if err != nil {
		return err
	}

	items, err := e.src.MenuItems(ctx, false, 0, allRows)
	if err != nil {
		return err
	}

	since := e.now().AddDate(0, 0, -ordersDaysBack)
	orders, err := e.src.OrdersSince(ctx, since, ordersLimit)
	if err != nil {
		return err
	}
	if err := e.attachOrderItems(ctx, orders); err != nil {
		return err
	}

	from := e.now().AddDate(0, 0, -reservationsDaysBack)
	to := e.now().AddDate(0, 0, reservationsDaysFwd)
	reservations, err := e.src.ReservationsBetween(ctx, from, to, reservationsLimit)
	if err != nil {
		return err
	}

	ratings, err := e.src.Ratings(ctx, ratingsLimit)
	if err != nil {
		return err
	}

	e.store.SetCategories(emptyIfNil(cats))
	e.store.SetMenuItems(emptyIfNil(items))
	e.store.SetOrders(emptyIfNil(orders))
	e.store.SetReservations(emptyIfNil(reservations))
	e.store.SetRatings(emptyIfNil(ratings))

	merged := MergeNotifications(e.store.Notifications(), OrderNotifications(orders))
	e.store.SetNotifications(merged)

	e.bus.Publish(events.AdminSynced, nil)
	return nil
}

// allRows is an offset-free page large enough for any realistic menu.
const allRows = 1 << 20

// attachOrderItems joins line items onto orders, chunking the id list so a
// single in-list query never grows past the backend's limits.
func (e *AdminEngine) attachOrderItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	byOrder := make(map[string][]domain.OrderItem)
	for _, chunk := range chunkIDs(ids, orderItemsChunk) {
		lines, err := e.src.OrderItems(ctx, chunk)
		if err != nil {
			return err
		}
		for _, line := range lines {
			byOrder[line.OrderID] = append(byOrder[line.OrderID], line.Item)
		}
	}

	for i := range orders {
		items := byOrder[orders[i].ID]
		if items == nil {
			items = []domain.OrderItem{}
		}
		count := 0
		for _, item := range items {
			count += domain.QtyOrDefault(item.Qty, 1)
		}
		orders[i].Items = items
		orders[i].ItemCount = count
	}
	return nil
}

func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
