package syncer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mezze/internal/domain"
	"mezze/internal/events"
	"mezze/internal/localstore"
	"mezze/internal/mocks"
)

func TestAdminEngine_SyncMirrorsWorkingSet(t *testing.T) {
	src := mocks.NewAdminSource(t)
	bus := events.NewBus()
	store := localstore.NewMemory(bus)
	engine := NewAdminEngine(src, store, bus)

	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return base }

	// Previously stored feed: ord-1 was read, plus one non-order entry.
	store.SetNotifications([]domain.Notification{
		{ID: "ord-1", Type: "order", Read: true, Time: base.Add(-2 * time.Hour)},
		{ID: "res-note", Type: "reservation", Time: base.Add(-30 * time.Minute)},
	})

	orders := []domain.Order{
		{ID: "1", Total: 2500, CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "2", Total: 500, CreatedAt: base.Add(-1 * time.Hour)},
	}
	lines := []domain.OrderLine{
		{OrderID: "1", Item: domain.OrderItem{ID: "a", Name: "Kebab", Price: 1000, Qty: 2}},
		{OrderID: "1", Item: domain.OrderItem{ID: "b", Name: "Hummus", Price: 500, Qty: 1}},
		{OrderID: "2", Item: domain.OrderItem{ID: "b", Name: "Hummus", Price: 500, Qty: 1}},
	}

	src.On("Categories", mock.Anything).Return([]domain.Category{{ID: "grill"}}, nil).Once()
	src.On("MenuItems", mock.Anything, false, 0, allRows).Return([]domain.MenuItem{{ID: "1"}}, nil).Once()
	src.On("OrdersSince", mock.Anything, base.AddDate(0, 0, -ordersDaysBack), ordersLimit).Return(orders, nil).Once()
	src.On("OrderItems", mock.Anything, []string{"1", "2"}).Return(lines, nil).Once()
	src.On("ReservationsBetween", mock.Anything,
		base.AddDate(0, 0, -reservationsDaysBack), base.AddDate(0, 0, reservationsDaysFwd),
		reservationsLimit).Return([]domain.Reservation{{ID: "4"}}, nil).Once()
	src.On("Ratings", mock.Anything, ratingsLimit).Return([]domain.RatingEntry{{ItemID: "1", Stars: 5}}, nil).Once()

	var synced int
	bus.Subscribe(events.AdminSynced, func(events.Event) { synced++ })

	assert.NoError(t, engine.Sync(context.Background()))
	assert.Equal(t, 1, synced)

	gotOrders := store.Orders()
	assert.Len(t, gotOrders, 2)
	assert.Equal(t, 3, gotOrders[0].ItemCount)
	assert.Len(t, gotOrders[0].Items, 2)
	assert.Equal(t, 1, gotOrders[1].ItemCount)

	assert.Len(t, store.Reservations(), 1)
	assert.Len(t, store.Ratings(), 1)

	notifs := store.Notifications()
	assert.Len(t, notifs, 3)
	byID := map[string]domain.Notification{}
	for _, n := range notifs {
		byID[n.ID] = n
	}
	assert.True(t, byID["ord-1"].Read, "read flag must survive regeneration")
	assert.False(t, byID["ord-2"].Read)
	assert.Contains(t, byID, "res-note")
	// Sorted by time descending.
	assert.Equal(t, "ord-2", notifs[0].ID)
}

func TestAdminEngine_RemoteFailureAborts(t *testing.T) {
	src := mocks.NewAdminSource(t)
	bus := events.NewBus()
	store := localstore.NewMemory(bus)
	engine := NewAdminEngine(src, store, bus)

	store.SetOrders([]domain.Order{{ID: "keep"}})

	src.On("Categories", mock.Anything).Return([]domain.Category{}, nil).Once()
	src.On("MenuItems", mock.Anything, false, 0, allRows).Return(nil, assert.AnError).Once()

	assert.Error(t, engine.Sync(context.Background()))
	assert.Equal(t, []domain.Order{{ID: "keep"}}, store.Orders())
}

func TestChunkIDs(t *testing.T) {
	ids := make([]string, 2500)
	for i := range ids {
		ids[i] = domain.FormatServerID(int64(i))
	}

	chunks := chunkIDs(ids, 1000)
	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 1000)
	assert.Len(t, chunks[2], 500)

	assert.Nil(t, chunkIDs(nil, 1000))
}
