package mutate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mezze/internal/domain"
	"mezze/internal/events"
	"mezze/internal/gateway"
	"mezze/internal/localstore"
	"mezze/internal/mocks"
)

func newMutator(t *testing.T) (*Mutator, *mocks.Remote, *mocks.Pinger, *localstore.Store, *events.Bus) {
	t.Helper()
	remote := mocks.NewRemote(t)
	pinger := mocks.NewPinger(t)
	bus := events.NewBus()
	store := localstore.NewMemory(bus)
	return NewMutator(remote, store, bus, pinger), remote, pinger, store, bus
}

func TestMutator_CreateOrderCheckout(t *testing.T) {
	m, remote, pinger, store, bus := newMutator(t)
	m.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }

	normalized := []domain.OrderItem{
		{ID: "a", Name: "Kebab", Price: 1000, Qty: 2},
		{ID: "b", Name: "Hummus", Price: 500, Qty: 1},
	}
	remote.On("CreateOrderWithItems", mock.Anything, "Abu Ahmad", "", "5", "", normalized).
		Return("321", nil).Once()
	pinger.On("Ping", mock.Anything, gateway.EventNewOrder, map[string]any{"id": "321"}).Once()

	var pushed int
	bus.Subscribe(events.NewOrder, func(events.Event) { pushed++ })

	order, err := m.CreateOrder(context.Background(), CheckoutInput{
		OrderName: "Abu Ahmad",
		Table:     "5",
		Items: []domain.OrderItem{
			{ID: "a", Name: "Kebab", Price: 1000, Qty: 2},
			{ID: "b", Name: "Hummus", Price: 500, Qty: 1},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "321", order.ID)
	assert.Equal(t, 2500.0, order.Total)
	assert.Equal(t, 3, order.ItemCount)
	assert.Equal(t, "new", order.Status)
	assert.Equal(t, 1, pushed)

	cached := store.Orders()
	assert.Len(t, cached, 1)
	assert.Equal(t, "321", cached[0].ID, "order must be unshifted into the cache")
}

func TestMutator_CreateOrderRemoteFailureLeavesCacheUntouched(t *testing.T) {
	m, remote, _, store, _ := newMutator(t)

	remote.On("CreateOrderWithItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError).Once()

	_, err := m.CreateOrder(context.Background(), CheckoutInput{
		Items: []domain.OrderItem{{ID: "a", Price: 1000, Qty: 1}},
	})

	assert.Error(t, err)
	assert.Empty(t, store.Orders())
}

func TestMutator_CreateOrderNormalizesQuantities(t *testing.T) {
	m, remote, pinger, _, _ := newMutator(t)

	remote.On("CreateOrderWithItems", mock.Anything, "", "", "", "",
		[]domain.OrderItem{{ID: "a", Price: 0, Qty: 1}}).Return("1", nil).Once()
	pinger.On("Ping", mock.Anything, gateway.EventNewOrder, mock.Anything).Once()

	order, err := m.CreateOrder(context.Background(), CheckoutInput{
		Items: []domain.OrderItem{{ID: "a", Price: -7, Qty: 0}},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, order.ItemCount)
	assert.Equal(t, 0.0, order.Total)
}

func TestMutator_UpdateOrderTempIDSkipsRemote(t *testing.T) {
	m, _, pinger, store, _ := newMutator(t)

	store.SetOrders([]domain.Order{{ID: "tmp-1699", Status: "new"}})
	pinger.On("Ping", mock.Anything, gateway.EventAdminRefresh, mock.Anything).Once()

	status := "done"
	err := m.UpdateOrder(context.Background(), "tmp-1699", gateway.OrderPatch{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, "done", store.Orders()[0].Status)
	// remote mock has no expectations: any remote call would fail the test
}

func TestMutator_DeleteOrderRemovesNotification(t *testing.T) {
	m, remote, pinger, store, _ := newMutator(t)

	store.SetOrders([]domain.Order{{ID: "9"}, {ID: "10"}})
	store.SetNotifications([]domain.Notification{
		{ID: "ord-9", Type: "order"},
		{ID: "ord-10", Type: "order"},
	})

	remote.On("DeleteOrder", mock.Anything, "9").Return(nil).Once()
	pinger.On("Ping", mock.Anything, gateway.EventAdminRefresh, mock.Anything).Once()

	assert.NoError(t, m.DeleteOrder(context.Background(), "9"))

	assert.Len(t, store.Orders(), 1)
	notifs := store.Notifications()
	assert.Len(t, notifs, 1)
	assert.Equal(t, "ord-10", notifs[0].ID)
}
