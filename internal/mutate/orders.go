package mutate

import (
	"context"

	"mezze/internal/domain"
	"mezze/internal/events"
	"mezze/internal/gateway"
	"mezze/internal/syncer"
)

// CheckoutInput is the normalized payload for order creation.
type CheckoutInput struct {
	OrderName string
	Phone     string
	Table     string
	Notes     string
	Items     []domain.OrderItem
}

// CreateOrder creates the order and its line items atomically through the
// backend procedure, patches the cache with the server-assigned id and
// pings admin surfaces immediately so they react without waiting for the
// next poll.
func (m *Mutator) CreateOrder(ctx context.Context, in CheckoutInput) (domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, domain.OrderItem{
			ID:    item.ID,
			Name:  item.Name,
			Price: domain.NonNegative(item.Price),
			Qty:   domain.QtyOrDefault(item.Qty, 1),
		})
	}

	id, err := m.remote.CreateOrderWithItems(ctx, in.OrderName, in.Phone, in.Table, in.Notes, items)
	if err != nil {
		return domain.Order{}, err
	}

	var total float64
	var count int
	for _, item := range items {
		total += item.Price * float64(item.Qty)
		count += item.Qty
	}

	now := m.now()
	order := domain.Order{
		ID:        id,
		Total:     total,
		ItemCount: count,
		Time:      now,
		CreatedAt: now,
		Status:    "new",
		Table:     in.Table,
		OrderName: in.OrderName,
		Phone:     in.Phone,
		Notes:     in.Notes,
		Items:     items,
	}
	m.store.SetOrders(append([]domain.Order{order}, m.store.Orders()...))

	m.bus.Publish(events.NewOrder, map[string]any{"id": id})
	m.pinger.Ping(ctx, gateway.EventNewOrder, map[string]any{"id": id})
	return order, nil
}

// UpdateOrder patches an order. A temporary id means the order does not
// exist remotely yet, so the edit stays purely local.
func (m *Mutator) UpdateOrder(ctx context.Context, id string, patch gateway.OrderPatch) error {
	if !domain.IsTempID(id) {
		if err := m.remote.UpdateOrder(ctx, id, patch); err != nil {
			return err
		}
	}

	orders := m.store.Orders()
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if patch.Status != nil {
			orders[i].Status = *patch.Status
		}
		if patch.Additions != nil {
			orders[i].Additions = *patch.Additions
		}
		if patch.Discount != nil {
			orders[i].Discount = domain.NonNegative(*patch.Discount)
		}
		if patch.DiscountPct != nil {
			orders[i].DiscountPct = domain.NonNegative(*patch.DiscountPct)
		}
		m.store.SetOrders(orders)
		break
	}

	m.bus.Publish(events.AdminSynced, nil)
	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "order", "op": "update", "id": id})
	return nil
}

// DeleteOrder removes the order and its derived notification entry.
func (m *Mutator) DeleteOrder(ctx context.Context, id string) error {
	if !domain.IsTempID(id) {
		if err := m.remote.DeleteOrder(ctx, id); err != nil {
			return err
		}
	}

	orders := m.store.Orders()
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	m.store.SetOrders(kept)

	notifID := syncer.OrderNotificationID(id)
	notifs := m.store.Notifications()
	keptNotifs := notifs[:0]
	for _, n := range notifs {
		if n.ID != notifID {
			keptNotifs = append(keptNotifs, n)
		}
	}
	m.store.SetNotifications(keptNotifs)

	m.bus.Publish(events.AdminSynced, nil)
	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "order", "op": "delete", "id": id})
	return nil
}
