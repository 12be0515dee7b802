package syncer

import (
	"fmt"
	"sort"

	"mezze/internal/domain"
)

const notificationTypeOrder = "order"

// OrderNotificationID is the stable id a given order's notification keeps
// across regenerations.
func OrderNotificationID(orderID string) string {
	return "ord-" + orderID
}

// OrderNotifications derives the notification feed entries for a fresh
// order list. Entries start unread; MergeNotifications restores read flags.
func OrderNotifications(orders []domain.Order) []domain.Notification {
	notifs := make([]domain.Notification, 0, len(orders))
	for _, o := range orders {
		notifs = append(notifs, domain.Notification{
			ID:      OrderNotificationID(o.ID),
			Type:    notificationTypeOrder,
			Title:   fmt.Sprintf("New order #%s", o.ID),
			Message: fmt.Sprintf("Items: %d | Total: %.0f", o.ItemCount, o.Total),
			Time:    o.CreatedAt,
		})
	}
	return notifs
}

// MergeNotifications folds freshly derived order notifications into the
// previously stored list: read flags survive by stable id, non-order
// entries pass through unchanged, and the result is sorted by time
// descending. Pure function.
func MergeNotifications(prev, fresh []domain.Notification) []domain.Notification {
	prevByID := make(map[string]domain.Notification, len(prev))
	for _, n := range prev {
		prevByID[n.ID] = n
	}

	merged := make([]domain.Notification, 0, len(prev)+len(fresh))
	for _, n := range prev {
		if n.Type != notificationTypeOrder {
			merged = append(merged, n)
		}
	}
	for _, n := range fresh {
		if old, ok := prevByID[n.ID]; ok {
			n.Read = old.Read
		}
		merged = append(merged, n)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time.After(merged[j].Time)
	})
	return merged
}
