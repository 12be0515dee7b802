package mutate

import "mezze/internal/events"

// Notification read state is purely local: the backend never stores it,
// so these operations skip the remote phase entirely.

func (m *Mutator) MarkNotificationRead(id string) {
	notifs := m.store.Notifications()
	for i := range notifs {
		if notifs[i].ID == id {
			notifs[i].Read = true
			m.store.SetNotifications(notifs)
			break
		}
	}
	m.bus.Publish(events.AdminSynced, nil)
}

func (m *Mutator) MarkAllNotificationsRead() {
	notifs := m.store.Notifications()
	for i := range notifs {
		notifs[i].Read = true
	}
	m.store.SetNotifications(notifs)
	m.bus.Publish(events.AdminSynced, nil)
}
