package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mezze/internal/domain"
)

func TestMutator_MarkNotificationRead(t *testing.T) {
	m, _, _, store, _ := newMutator(t)

	store.SetNotifications([]domain.Notification{
		{ID: "ord-1"},
		{ID: "ord-2"},
	})

	m.MarkNotificationRead("ord-2")

	notifs := store.Notifications()
	assert.False(t, notifs[0].Read)
	assert.True(t, notifs[1].Read)
}

func TestMutator_MarkAllNotificationsRead(t *testing.T) {
	m, _, _, store, _ := newMutator(t)

	store.SetNotifications([]domain.Notification{
		{ID: "ord-1"},
		{ID: "ord-2", Read: true},
		{ID: "ord-3"},
	})

	m.MarkAllNotificationsRead()

	for _, n := range store.Notifications() {
		assert.True(t, n.Read)
	}
}
