package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishRouting(t *testing.T) {
	bus := NewBus()

	var synced, all int
	bus.Subscribe(CatalogSynced, func(Event) { synced++ })
	bus.SubscribeAll(func(Event) { all++ })

	bus.Publish(CatalogSynced, nil)
	bus.Publish(AdminSynced, map[string]any{"at": 1})

	assert.Equal(t, 1, synced)
	assert.Equal(t, 2, all)
}

func TestBus_SubscribeAllCancel(t *testing.T) {
	bus := NewBus()

	var all int
	cancel := bus.SubscribeAll(func(Event) { all++ })

	bus.Publish(AdminSynced, nil)
	cancel()
	bus.Publish(AdminSynced, nil)

	assert.Equal(t, 1, all)
}

func TestBus_PanickingHandlerIsIsolated(t *testing.T) {
	bus := NewBus()

	var reached bool
	bus.Subscribe(NewOrder, func(Event) { panic("boom") })
	bus.Subscribe(NewOrder, func(Event) { reached = true })

	assert.NotPanics(t, func() { bus.Publish(NewOrder, nil) })
	assert.True(t, reached)
}
