package events

import (
	"log"
	"sync"
	"time"
)

// Signal names published on the bus. The rendering layer re-reads the cache
// whenever one of the synced signals arrives.
const (
	CatalogSynced        = "catalog-synced"
	CatalogPartialSynced = "catalog-partial-synced"
	AdminSynced          = "admin-synced"
	StorageChanged       = "storage-changed"
	NewOrder             = "new-order"
	NewReservation       = "new-reservation"
)

type Event struct {
	Name    string         `json:"name"`
	At      time.Time      `json:"at"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Handler func(Event)

// Bus is a small in-process pub/sub used for cross-component signals.
// Publishing is best-effort: a panicking handler is logged and skipped,
// it never aborts the operation that raised the signal.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]Handler
	all    map[int]Handler
	nextID int
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string][]Handler),
		all:  make(map[int]Handler),
	}
}

func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[name] = append(b.subs[name], h)
}

// SubscribeAll registers a handler for every event regardless of name.
// The returned cancel detaches the handler, for subscribers that outlive
// a single operation such as event-stream connections.
func (b *Bus) SubscribeAll(h Handler) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.all[id] = h
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.all, id)
	}
}

func (b *Bus) Publish(name string, payload map[string]any) {
	ev := Event{Name: name, At: time.Now(), Payload: payload}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[name])+len(b.all))
	handlers = append(handlers, b.subs[name]...)
	for _, h := range b.all {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		safeCall(h, ev)
	}
}

func safeCall(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("events: handler panic on %s: %v", ev.Name, r)
		}
	}()
	h(ev)
}
