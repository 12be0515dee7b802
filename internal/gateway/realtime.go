package gateway

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

// LiveTopic is the broadcast channel shared by all surfaces.
const LiveTopic = "live"

// Broadcast events sent over LiveTopic.
const (
	EventNewOrder       = "new-order"
	EventNewReservation = "new-reservation"
	EventAdminRefresh   = "admin-refresh"
	EventPing           = "ping"
)

// LiveEvent is the envelope carried on the live channel.
type LiveEvent struct {
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Broadcaster publishes best-effort pings to admin surfaces. Failures are
// logged and dropped; a broadcast is a notification of opportunity, never
// correctness-critical.
type Broadcaster struct {
	writer *kafka.Writer
}

func NewBroadcaster(writer *kafka.Writer) *Broadcaster {
	return &Broadcaster{writer: writer}
}

func (b *Broadcaster) Ping(ctx context.Context, event string, payload map[string]any) {
	if b == nil || b.writer == nil {
		return
	}
	value, err := json.Marshal(LiveEvent{Event: event, Payload: payload})
	if err != nil {
		log.Printf("realtime: marshal %s: %v", event, err)
		return
	}
	if err := b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event),
		Value: value,
	}); err != nil {
		log.Printf("realtime: broadcast %s failed: %v", event, err)
	}
}

func (b *Broadcaster) Close() {
	if b != nil && b.writer != nil {
		b.writer.Close()
	}
}

// Listener consumes the live channel and hands decoded events to a handler.
type Listener struct {
	reader *kafka.Reader
}

func NewListener(reader *kafka.Reader) *Listener {
	return &Listener{reader: reader}
}

// Run blocks reading the live channel until ctx is done. Malformed messages
// are logged and skipped.
func (l *Listener) Run(ctx context.Context, handle func(LiveEvent)) {
	for {
		message, err := l.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("realtime: read: %v", err)
			continue
		}

		var ev LiveEvent
		if err := json.Unmarshal(message.Value, &ev); err != nil {
			log.Printf("realtime: decode: %v", err)
			continue
		}
		handle(ev)
	}
}

func (l *Listener) Close() {
	if l != nil && l.reader != nil {
		l.reader.Close()
	}
}
