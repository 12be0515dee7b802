package localstore

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mezze/internal/events"
)

// Cache keys. Every key defaults to an empty collection; consumers must
// never assume presence.
const (
	KeyCategories    = "categories"
	KeyMenuItems     = "menuItems"
	KeyCart          = "cart"
	KeyOrders        = "orders"
	KeyNotifications = "notifications"
	KeyRatings       = "ratings"
	KeyUserRated     = "userRated"
	KeyReservations  = "reservations"
)

// storageChannel carries cross-process storage-change pings.
const storageChannel = "mezze:storage"

// Store is the single local owner of all cached collections. Values are
// JSON blobs in Redis; when Redis is unavailable (or a write fails) the
// affected key degrades to an in-memory copy. Durability is best-effort
// and persistence failures are never surfaced to callers.
type Store struct {
	rdb      *redis.Client // nil for a memory-only store
	bus      *events.Bus
	ctx      context.Context
	instance string

	mu  sync.Mutex
	mem map[string][]byte
}

func New(rdb *redis.Client, bus *events.Bus) *Store {
	return &Store{
		rdb:      rdb,
		bus:      bus,
		ctx:      context.Background(),
		instance: uuid.NewString(),
		mem:      make(map[string][]byte),
	}
}

// NewMemory builds a store with no Redis behind it. Used in tests and as
// the degraded mode when Redis never came up.
func NewMemory(bus *events.Bus) *Store {
	return New(nil, bus)
}

// Get decodes the value under key into dest. When the key is absent
// everywhere, dest is left untouched, so callers pass in the default.
func (s *Store) Get(key string, dest any) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(s.ctx, key).Bytes()
		if err == nil {
			if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
				return
			}
		}
	}
	s.mu.Lock()
	raw, ok := s.mem[key]
	s.mu.Unlock()
	if ok {
		_ = json.Unmarshal(raw, dest)
	}
}

// Set stores val under key and emits a storage-change signal. A Redis
// failure falls back to the in-memory copy for that key.
func (s *Store) Set(key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		log.Printf("localstore: marshal %s: %v", key, err)
		return
	}

	persisted := false
	if s.rdb != nil {
		if err := s.rdb.Set(s.ctx, key, raw, 0).Err(); err != nil {
			log.Printf("localstore: persist %s failed, keeping in memory: %v", key, err)
		} else {
			persisted = true
		}
	}
	if !persisted {
		s.mu.Lock()
		s.mem[key] = raw
		s.mu.Unlock()
	}

	if s.bus != nil {
		s.bus.Publish(events.StorageChanged, map[string]any{"key": key})
	}
	if persisted {
		// Cross-process ping so other instances re-read the cache.
		_ = s.rdb.Publish(s.ctx, storageChannel, s.instance+" "+key).Err()
	}
}

// Seed ensures every collection key exists with its empty default.
func (s *Store) Seed() {
	lists := []string{
		KeyCategories, KeyMenuItems, KeyCart, KeyOrders,
		KeyNotifications, KeyRatings, KeyReservations,
	}
	for _, key := range lists {
		if !s.exists(key) {
			s.Set(key, []any{})
		}
	}
	if !s.exists(KeyUserRated) {
		s.Set(KeyUserRated, map[string]int{})
	}
}

func (s *Store) exists(key string) bool {
	if s.rdb != nil {
		if n, err := s.rdb.Exists(s.ctx, key).Result(); err == nil && n > 0 {
			return true
		}
	}
	s.mu.Lock()
	_, ok := s.mem[key]
	s.mu.Unlock()
	return ok
}

// ListenRemote forwards storage-change pings published by other processes
// onto the local bus. Pings originating from this instance are skipped.
// Blocks until ctx is done.
func (s *Store) ListenRemote(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	sub := s.rdb.Subscribe(ctx, storageChannel)
	defer sub.Close()

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			return
		}
		instance, key, ok := strings.Cut(msg.Payload, " ")
		if !ok || instance == s.instance {
			continue
		}
		if s.bus != nil {
			s.bus.Publish(events.StorageChanged, map[string]any{"key": key, "remote": true})
		}
	}
}
