package mutate

import (
	"errors"
	"time"

	"mezze/internal/events"
	"mezze/internal/localstore"
)

// ErrAlreadyRated rejects a second rating of the same item from this device.
var ErrAlreadyRated = errors.New("item already rated on this device")

// Mutator implements the write operations. Every operation follows the
// same three phases: validate and normalize, remote write, then a minimal
// local cache patch plus a change signal. A failed remote write aborts
// before any cache mutation, so the cache never shows unconfirmed state.
type Mutator struct {
	remote Remote
	store  *localstore.Store
	bus    *events.Bus
	pinger Pinger
	now    func() time.Time
}

func NewMutator(remote Remote, store *localstore.Store, bus *events.Bus, pinger Pinger) *Mutator {
	return &Mutator{
		remote: remote,
		store:  store,
		bus:    bus,
		pinger: pinger,
		now:    time.Now,
	}
}
