package mutate

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mezze/internal/domain"
	"mezze/internal/events"
	"mezze/internal/gateway"
)

const defaultReservationMinutes = 90

// ReservationInput is the public reservation form payload.
type ReservationInput struct {
	Name     string
	Phone    string
	Date     time.Time
	People   int
	Kind     string
	Table    string
	Notes    string
	Duration int
}

// CreateReservation inserts remotely (insert-only, no read-back) and
// records a local entry under a temporary id. The temporary id is
// reconciled to the server id only by a later full admin resync.
func (m *Mutator) CreateReservation(ctx context.Context, in ReservationInput) (domain.Reservation, error) {
	if in.Kind == "" {
		in.Kind = "table"
	}
	if in.Duration <= 0 {
		in.Duration = defaultReservationMinutes
	}

	r := domain.Reservation{
		Name:     in.Name,
		Phone:    in.Phone,
		Date:     in.Date,
		People:   in.People,
		Kind:     in.Kind,
		Table:    in.Table,
		Notes:    in.Notes,
		Duration: in.Duration,
	}
	if err := m.remote.InsertReservation(ctx, r); err != nil {
		return domain.Reservation{}, err
	}

	r.ID = uuid.NewString()
	r.Status = "new"
	r.CreatedAt = m.now()
	m.store.SetReservations(append([]domain.Reservation{r}, m.store.Reservations()...))

	// Both the specific event and the legacy generic one, for older
	// admin listeners that only watch new-order.
	m.bus.Publish(events.NewReservation, map[string]any{"name": r.Name})
	m.pinger.Ping(ctx, gateway.EventNewReservation, map[string]any{
		"name": r.Name, "phone": r.Phone, "date": r.Date, "people": r.People,
	})
	m.pinger.Ping(ctx, gateway.EventNewOrder, map[string]any{"kind": "reservation"})
	return r, nil
}

// UpdateReservation patches a reservation. Temporary ids short-circuit to
// a local-only edit: the row does not exist remotely yet.
func (m *Mutator) UpdateReservation(ctx context.Context, id string, patch gateway.ReservationPatch) error {
	if !domain.IsTempID(id) {
		if err := m.remote.UpdateReservation(ctx, id, patch); err != nil {
			return err
		}
		m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "reservation", "op": "update", "id": id})
	}

	list := m.store.Reservations()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		applyReservationPatch(&list[i], patch)
		list[i].UpdatedAt = m.now()
		m.store.SetReservations(list)
		break
	}
	return nil
}

func applyReservationPatch(r *domain.Reservation, patch gateway.ReservationPatch) {
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Phone != nil {
		r.Phone = *patch.Phone
	}
	if patch.Date != nil {
		r.Date = *patch.Date
	}
	if patch.People != nil {
		r.People = *patch.People
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.Notes != nil {
		r.Notes = *patch.Notes
	}
	if patch.Table != nil {
		r.Table = *patch.Table
	}
	if patch.Duration != nil {
		r.Duration = *patch.Duration
	}
}

// DeleteReservation removes a reservation; temporary ids never reach the
// backend.
func (m *Mutator) DeleteReservation(ctx context.Context, id string) error {
	if !domain.IsTempID(id) {
		if err := m.remote.DeleteReservation(ctx, id); err != nil {
			return err
		}
	}

	list := m.store.Reservations()
	kept := list[:0]
	for _, r := range list {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	m.store.SetReservations(kept)

	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "reservation", "op": "delete", "id": id})
	return nil
}
