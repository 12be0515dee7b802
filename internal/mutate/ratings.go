package mutate

import (
	"context"

	"mezze/internal/domain"
	"mezze/internal/events"
)

// RateItem records one star rating for an item. One rating per item per
// device: a repeat is rejected without mutating anything. On success the
// cached item's running mean is advanced; the authoritative aggregate is
// recomputed only by the next full resync.
func (m *Mutator) RateItem(ctx context.Context, itemID string, stars int) error {
	stars = domain.ClampStars(stars)

	rated := m.store.UserRated()
	if _, ok := rated[itemID]; ok {
		return ErrAlreadyRated
	}

	if err := m.remote.InsertRating(ctx, itemID, stars); err != nil {
		return err
	}

	items := m.store.MenuItems()
	for i := range items {
		if items[i].ID == itemID {
			r := items[i].Rating
			items[i].Rating = domain.Rating{
				Avg:   domain.NextAvg(r.Avg, r.Count, stars),
				Count: r.Count + 1,
			}
			m.store.SetMenuItems(items)
			break
		}
	}

	rated[itemID] = stars
	m.store.SetUserRated(rated)

	m.bus.Publish(events.CatalogSynced, nil)
	return nil
}
