package localstore

import "mezze/internal/domain"

// Typed accessors over the collection keys. Readers always get a non-nil
// slice/map even when the key has never been written.

func (s *Store) Categories() []domain.Category {
	v := []domain.Category{}
	s.Get(KeyCategories, &v)
	return v
}

func (s *Store) SetCategories(v []domain.Category) { s.Set(KeyCategories, v) }

func (s *Store) MenuItems() []domain.MenuItem {
	v := []domain.MenuItem{}
	s.Get(KeyMenuItems, &v)
	return v
}

func (s *Store) SetMenuItems(v []domain.MenuItem) { s.Set(KeyMenuItems, v) }

func (s *Store) Cart() []domain.CartLine {
	v := []domain.CartLine{}
	s.Get(KeyCart, &v)
	return v
}

func (s *Store) SetCart(v []domain.CartLine) { s.Set(KeyCart, v) }

func (s *Store) Orders() []domain.Order {
	v := []domain.Order{}
	s.Get(KeyOrders, &v)
	return v
}

func (s *Store) SetOrders(v []domain.Order) { s.Set(KeyOrders, v) }

func (s *Store) Notifications() []domain.Notification {
	v := []domain.Notification{}
	s.Get(KeyNotifications, &v)
	return v
}

func (s *Store) SetNotifications(v []domain.Notification) { s.Set(KeyNotifications, v) }

func (s *Store) Ratings() []domain.RatingEntry {
	v := []domain.RatingEntry{}
	s.Get(KeyRatings, &v)
	return v
}

func (s *Store) SetRatings(v []domain.RatingEntry) { s.Set(KeyRatings, v) }

func (s *Store) Reservations() []domain.Reservation {
	v := []domain.Reservation{}
	s.Get(KeyReservations, &v)
	return v
}

func (s *Store) SetReservations(v []domain.Reservation) { s.Set(KeyReservations, v) }

// UserRated maps item id -> stars given on this device.
func (s *Store) UserRated() map[string]int {
	v := map[string]int{}
	s.Get(KeyUserRated, &v)
	return v
}

func (s *Store) SetUserRated(v map[string]int) { s.Set(KeyUserRated, v) }
