package cart

import (
	"mezze/internal/domain"
	"mezze/internal/localstore"
)

// Service holds the cart arithmetic. The cart lives entirely in the local
// cache; it never touches the remote backend.
type Service struct {
	store *localstore.Store
}

func NewService(store *localstore.Store) *Service {
	return &Service{store: store}
}

// Add merges the item into the cart: one line per item id, quantity bumped
// when the line already exists.
func (s *Service) Add(item domain.MenuItem) {
	lines := s.store.Cart()
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Qty++
			s.store.SetCart(lines)
			return
		}
	}
	lines = append(lines, domain.CartLine{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Qty:   1,
		Img:   item.Img,
	})
	s.store.SetCart(lines)
}

func (s *Service) Increment(id string) {
	lines := s.store.Cart()
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Qty++
			s.store.SetCart(lines)
			return
		}
	}
}

// Decrement lowers the quantity; a line reaching zero is removed entirely.
func (s *Service) Decrement(id string) {
	lines := s.store.Cart()
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Qty--
			if lines[i].Qty <= 0 {
				s.Remove(id)
				return
			}
			s.store.SetCart(lines)
			return
		}
	}
}

func (s *Service) Remove(id string) {
	lines := s.store.Cart()
	kept := lines[:0]
	for _, line := range lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	s.store.SetCart(kept)
}

func (s *Service) Clear() {
	s.store.SetCart([]domain.CartLine{})
}

func (s *Service) Lines() []domain.CartLine {
	return s.store.Cart()
}

// Total is Σ(price × qty) over the remaining lines.
func (s *Service) Total() float64 {
	var total float64
	for _, line := range s.store.Cart() {
		total += line.Price * float64(line.Qty)
	}
	return total
}

// Count is the number of units in the cart, not the number of lines.
func (s *Service) Count() int {
	var count int
	for _, line := range s.store.Cart() {
		count += line.Qty
	}
	return count
}
