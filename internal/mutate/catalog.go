package mutate

import (
	"context"
	"sort"

	"mezze/internal/domain"
	"mezze/internal/gateway"
)

// CreateCategory inserts the category and keeps the cached list sorted by
// sort order, the order the UI renders.
func (m *Mutator) CreateCategory(ctx context.Context, cat domain.Category) (domain.Category, error) {
	created, err := m.remote.InsertCategory(ctx, cat)
	if err != nil {
		return domain.Category{}, err
	}

	cats := append(m.store.Categories(), created)
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Sort < cats[j].Sort })
	m.store.SetCategories(cats)

	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "category", "op": "create", "id": created.ID})
	return created, nil
}

func (m *Mutator) UpdateCategory(ctx context.Context, id string, patch gateway.CategoryPatch) error {
	updated, err := m.remote.UpdateCategory(ctx, id, patch)
	if err != nil {
		return err
	}

	cats := m.store.Categories()
	for i := range cats {
		if cats[i].ID == id {
			cats[i] = updated
			m.store.SetCategories(cats)
			break
		}
	}

	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "category", "op": "update", "id": id})
	return nil
}

// DeleteCategory removes the category. Items pointing at it are left in
// place and simply become orphaned (empty CatID after the next resync).
func (m *Mutator) DeleteCategory(ctx context.Context, id string) error {
	if err := m.remote.DeleteCategory(ctx, id); err != nil {
		return err
	}

	cats := m.store.Categories()
	kept := cats[:0]
	for _, cat := range cats {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	m.store.SetCategories(kept)

	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "category", "op": "delete", "id": id})
	return nil
}

// MenuItemInput is the admin payload for a new menu item. The image may be
// a URL, an inline data URI, or raw bytes already encoded via EncodeImage.
type MenuItemInput struct {
	Name      string
	Desc      string
	Price     float64
	Img       string
	CatID     string
	Available bool
	Fresh     bool
}

func (m *Mutator) CreateMenuItem(ctx context.Context, in MenuItemInput) (domain.MenuItem, error) {
	created, err := m.remote.InsertMenuItem(ctx, gateway.MenuItemInput{
		Name:      in.Name,
		Desc:      domain.SanitizeDesc(in.Desc),
		Price:     domain.NonNegative(in.Price),
		Img:       in.Img,
		CatID:     in.CatID,
		Available: in.Available,
		Fresh:     in.Fresh,
	})
	if err != nil {
		return domain.MenuItem{}, err
	}

	m.store.SetMenuItems(append([]domain.MenuItem{created}, m.store.MenuItems()...))

	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "item", "op": "create", "id": created.ID})
	return created, nil
}

func (m *Mutator) UpdateMenuItem(ctx context.Context, id string, patch gateway.MenuItemPatch) error {
	updated, err := m.remote.UpdateMenuItem(ctx, id, patch)
	if err != nil {
		return err
	}

	items := m.store.MenuItems()
	for i := range items {
		if items[i].ID == id {
			items[i] = updated
			m.store.SetMenuItems(items)
			break
		}
	}

	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "item", "op": "update", "id": id})
	return nil
}

func (m *Mutator) DeleteMenuItem(ctx context.Context, id string) error {
	if err := m.remote.DeleteMenuItem(ctx, id); err != nil {
		return err
	}

	items := m.store.MenuItems()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	m.store.SetMenuItems(kept)

	m.pinger.Ping(ctx, gateway.EventAdminRefresh, map[string]any{"kind": "item", "op": "delete", "id": id})
	return nil
}
