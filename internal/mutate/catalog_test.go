package mutate

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mezze/internal/domain"
	"mezze/internal/gateway"
)

func TestMutator_CreateCategoryKeepsSortOrder(t *testing.T) {
	m, remote, pinger, store, _ := newMutator(t)

	store.SetCategories([]domain.Category{
		{ID: "1", Name: "Starters", Sort: 1},
		{ID: "2", Name: "Desserts", Sort: 9},
	})
	remote.On("InsertCategory", mock.Anything, domain.Category{Name: "Grill", Sort: 5}).
		Return(domain.Category{ID: "3", Name: "Grill", Sort: 5}, nil).Once()
	pinger.On("Ping", mock.Anything, gateway.EventAdminRefresh, mock.Anything).Once()

	created, err := m.CreateCategory(context.Background(), domain.Category{Name: "Grill", Sort: 5})

	assert.NoError(t, err)
	assert.Equal(t, "3", created.ID)

	cats := store.Categories()
	assert.Equal(t, []string{"1", "3", "2"}, []string{cats[0].ID, cats[1].ID, cats[2].ID})
}

func TestMutator_CreateMenuItemNormalizesInput(t *testing.T) {
	m, remote, pinger, store, _ := newMutator(t)

	longDesc := strings.Repeat("x", 200)
	remote.On("InsertMenuItem", mock.Anything, gateway.MenuItemInput{
		Name:  "Falafel",
		Desc:  strings.Repeat("x", domain.DescMaxLen),
		Price: 0,
		CatID: "2",
	}).Return(domain.MenuItem{ID: "40", Name: "Falafel"}, nil).Once()
	pinger.On("Ping", mock.Anything, gateway.EventAdminRefresh, mock.Anything).Once()

	created, err := m.CreateMenuItem(context.Background(), MenuItemInput{
		Name:  "Falafel",
		Desc:  longDesc,
		Price: -3,
		CatID: "2",
	})

	assert.NoError(t, err)
	assert.Equal(t, "40", created.ID)
	assert.Equal(t, "40", store.MenuItems()[0].ID, "new item is unshifted")
}

func TestMutator_UpdateMenuItemReplacesCachedRow(t *testing.T) {
	m, remote, pinger, store, _ := newMutator(t)

	store.SetMenuItems([]domain.MenuItem{{ID: "40", Name: "Falafel"}, {ID: "41", Name: "Shawarma"}})
	price := 38.0
	remote.On("UpdateMenuItem", mock.Anything, "40", gateway.MenuItemPatch{Price: &price}).
		Return(domain.MenuItem{ID: "40", Name: "Falafel", Price: 38}, nil).Once()
	pinger.On("Ping", mock.Anything, gateway.EventAdminRefresh, mock.Anything).Once()

	assert.NoError(t, m.UpdateMenuItem(context.Background(), "40", gateway.MenuItemPatch{Price: &price}))

	items := store.MenuItems()
	assert.Equal(t, 38.0, items[0].Price)
	assert.Equal(t, "Shawarma", items[1].Name)
}

func TestMutator_DeleteCategoryLeavesItems(t *testing.T) {
	m, remote, pinger, store, _ := newMutator(t)

	store.SetCategories([]domain.Category{{ID: "1"}, {ID: "2"}})
	store.SetMenuItems([]domain.MenuItem{{ID: "40", CatID: "1"}})
	remote.On("DeleteCategory", mock.Anything, "1").Return(nil).Once()
	pinger.On("Ping", mock.Anything, gateway.EventAdminRefresh, mock.Anything).Once()

	assert.NoError(t, m.DeleteCategory(context.Background(), "1"))

	assert.Len(t, store.Categories(), 1)
	assert.Len(t, store.MenuItems(), 1, "items under the category stay in place")
}

func TestMutator_DeleteMenuItemRemoteFailure(t *testing.T) {
	m, remote, _, store, _ := newMutator(t)

	store.SetMenuItems([]domain.MenuItem{{ID: "40"}})
	remote.On("DeleteMenuItem", mock.Anything, "40").Return(assert.AnError).Once()

	assert.Error(t, m.DeleteMenuItem(context.Background(), "40"))
	assert.Len(t, store.MenuItems(), 1)
}
