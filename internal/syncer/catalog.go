package syncer

import (
	"context"
	"log"
	"sync"

	"mezze/internal/domain"
	"mezze/internal/events"
	"mezze/internal/localstore"
)

const (
	catalogFirstPage = 200
	hydrationPage    = 400
)

// CatalogEngine pulls categories and available menu items into the cache.
// The first page lands synchronously so the UI can render immediately;
// the remainder hydrates in the background page by page.
type CatalogEngine struct {
	src   CatalogSource
	store *localstore.Store
	bus   *events.Bus

	firstPage   int
	hydratePage int
	wg          sync.WaitGroup
}

func NewCatalogEngine(src CatalogSource, store *localstore.Store, bus *events.Bus) *CatalogEngine {
	return &CatalogEngine{
		src:         src,
		store:       store,
		bus:         bus,
		firstPage:   catalogFirstPage,
		hydratePage: hydrationPage,
	}
}

// Sync issues the two first reads concurrently, wholesale-replaces the
// cached catalog and emits catalog-synced. Background hydration of the
// remaining pages starts afterwards and does not block the call; its
// failures are logged and abandoned, never surfaced.
func (e *CatalogEngine) Sync(ctx context.Context) ([]domain.Category, []domain.MenuItem, error) {
	var (
		wg      sync.WaitGroup
		cats    []domain.Category
		items   []domain.MenuItem
		catErr  error
		itemErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cats, catErr = e.src.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		items, itemErr = e.src.MenuItems(ctx, true, 0, e.firstPage)
	}()
	wg.Wait()

	if catErr != nil {
		return nil, nil, catErr
	}
	if itemErr != nil {
		return nil, nil, itemErr
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	// Full replace: the catalog is re-derivable each cycle.
	e.store.SetCategories(cats)
	e.store.SetMenuItems(items)
	e.bus.Publish(events.CatalogSynced, nil)

	e.wg.Add(1)
	go e.hydrate(len(items))

	return cats, items, nil
}

func (e *CatalogEngine) hydrate(offset int) {
	defer e.wg.Done()

	// Detached from the caller: first-page data is already valid, the
	// hydration outcome must not affect the resolved sync.
	ctx := context.Background()
	for {
		batch, err := e.src.MenuItems(ctx, true, offset, e.hydratePage)
		if err != nil {
			log.Printf("catalog: background hydration failed: %v", err)
			return
		}
		if len(batch) == 0 {
			return
		}

		e.store.SetMenuItems(append(e.store.MenuItems(), batch...))
		e.bus.Publish(events.CatalogPartialSynced, map[string]any{"offset": offset})
		offset += len(batch)
	}
}

// Wait blocks until any in-flight background hydration finishes.
func (e *CatalogEngine) Wait() {
	e.wg.Wait()
}
