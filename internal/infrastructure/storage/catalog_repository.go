package storage

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// CatalogRepository persists catalog items in the catalogItems collection.
type CatalogRepository struct {
	store ports.KV
}

func NewCatalogRepository(store ports.KV) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) All(ctx context.Context) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	if err := readCollection(ctx, r.store, CollectionCatalog, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}
	return items, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*domain.CatalogItem, error) {
	items, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *CatalogRepository) Create(ctx context.Context, item domain.CatalogItem) error {
	items, err := r.All(ctx)
	if err != nil {
		return err
	}
	items = append(items, item)
	return writeCollection(ctx, r.store, CollectionCatalog, items)
}

func (r *CatalogRepository) Update(ctx context.Context, item domain.CatalogItem) error {
	items, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return writeCollection(ctx, r.store, CollectionCatalog, items)
		}
	}
	return domain.ErrItemNotFound
}

func (r *CatalogRepository) Delete(ctx context.Context, id int64) error {
	items, err := r.All(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return writeCollection(ctx, r.store, CollectionCatalog, kept)
}
