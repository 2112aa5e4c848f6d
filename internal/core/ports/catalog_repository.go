package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// CatalogRepository defines persistence for catalog items. Every mutation is
// a read-modify-write of the whole collection.
type CatalogRepository interface {
	All(ctx context.Context) ([]domain.CatalogItem, error)
	// FindByID returns domain.ErrItemNotFound when no record has that id.
	FindByID(ctx context.Context, id int64) (*domain.CatalogItem, error)
	Create(ctx context.Context, item domain.CatalogItem) error
	// Update replaces the record with the same id, failing with
	// domain.ErrItemNotFound when it does not exist.
	Update(ctx context.Context, item domain.CatalogItem) error
	// Delete removes all records with the id. Deleting an absent id is a
	// no-op, not an error.
	Delete(ctx context.Context, id int64) error
}
