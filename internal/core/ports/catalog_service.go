package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// ItemInput carries all fields for a new catalog item.
type ItemInput struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Description string
	ImageRef    string `validate:"omitempty,uri"`
}

// ItemPatch enumerates the fields an update may change. Nil fields are left
// untouched on the stored record.
type ItemPatch struct {
	Name        *string
	Price       *float64 `validate:"omitempty,gte=0"`
	Description *string
	ImageRef    *string `validate:"omitempty,uri"`
}

// CatalogService defines the catalog use cases. Mutations require a
// privileged session; listing is open to everyone.
type CatalogService interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
	Get(ctx context.Context, id int64) (*domain.CatalogItem, error)
	Create(ctx context.Context, in ItemInput) (*domain.CatalogItem, error)
	Update(ctx context.Context, id int64, patch ItemPatch) (*domain.CatalogItem, error)
	Delete(ctx context.Context, id int64) error
}
