package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// CartRepository defines persistence for cart lines. All owners share one
// collection; the composite key (ownerID, itemID) is unique within it.
type CartRepository interface {
	// ForOwner returns the owner's lines. Empty slice, never nil.
	ForOwner(ctx context.Context, ownerID string) ([]domain.CartLine, error)
	// Save inserts the line or replaces the existing line with the same
	// composite key.
	Save(ctx context.Context, line domain.CartLine) error
	// Remove deletes the matching line. Removing an absent line is a no-op.
	Remove(ctx context.Context, ownerID string, itemID int64) error
}
