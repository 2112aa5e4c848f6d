package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// CartService defines the cart use cases for the currently authenticated
// account. Every operation requires an active session.
type CartService interface {
	// AddOrIncrement bumps the quantity of the owner's line for itemID, or
	// creates it with quantity 1.
	AddOrIncrement(ctx context.Context, itemID int64) error
	// SetQuantity updates the line in place. A quantity of zero or less
	// removes the line; a missing line is a silent no-op.
	SetQuantity(ctx context.Context, itemID int64, quantity int) error
	// Remove deletes the line if present. Idempotent.
	Remove(ctx context.Context, itemID int64) error
	// ViewForCurrentUser joins the owner's lines against the catalog,
	// skipping lines whose item was deleted, and totals the rest.
	ViewForCurrentUser(ctx context.Context) (*domain.CartView, error)
}
