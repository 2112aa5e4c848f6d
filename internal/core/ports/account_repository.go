package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// AccountRepository defines persistence for registered accounts.
type AccountRepository interface {
	// All returns every account. Empty slice, never nil, once initialized.
	All(ctx context.Context) ([]domain.Account, error)
	// FindByEmail matches exactly (case-sensitive) and returns
	// domain.ErrAccountNotFound when no account has that email.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Create appends the account, failing with domain.ErrDuplicateEmail when
	// the email is already taken.
	Create(ctx context.Context, account domain.Account) (*domain.Account, error)
}
