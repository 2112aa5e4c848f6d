package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// RegisterInput carries the fields supplied by the registration form.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// IdentityService handles registration and credential checks.
type IdentityService interface {
	// Register creates a standard-role account with a fresh id. It does not
	// start a session; the caller is expected to log in afterward.
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	// Authenticate resolves credentials to an account. The privileged pair
	// is checked first and yields a synthesized account that is never
	// persisted. No match returns domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	// Login authenticates and starts the session in one step.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	// Logout ends the session. Idempotent.
	Logout(ctx context.Context) error
}
