package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// SessionRepository persists the singleton session record.
type SessionRepository interface {
	// Current returns the active session, or nil when logged out.
	Current(ctx context.Context) (*domain.Session, error)
	// Start stores the session, overwriting any prior one.
	Start(ctx context.Context, s domain.Session) error
	// End removes the session record. Idempotent.
	End(ctx context.Context) error
}
