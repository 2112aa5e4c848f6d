package ports

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
)

// SessionManager tracks the single authenticated identity and is the one
// authorization gate used by every guarded operation.
type SessionManager interface {
	Current(ctx context.Context) (*domain.Session, error)
	Start(ctx context.Context, s domain.Session) error
	End(ctx context.Context) error
	// RequireAuthenticated returns the active session or
	// domain.ErrUnauthenticated.
	RequireAuthenticated(ctx context.Context) (*domain.Session, error)
	// RequirePrivileged returns the active session when its role may mutate
	// the catalog; domain.ErrUnauthenticated when absent,
	// domain.ErrForbidden otherwise.
	RequirePrivileged(ctx context.Context) (*domain.Session, error)
}
