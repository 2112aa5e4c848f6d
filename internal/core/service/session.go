package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// SessionManager implements the single-session contract: at most one
// authenticated identity browser-wide, and one authorization gate for every
// guarded call site.
type SessionManager struct {
	repo ports.SessionRepository
	log  zerolog.Logger
}

func NewSessionManager(repo ports.SessionRepository, log zerolog.Logger) *SessionManager {
	return &SessionManager{repo: repo, log: log}
}

// Current returns the active session, or nil when logged out.
func (m *SessionManager) Current(ctx context.Context) (*domain.Session, error) {
	return m.repo.Current(ctx)
}

// Start persists the session, overwriting any prior one.
func (m *SessionManager) Start(ctx context.Context, s domain.Session) error {
	if err := m.repo.Start(ctx, s); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	m.log.Info().Str("owner", s.OwnerID).Str("role", string(s.Role)).Msg("session started")
	return nil
}

// End removes the session record. Ending an absent session is a no-op.
func (m *SessionManager) End(ctx context.Context) error {
	if err := m.repo.End(ctx); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	m.log.Info().Msg("session ended")
	return nil
}

func (m *SessionManager) RequireAuthenticated(ctx context.Context) (*domain.Session, error) {
	s, err := m.repo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s, nil
}

func (m *SessionManager) RequirePrivileged(ctx context.Context) (*domain.Session, error) {
	s, err := m.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !s.Privileged() {
		return nil, domain.ErrForbidden
	}
	return s, nil
}
