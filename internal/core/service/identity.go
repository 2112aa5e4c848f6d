package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
	"github.com/shoplite/storefront/internal/metrics"
)

// AdminCredentials is the privileged credential pair checked ahead of the
// accounts collection. The matching account is synthesized per login and
// never persisted.
type AdminCredentials struct {
	Email    string
	Password string
	Name     string
}

// IdentityService implements registration and credential checks over the
// accounts collection.
type IdentityService struct {
	accounts ports.AccountRepository
	sessions ports.SessionManager
	admin    AdminCredentials
	log      zerolog.Logger
}

func NewIdentityService(accounts ports.AccountRepository, sessions ports.SessionManager, admin AdminCredentials, log zerolog.Logger) *IdentityService {
	return &IdentityService{accounts: accounts, sessions: sessions, admin: admin, log: log}
}

// Register creates a standard-role account with a fresh id. It never starts
// a session; the caller must log in afterward.
func (s *IdentityService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	// Exact-match uniqueness check; the repository enforces it again on write.
	if _, err := s.accounts.FindByEmail(ctx, in.Email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	account := domain.Account{
		ID:       nextID(),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     domain.RoleStandard,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Int64("account_id", created.ID).Str("email", created.Email).Msg("account registered")
	return created, nil
}

// Authenticate resolves credentials to an account. The privileged pair wins
// over the accounts collection and yields a synthesized account.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == s.admin.Email && password == s.admin.Password {
		metrics.LoginsTotal.WithLabelValues("privileged").Inc()
		s.log.Info().Str("email", email).Msg("privileged login")
		return &domain.Account{
			Name:  s.admin.Name,
			Email: email,
			Role:  domain.RolePrivileged,
		}, nil
	}

	all, err := s.accounts.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	for i := range all {
		if all[i].Email == email && all[i].Password == password {
			metrics.LoginsTotal.WithLabelValues("ok").Inc()
			account := all[i]
			return &account, nil
		}
	}

	metrics.LoginsTotal.WithLabelValues("invalid").Inc()
	s.log.Debug().Str("email", email).Msg("credential check failed")
	return nil, domain.ErrInvalidCredentials
}

// Login authenticates and starts the session in one step.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	account, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	session := domain.SessionFor(*account)
	if err := s.sessions.Start(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout ends the session. Logging out while logged out is a no-op.
func (s *IdentityService) Logout(ctx context.Context) error {
	return s.sessions.End(ctx)
}
