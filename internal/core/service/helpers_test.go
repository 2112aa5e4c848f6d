package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories and session manager
// ---------------------------------------------------------------------------

type stubSessionRepo struct {
	session *domain.Session
}

func (r *stubSessionRepo) Current(_ context.Context) (*domain.Session, error) {
	if r.session == nil {
		return nil, nil
	}
	clone := *r.session
	return &clone, nil
}

func (r *stubSessionRepo) Start(_ context.Context, s domain.Session) error {
	r.session = &s
	return nil
}

func (r *stubSessionRepo) End(_ context.Context) error {
	r.session = nil
	return nil
}

// stubSessions satisfies ports.SessionManager with a fixed session, letting
// catalog/cart tests pick the caller's identity directly.
type stubSessions struct {
	session *domain.Session
}

func (s *stubSessions) Current(_ context.Context) (*domain.Session, error) {
	return s.session, nil
}

func (s *stubSessions) Start(_ context.Context, sess domain.Session) error {
	s.session = &sess
	return nil
}

func (s *stubSessions) End(_ context.Context) error {
	s.session = nil
	return nil
}

func (s *stubSessions) RequireAuthenticated(_ context.Context) (*domain.Session, error) {
	if s.session == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.session, nil
}

func (s *stubSessions) RequirePrivileged(ctx context.Context) (*domain.Session, error) {
	sess, err := s.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.Privileged() {
		return nil, domain.ErrForbidden
	}
	return sess, nil
}

func standardSession(ownerID string) *stubSessions {
	return &stubSessions{session: &domain.Session{OwnerID: ownerID, Role: domain.RoleStandard}}
}

func privilegedSession() *stubSessions {
	return &stubSessions{session: &domain.Session{OwnerID: domain.AdminOwnerID, Role: domain.RolePrivileged}}
}

type stubAccountRepo struct {
	accounts []domain.Account
}

func (r *stubAccountRepo) All(_ context.Context) ([]domain.Account, error) {
	return append([]domain.Account{}, r.accounts...), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for i := range r.accounts {
		if r.accounts[i].Email == email {
			clone := r.accounts[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account domain.Account) (*domain.Account, error) {
	for i := range r.accounts {
		if r.accounts[i].Email == account.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.accounts = append(r.accounts, account)
	return &account, nil
}

type stubCatalogRepo struct {
	items []domain.CatalogItem
}

func (r *stubCatalogRepo) All(_ context.Context) ([]domain.CatalogItem, error) {
	return append([]domain.CatalogItem{}, r.items...), nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id int64) (*domain.CatalogItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			clone := r.items[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubCatalogRepo) Create(_ context.Context, item domain.CatalogItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *stubCatalogRepo) Update(_ context.Context, item domain.CatalogItem) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (r *stubCatalogRepo) Delete(_ context.Context, id int64) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

type stubCartRepo struct {
	lines []domain.CartLine
}

func (r *stubCartRepo) ForOwner(_ context.Context, ownerID string) ([]domain.CartLine, error) {
	owned := []domain.CartLine{}
	for _, line := range r.lines {
		if line.OwnerID == ownerID {
			owned = append(owned, line)
		}
	}
	return owned, nil
}

func (r *stubCartRepo) Save(_ context.Context, line domain.CartLine) error {
	for i := range r.lines {
		if r.lines[i].OwnerID == line.OwnerID && r.lines[i].ItemID == line.ItemID {
			r.lines[i] = line
			return nil
		}
	}
	r.lines = append(r.lines, line)
	return nil
}

func (r *stubCartRepo) Remove(_ context.Context, ownerID string, itemID int64) error {
	kept := r.lines[:0]
	for _, line := range r.lines {
		if line.OwnerID == ownerID && line.ItemID == itemID {
			continue
		}
		kept = append(kept, line)
	}
	r.lines = kept
	return nil
}
