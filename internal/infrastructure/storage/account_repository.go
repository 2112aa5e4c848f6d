package storage

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// AccountRepository persists accounts in the accounts collection.
type AccountRepository struct {
	store ports.KV
}

func NewAccountRepository(store ports.KV) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) All(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := readCollection(ctx, r.store, CollectionAccounts, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	accounts, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == email {
			account := accounts[i]
			return &account, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (*domain.Account, error) {
	accounts, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == account.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	accounts = append(accounts, account)
	if err := writeCollection(ctx, r.store, CollectionAccounts, accounts); err != nil {
		return nil, err
	}
	return &account, nil
}
