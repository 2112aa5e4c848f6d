package storage

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/infrastructure/kv"
)

var discardLogger = zerolog.Nop()

func TestSchema_EnsureInitialized_SeedsCatalogOnce(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	schema := NewSchema(store, true, discardLogger)

	if err := schema.EnsureInitialized(ctx); err != nil {
		t.Fatalf("EnsureInitialized failed: %v", err)
	}

	catalog := NewCatalogRepository(store)
	items, err := catalog.All(ctx)
	if err != nil {
		t.Fatalf("reading seeded catalog failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 seeded items, got %d", len(items))
	}
	if items[0].Name != "Wireless Headphones" || items[0].Price != 99.99 {
		t.Errorf("unexpected first seed item: %+v", items[0])
	}
	if items[1].Price != 199.50 || items[2].Price != 29.99 {
		t.Errorf("unexpected seed prices: %v, %v", items[1].Price, items[2].Price)
	}

	accounts, err := NewAccountRepository(store).All(ctx)
	if err != nil {
		t.Fatalf("reading accounts failed: %v", err)
	}
	if accounts == nil || len(accounts) != 0 {
		t.Errorf("expected empty non-nil accounts, got %v", accounts)
	}
}

func TestSchema_EnsureInitialized_Idempotent(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	schema := NewSchema(store, true, discardLogger)

	if err := schema.EnsureInitialized(ctx); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// Mutate every collection, then re-run: nothing may be reset.
	catalog := NewCatalogRepository(store)
	if err := catalog.Delete(ctx, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := NewAccountRepository(store).Create(ctx, domain.Account{ID: 100, Email: "a@example.com", Role: domain.RoleStandard}); err != nil {
		t.Fatalf("create account failed: %v", err)
	}

	if err := schema.EnsureInitialized(ctx); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	items, _ := catalog.All(ctx)
	if len(items) != 2 {
		t.Errorf("re-initialization must not reseed, got %d items", len(items))
	}
	accounts, _ := NewAccountRepository(store).All(ctx)
	if len(accounts) != 1 {
		t.Errorf("re-initialization must keep accounts, got %d", len(accounts))
	}
}

func TestSchema_EnsureInitialized_SeedDisabled(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	if err := NewSchema(store, false, discardLogger).EnsureInitialized(ctx); err != nil {
		t.Fatalf("EnsureInitialized failed: %v", err)
	}

	items, err := NewCatalogRepository(store).All(ctx)
	if err != nil {
		t.Fatalf("reading catalog failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected an empty catalog with seeding disabled, got %d items", len(items))
	}
}
