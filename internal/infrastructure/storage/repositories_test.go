package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/infrastructure/kv"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository(kv.NewMemory())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Account{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "pw", Role: domain.RoleStandard})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("unexpected account: %+v", created)
	}

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Name != "Alice" {
		t.Errorf("unexpected account: %+v", found)
	}

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	repo := NewAccountRepository(kv.NewMemory())
	ctx := context.Background()

	_, _ = repo.Create(ctx, domain.Account{ID: 1, Email: "bob@example.com"})
	if _, err := repo.Create(ctx, domain.Account{ID: 2, Email: "bob@example.com"}); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	accounts, _ := repo.All(ctx)
	if len(accounts) != 1 {
		t.Errorf("duplicate must not be written, got %d accounts", len(accounts))
	}
}

func TestCatalogRepository_UpdateAndDelete(t *testing.T) {
	repo := NewCatalogRepository(kv.NewMemory())
	ctx := context.Background()

	if err := repo.Create(ctx, domain.CatalogItem{ID: 1, Name: "Lamp", Price: 10}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Update(ctx, domain.CatalogItem{ID: 1, Name: "Desk Lamp", Price: 12}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	item, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if item.Name != "Desk Lamp" || item.Price != 12 {
		t.Errorf("update not persisted: %+v", item)
	}

	if err := repo.Update(ctx, domain.CatalogItem{ID: 99, Name: "Ghost"}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("repeat delete must be a no-op, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 1); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
}

func TestCartRepository_CompositeKey(t *testing.T) {
	repo := NewCartRepository(kv.NewMemory())
	ctx := context.Background()

	_ = repo.Save(ctx, domain.CartLine{OwnerID: "1", ItemID: 7, Quantity: 1})
	_ = repo.Save(ctx, domain.CartLine{OwnerID: "2", ItemID: 7, Quantity: 4})
	// Same composite key replaces, it does not append.
	_ = repo.Save(ctx, domain.CartLine{OwnerID: "1", ItemID: 7, Quantity: 2})

	mine, err := repo.ForOwner(ctx, "1")
	if err != nil {
		t.Fatalf("ForOwner failed: %v", err)
	}
	if len(mine) != 1 || mine[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", mine)
	}

	theirs, _ := repo.ForOwner(ctx, "2")
	if len(theirs) != 1 || theirs[0].Quantity != 4 {
		t.Fatalf("owners must not interfere, got %+v", theirs)
	}

	if err := repo.Remove(ctx, "1", 7); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := repo.Remove(ctx, "1", 7); err != nil {
		t.Fatalf("repeat remove must be a no-op, got %v", err)
	}
	theirs, _ = repo.ForOwner(ctx, "2")
	if len(theirs) != 1 {
		t.Errorf("removing owner 1's line must not touch owner 2, got %+v", theirs)
	}
}

func TestSessionRepository_Singleton(t *testing.T) {
	repo := NewSessionRepository(kv.NewMemory())
	ctx := context.Background()

	s, err := repo.Current(ctx)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if s != nil {
		t.Fatalf("expected no session, got %+v", s)
	}

	_ = repo.Start(ctx, domain.Session{OwnerID: "1", Name: "Alice", Role: domain.RoleStandard})
	_ = repo.Start(ctx, domain.Session{OwnerID: domain.AdminOwnerID, Name: "Admin", Role: domain.RolePrivileged})

	s, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if s == nil || s.OwnerID != domain.AdminOwnerID {
		t.Fatalf("second start must overwrite, got %+v", s)
	}

	if err := repo.End(ctx); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if s, _ := repo.Current(ctx); s != nil {
		t.Fatalf("expected no session after end, got %+v", s)
	}
}
