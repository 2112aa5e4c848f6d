package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// Schema initializes the store on first run: empty accounts and cartLines
// collections, and a seeded catalog. Re-running against a populated store
// is a no-op, so a half-used store is never reset.
type Schema struct {
	store ports.KV
	seed  bool
	log   zerolog.Logger
}

// NewSchema builds the initializer. When seed is false the catalog is
// created empty instead of with the starter items.
func NewSchema(store ports.KV, seed bool, log zerolog.Logger) *Schema {
	return &Schema{store: store, seed: seed, log: log}
}

// SeedItems returns the deterministic starter catalog written on first run.
func SeedItems() []domain.CatalogItem {
	return []domain.CatalogItem{
		{ID: 1, Name: "Wireless Headphones", Price: 99.99, Description: "High quality noise cancelling headphones.", ImageRef: "https://via.placeholder.com/300"},
		{ID: 2, Name: "Smart Watch", Price: 199.50, Description: "Track your fitness and notifications.", ImageRef: "https://via.placeholder.com/300"},
		{ID: 3, Name: "Laptop Stand", Price: 29.99, Description: "Ergonomic aluminum laptop stand.", ImageRef: "https://via.placeholder.com/300"},
	}
}

// EnsureInitialized creates any missing collection. Must run before any
// repository touches the store.
func (s *Schema) EnsureInitialized(ctx context.Context) error {
	if err := s.ensure(ctx, CollectionAccounts, []domain.Account{}); err != nil {
		return err
	}
	if err := s.ensure(ctx, CollectionCart, []domain.CartLine{}); err != nil {
		return err
	}

	catalog := []domain.CatalogItem{}
	if s.seed {
		catalog = SeedItems()
	}
	created, err := s.ensureCreated(ctx, CollectionCatalog, catalog)
	if err != nil {
		return err
	}
	if created && s.seed {
		s.log.Info().Int("items", len(catalog)).Msg("catalog seeded")
	}
	return nil
}

func (s *Schema) ensure(ctx context.Context, key string, empty any) error {
	_, err := s.ensureCreated(ctx, key, empty)
	return err
}

// ensureCreated writes v under key only when the key is absent, reporting
// whether it wrote.
func (s *Schema) ensureCreated(ctx context.Context, key string, v any) (bool, error) {
	_, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("init %s: %w", key, err)
	}
	if ok {
		return false, nil
	}
	if err := writeCollection(ctx, s.store, key, v); err != nil {
		return false, fmt.Errorf("init %s: %w", key, err)
	}
	return true, nil
}
