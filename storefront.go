// Package storefront implements a self-contained storefront data store:
// durable collections for accounts, catalog items, and per-account cart
// lines, single-session authentication with a privileged role, and the cart
// aggregation consumed by whatever pages embed it. All state lives in a
// local key-value file; there is no network anywhere.
package storefront

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/ports"
	"github.com/shoplite/storefront/internal/core/service"
	"github.com/shoplite/storefront/internal/infrastructure/config"
	"github.com/shoplite/storefront/internal/infrastructure/kv"
	"github.com/shoplite/storefront/internal/infrastructure/storage"
	"github.com/shoplite/storefront/pkg/logger"
)

// Config controls the store location, logging, seeding, and the privileged
// credential pair.
type Config struct {
	// StorePath is the bbolt file holding every collection.
	StorePath string
	// Env selects pretty console logs in development, pure JSON elsewhere.
	Env         string
	LogLevel    string
	SeedCatalog bool

	Admin AdminConfig
}

// AdminConfig is the privileged credential pair checked ahead of the
// accounts collection. The matching account is synthesized per login and
// never persisted.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// LoadConfig reads configuration from environment variables, applying the
// documented defaults for anything unset.
func LoadConfig() *Config {
	c := config.Load()
	return &Config{
		StorePath:   c.StorePath,
		Env:         c.Env,
		LogLevel:    c.LogLevel,
		SeedCatalog: c.SeedCatalog,
		Admin: AdminConfig{
			Email:    c.Admin.Email,
			Password: c.Admin.Password,
			Name:     c.Admin.Name,
		},
	}
}

// Storefront is the process-wide context object. Construct it once with
// Open (or OpenInMemory) and pass it to every caller; all mutation goes
// through its services, never through mutated return values.
type Storefront struct {
	Sessions *service.SessionManager
	Identity *service.IdentityService
	Catalog  *service.CatalogService
	Cart     *service.CartService

	store ports.KV
}

// Open initialises the logger, opens the bbolt store named by cfg, runs
// schema initialisation, and wires every service. A nil cfg loads
// configuration from the environment.
func Open(ctx context.Context, cfg *Config) (*Storefront, error) {
	if cfg == nil {
		cfg = LoadConfig()
	}
	log := initLogger(cfg)

	store, err := kv.OpenBolt(kv.Config{Path: cfg.StorePath})
	if err != nil {
		return nil, err
	}

	sf, err := wire(ctx, store, cfg, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return sf, nil
}

// OpenInMemory wires every service over a process-lifetime store that is
// discarded on Close. Intended for tests and ephemeral embedders.
func OpenInMemory(ctx context.Context, cfg *Config) (*Storefront, error) {
	if cfg == nil {
		cfg = LoadConfig()
	}
	return wire(ctx, kv.NewMemory(), cfg, initLogger(cfg))
}

func initLogger(cfg *Config) zerolog.Logger {
	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	return logger.Get()
}

func wire(ctx context.Context, store ports.KV, cfg *Config, log zerolog.Logger) (*Storefront, error) {
	schema := storage.NewSchema(store, cfg.SeedCatalog, log)
	if err := schema.EnsureInitialized(ctx); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	sessions := service.NewSessionManager(storage.NewSessionRepository(store), log)
	catalogRepo := storage.NewCatalogRepository(store)

	return &Storefront{
		Sessions: sessions,
		Identity: service.NewIdentityService(
			storage.NewAccountRepository(store),
			sessions,
			service.AdminCredentials{
				Email:    cfg.Admin.Email,
				Password: cfg.Admin.Password,
				Name:     cfg.Admin.Name,
			},
			log,
		),
		Catalog: service.NewCatalogService(catalogRepo, sessions, log),
		Cart:    service.NewCartService(storage.NewCartRepository(store), catalogRepo, sessions, log),
		store:   store,
	}, nil
}

// Close releases the underlying store.
func (s *Storefront) Close() error {
	return s.store.Close()
}
