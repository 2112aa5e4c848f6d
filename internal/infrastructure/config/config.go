package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// StorePath is the bbolt file holding every collection.
	StorePath   string `env:"STORE_PATH,   default=storefront.db"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	SeedCatalog bool   `env:"SEED_CATALOG, default=true"`

	Admin AdminConfig
}

// AdminConfig is the privileged credential pair. The defaults are a fixed
// development login; override them in any deployment that cares.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@gmail.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
	Name     string `env:"ADMIN_NAME,    default=Admin"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
