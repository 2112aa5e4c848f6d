// Package kv provides the durable key-value backends for the storefront
// collections: a bbolt file store for real use and an in-memory store for
// tests and ephemeral embedders.
package kv

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "collections"

const defaultTimeout = 5 * time.Second

// Config captures the settings for opening the bbolt-backed store.
type Config struct {
	Path    string
	Mode    os.FileMode
	Timeout time.Duration
}

// Bolt is a bbolt-backed KV. A single bucket holds every collection:
// key = collection name, value = raw JSON.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) the store file and ensures the
// collections bucket exists. Defaults are applied for mode and the
// file-lock timeout when unset.
func OpenBolt(cfg Config) (*Bolt, error) {
	mode := cfg.Mode
	if mode == 0 {
		mode = 0o600
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := bbolt.Open(cfg.Path, mode, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if raw == nil {
			return nil
		}
		// Copy out: bbolt memory is only valid inside the transaction.
		value = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, value != nil, nil
}

func (b *Bolt) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (b *Bolt) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
