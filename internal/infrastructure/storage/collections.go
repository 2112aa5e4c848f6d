// Package storage implements the collection repositories over the KV port:
// each collection is one key holding a JSON array, and every mutation is a
// read-modify-write of the whole array.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shoplite/storefront/internal/core/ports"
)

// Collection keys are stable storage identifiers; renaming one orphans any
// data written under the old name.
const (
	CollectionAccounts = "accounts"
	CollectionCatalog  = "catalogItems"
	CollectionCart     = "cartLines"
	KeySession         = "session"
)

// readCollection decodes the collection into out. A missing key leaves out
// at its zero value; repositories normalize that to an empty slice.
func readCollection(ctx context.Context, store ports.KV, key string, out any) error {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// writeCollection replaces the whole collection in one Set.
func writeCollection(ctx context.Context, store ports.KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
