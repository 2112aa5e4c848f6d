package storage

import (
	"context"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// CartRepository persists cart lines for all owners in one collection,
// keyed by (ownerId, itemId).
type CartRepository struct {
	store ports.KV
}

func NewCartRepository(store ports.KV) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) all(ctx context.Context) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := readCollection(ctx, r.store, CollectionCart, &lines); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines, nil
}

func (r *CartRepository) ForOwner(ctx context.Context, ownerID string) ([]domain.CartLine, error) {
	lines, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	owned := []domain.CartLine{}
	for _, line := range lines {
		if line.OwnerID == ownerID {
			owned = append(owned, line)
		}
	}
	return owned, nil
}

func (r *CartRepository) Save(ctx context.Context, line domain.CartLine) error {
	lines, err := r.all(ctx)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].OwnerID == line.OwnerID && lines[i].ItemID == line.ItemID {
			lines[i] = line
			return writeCollection(ctx, r.store, CollectionCart, lines)
		}
	}
	lines = append(lines, line)
	return writeCollection(ctx, r.store, CollectionCart, lines)
}

func (r *CartRepository) Remove(ctx context.Context, ownerID string, itemID int64) error {
	lines, err := r.all(ctx)
	if err != nil {
		return err
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.OwnerID == ownerID && line.ItemID == itemID {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) == len(lines) {
		return nil
	}
	return writeCollection(ctx, r.store, CollectionCart, kept)
}
