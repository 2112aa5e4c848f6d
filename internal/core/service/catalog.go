package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
	"github.com/shoplite/storefront/internal/metrics"
)

// CatalogService implements catalog CRUD. Listing and lookup are open;
// every mutation passes through the privileged-session gate.
type CatalogService struct {
	items    ports.CatalogRepository
	sessions ports.SessionManager
	log      zerolog.Logger
}

func NewCatalogService(items ports.CatalogRepository, sessions ports.SessionManager, log zerolog.Logger) *CatalogService {
	return &CatalogService{items: items, sessions: sessions, log: log}
}

// List returns the full catalog in storage order.
func (s *CatalogService) List(ctx context.Context) ([]domain.CatalogItem, error) {
	return s.items.All(ctx)
}

// Get returns one item, e.g. to prefill an edit form.
func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.CatalogItem, error) {
	return s.items.FindByID(ctx, id)
}

// Create assigns a fresh id and appends the item.
func (s *CatalogService) Create(ctx context.Context, in ports.ItemInput) (*domain.CatalogItem, error) {
	if _, err := s.sessions.RequirePrivileged(ctx); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	item := domain.CatalogItem{
		ID:          nextID(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		ImageRef:    in.ImageRef,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	metrics.CatalogMutationsTotal.WithLabelValues("create").Inc()
	s.log.Info().Int64("item_id", item.ID).Str("name", item.Name).Msg("catalog item created")
	return &item, nil
}

// Update merges the set patch fields onto the stored record. Unset fields
// are left unchanged. A missing id fails with domain.ErrItemNotFound.
func (s *CatalogService) Update(ctx context.Context, id int64, patch ports.ItemPatch) (*domain.CatalogItem, error) {
	if _, err := s.sessions.RequirePrivileged(ctx); err != nil {
		return nil, err
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.ImageRef != nil {
		item.ImageRef = *patch.ImageRef
	}

	if err := s.items.Update(ctx, *item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	metrics.CatalogMutationsTotal.WithLabelValues("update").Inc()
	s.log.Info().Int64("item_id", id).Msg("catalog item updated")
	return item, nil
}

// Delete removes the item. Deleting an absent id is a no-op. Cart lines
// referencing the id are left in place and filtered at read time.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if _, err := s.sessions.RequirePrivileged(ctx); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	metrics.CatalogMutationsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Int64("item_id", id).Msg("catalog item deleted")
	return nil
}
