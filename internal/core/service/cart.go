package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
	"github.com/shoplite/storefront/internal/metrics"
)

// CartService implements per-owner cart mutation and the cart aggregation
// view. Every operation requires an authenticated session.
type CartService struct {
	lines    ports.CartRepository
	catalog  ports.CatalogRepository
	sessions ports.SessionManager
	log      zerolog.Logger
}

func NewCartService(lines ports.CartRepository, catalog ports.CatalogRepository, sessions ports.SessionManager, log zerolog.Logger) *CartService {
	return &CartService{lines: lines, catalog: catalog, sessions: sessions, log: log}
}

// AddOrIncrement bumps the owner's quantity for itemID, or creates the line
// with quantity 1 on first add.
func (s *CartService) AddOrIncrement(ctx context.Context, itemID int64) error {
	sess, err := s.sessions.RequireAuthenticated(ctx)
	if err != nil {
		return err
	}

	owned, err := s.lines.ForOwner(ctx, sess.OwnerID)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	line := domain.CartLine{OwnerID: sess.OwnerID, ItemID: itemID, Quantity: 1}
	for i := range owned {
		if owned[i].ItemID == itemID {
			line = owned[i]
			line.Quantity++
			break
		}
	}

	if err := s.lines.Save(ctx, line); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	metrics.CartOpsTotal.WithLabelValues("add").Inc()
	s.log.Info().Str("owner", sess.OwnerID).Int64("item_id", itemID).Int("quantity", line.Quantity).Msg("cart line saved")
	return nil
}

// SetQuantity updates the line in place. Zero or less removes the line; a
// missing line is a silent no-op.
func (s *CartService) SetQuantity(ctx context.Context, itemID int64, quantity int) error {
	sess, err := s.sessions.RequireAuthenticated(ctx)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return s.remove(ctx, sess.OwnerID, itemID)
	}

	owned, err := s.lines.ForOwner(ctx, sess.OwnerID)
	if err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	for i := range owned {
		if owned[i].ItemID != itemID {
			continue
		}
		line := owned[i]
		line.Quantity = quantity
		if err := s.lines.Save(ctx, line); err != nil {
			return fmt.Errorf("set quantity: %w", err)
		}
		metrics.CartOpsTotal.WithLabelValues("set_quantity").Inc()
		s.log.Info().Str("owner", sess.OwnerID).Int64("item_id", itemID).Int("quantity", quantity).Msg("cart quantity set")
		return nil
	}

	s.log.Debug().Str("owner", sess.OwnerID).Int64("item_id", itemID).Msg("set quantity on missing line, ignoring")
	return nil
}

// Remove deletes the owner's line for itemID if present. Idempotent.
func (s *CartService) Remove(ctx context.Context, itemID int64) error {
	sess, err := s.sessions.RequireAuthenticated(ctx)
	if err != nil {
		return err
	}
	return s.remove(ctx, sess.OwnerID, itemID)
}

func (s *CartService) remove(ctx context.Context, ownerID string, itemID int64) error {
	if err := s.lines.Remove(ctx, ownerID, itemID); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}
	metrics.CartOpsTotal.WithLabelValues("remove").Inc()
	s.log.Info().Str("owner", ownerID).Int64("item_id", itemID).Msg("cart line removed")
	return nil
}

// ViewForCurrentUser joins the owner's lines against the catalog. Lines
// whose item was deleted are skipped silently; totals cover the rest,
// rounded to two decimals for display.
func (s *CartService) ViewForCurrentUser(ctx context.Context) (*domain.CartView, error) {
	sess, err := s.sessions.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	owned, err := s.lines.ForOwner(ctx, sess.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("view cart: %w", err)
	}

	items, err := s.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("view cart: %w", err)
	}
	byID := make(map[int64]domain.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	view := &domain.CartView{Lines: []domain.CartViewLine{}}
	var total float64
	for _, line := range owned {
		item, ok := byID[line.ItemID]
		if !ok {
			metrics.DanglingLinesSkipped.Inc()
			s.log.Debug().Str("owner", sess.OwnerID).Int64("item_id", line.ItemID).Msg("skipping cart line for deleted item")
			continue
		}
		lineTotal := round2(item.Price * float64(line.Quantity))
		view.Lines = append(view.Lines, domain.CartViewLine{
			Item:      item,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}
	view.GrandTotal = round2(total)

	return view, nil
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
