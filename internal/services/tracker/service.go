// Package tracker provides position management and portfolio valuation
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
	"github.com/mverhoef/folio/internal/models"
	"github.com/mverhoef/folio/internal/valuation"
)

// Service implements TrackerService
type Service struct {
	storage interfaces.StorageManager
	crypto  interfaces.CryptoPriceClient
	etf     interfaces.ETFPriceClient
	logger  *common.Logger
}

// NewService creates a new tracker service
func NewService(
	storage interfaces.StorageManager,
	crypto interfaces.CryptoPriceClient,
	etf interfaces.ETFPriceClient,
	logger *common.Logger,
) *Service {
	return &Service{
		storage: storage,
		crypto:  crypto,
		etf:     etf,
		logger:  logger,
	}
}

// GetPortfolio retrieves positions of a kind, enriched with current prices
// and aggregated totals. A price fetch failure degrades to last-known
// prices rather than failing the request.
func (s *Service) GetPortfolio(ctx context.Context, kind models.AssetKind) (*models.PortfolioView, error) {
	stored, err := s.storage.Positions().List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s positions: %w", kind, err)
	}

	positions := make([]models.Position, 0, len(stored))
	for _, p := range stored {
		positions = append(positions, *p)
	}

	prices := s.fetchPrices(ctx, kind, positions)

	now := time.Now()
	enriched := valuation.EnrichAll(positions, prices, now)

	// Newest-first display order. Storage returns positions unordered;
	// a lexicographic sort over the mixed date formats would be wrong.
	enriched, err = valuation.SortByDateAddedDesc(enriched)
	if err != nil {
		return nil, fmt.Errorf("failed to order %s positions: %w", kind, err)
	}

	totals := valuation.Aggregate(enriched)
	totals.RealisedProfitLoss = valuation.RealisedProfitLoss(enriched)

	return &models.PortfolioView{
		Kind:      kind,
		Positions: enriched,
		Totals:    totals,
		AsOf:      now,
	}, nil
}

// fetchPrices collects quotes for the open positions of a portfolio. Closed
// positions are priced from their close price and never re-quoted. On
// failure it returns an empty map so valuation falls back to last-known
// prices.
func (s *Service) fetchPrices(ctx context.Context, kind models.AssetKind, positions []models.Position) map[string]float64 {
	var symbols []string
	seen := make(map[string]bool)
	for _, p := range positions {
		if p.IsClosed() || p.Symbol == "" || seen[p.Symbol] {
			continue
		}
		seen[p.Symbol] = true
		symbols = append(symbols, p.Symbol)
	}
	if len(symbols) == 0 {
		return map[string]float64{}
	}

	var prices map[string]float64
	var err error
	switch kind {
	case models.AssetKindCrypto:
		prices, err = s.crypto.GetPrices(ctx, symbols)
	case models.AssetKindETF:
		prices, err = s.etf.GetQuotes(ctx, symbols)
	default:
		return map[string]float64{}
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("kind", string(kind)).Int("symbols", len(symbols)).
			Msg("Price fetch failed, serving last-known prices")
		return map[string]float64{}
	}

	return prices
}

// AddPosition validates, normalizes and stores a new position
func (s *Service) AddPosition(ctx context.Context, position *models.Position) (*models.Position, error) {
	if position == nil {
		return nil, fmt.Errorf("position is required")
	}

	p := *position
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.DateAdded == "" {
		p.DateAdded = time.Now().Format("2006-01-02")
	}
	if _, err := valuation.ParseFlexibleDate(p.DateAdded); err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}

	// Initial valuation from a live quote. A fetch failure leaves the
	// derived fields zero until the next refresh.
	if !p.IsClosed() {
		prices := s.fetchPrices(ctx, p.Kind, []models.Position{p})
		enriched := valuation.EnrichAll([]models.Position{p}, prices, time.Now())
		p = enriched[0]
	}

	if err := s.storage.Positions().Save(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to save position: %w", err)
	}

	s.logger.Info().Str("id", p.ID).Str("symbol", p.Symbol).Str("kind", string(p.Kind)).Msg("Position added")

	return &p, nil
}

// UpdatePosition replaces a stored position by ID
func (s *Service) UpdatePosition(ctx context.Context, id string, position *models.Position) (*models.Position, error) {
	if position == nil {
		return nil, fmt.Errorf("position is required")
	}

	existing, err := s.storage.Positions().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p := *position
	p.ID = existing.ID
	if p.DateAdded == "" {
		p.DateAdded = existing.DateAdded
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}
	if p.DateAdded != "" {
		if _, err := valuation.ParseFlexibleDate(p.DateAdded); err != nil {
			return nil, fmt.Errorf("invalid position: %w", err)
		}
	}

	if err := s.storage.Positions().Save(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}

	s.logger.Info().Str("id", p.ID).Str("symbol", p.Symbol).Msg("Position updated")

	return &p, nil
}

// RemovePosition deletes a position by ID
func (s *Service) RemovePosition(ctx context.Context, id string) error {
	if _, err := s.storage.Positions().Get(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Positions().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	s.logger.Info().Str("id", id).Msg("Position removed")

	return nil
}

// RefreshPrices re-fetches quotes for all open positions and persists the
// enriched values. Used by the background scheduler.
func (s *Service) RefreshPrices(ctx context.Context) error {
	now := time.Now()

	stored, err := s.storage.Positions().ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load positions: %w", err)
	}

	byKind := make(map[models.AssetKind][]models.Position)
	for _, p := range stored {
		byKind[p.Kind] = append(byKind[p.Kind], *p)
	}

	for _, kind := range []models.AssetKind{models.AssetKindCrypto, models.AssetKindETF} {
		positions := byKind[kind]
		if len(positions) == 0 {
			continue
		}

		if allPricesFresh(positions) {
			s.logger.Debug().Str("kind", string(kind)).Msg("Quotes still fresh, skipping refresh")
			continue
		}

		prices := s.fetchPrices(ctx, kind, positions)
		if len(prices) == 0 {
			continue
		}

		enriched := valuation.EnrichAll(positions, prices, now)
		for i := range enriched {
			if enriched[i].IsClosed() {
				continue
			}
			if err := s.storage.Positions().Save(ctx, &enriched[i]); err != nil {
				s.logger.Warn().Err(err).Str("id", enriched[i].ID).Msg("Failed to persist refreshed position")
			}
		}

		s.logger.Debug().Str("kind", string(kind)).Int("positions", len(enriched)).Msg("Prices refreshed")
	}

	return nil
}

// allPricesFresh reports whether every open position was quoted within the
// spot price TTL.
func allPricesFresh(positions []models.Position) bool {
	checked := false
	for _, p := range positions {
		if p.IsClosed() {
			continue
		}
		checked = true
		if !common.IsFresh(p.LastUpdated, common.FreshnessSpotPrice) {
			return false
		}
	}
	return checked
}

// Ensure Service implements TrackerService
var _ interfaces.TrackerService = (*Service)(nil)
