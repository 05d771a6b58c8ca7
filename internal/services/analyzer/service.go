// Package analyzer derives buy signals and market sentiment for tracked assets
package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
	"github.com/mverhoef/folio/internal/models"
	"github.com/mverhoef/folio/internal/valuation"
)

// neutralMood is the midpoint reading served when the sentiment APIs are
// unreachable. The dashboard renders it as an explicit "Neutral" band.
const neutralMood = 50

// Service implements AnalyzerService
type Service struct {
	storage interfaces.StorageManager
	crypto  interfaces.CryptoPriceClient
	mood    interfaces.MarketMoodClient
	logger  *common.Logger

	mu          sync.Mutex
	cachedMood  *models.MarketMood
	cachedRank  []models.AnalyzedToken
	rankFetched time.Time
}

// NewService creates a new analyzer service
func NewService(
	storage interfaces.StorageManager,
	crypto interfaces.CryptoPriceClient,
	mood interfaces.MarketMoodClient,
	logger *common.Logger,
) *Service {
	return &Service{
		storage: storage,
		crypto:  crypto,
		mood:    mood,
		logger:  logger,
	}
}

// AnalyzeTokens ranks tracked crypto assets by buy-signal strength. Only
// positions carrying historical bounds participate; duplicated symbols are
// analyzed once.
func (s *Service) AnalyzeTokens(ctx context.Context) ([]models.AnalyzedToken, error) {
	s.mu.Lock()
	if s.cachedRank != nil && common.IsFresh(s.rankFetched, common.FreshnessAnalysis) {
		cached := s.cachedRank
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	stored, err := s.storage.Positions().List(ctx, models.AssetKindCrypto)
	if err != nil {
		return nil, fmt.Errorf("failed to load crypto positions: %w", err)
	}

	positions := make([]models.Position, 0, len(stored))
	seen := make(map[string]bool)
	var symbols []string
	for _, p := range stored {
		positions = append(positions, *p)
		if p.HasAnalysisBounds() && !seen[p.Symbol] {
			seen[p.Symbol] = true
			symbols = append(symbols, p.Symbol)
		}
	}

	prices := map[string]float64{}
	degraded := false
	if len(symbols) > 0 {
		prices, err = s.crypto.GetPrices(ctx, symbols)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Price fetch failed, analyzing with last-known prices")
			degraded = true
			prices = map[string]float64{}
			for _, p := range positions {
				if p.CurrentPrice > 0 {
					prices[p.Symbol] = p.CurrentPrice
				}
			}
		}
	}

	ranked := valuation.Rank(positions, prices, time.Now())

	// Last-known-price fallbacks are not cached so the next call retries.
	if !degraded {
		s.mu.Lock()
		s.cachedRank = ranked
		s.rankFetched = time.Now()
		s.mu.Unlock()
	}

	return ranked, nil
}

// MarketMood retrieves the market-wide sentiment indices. Each index
// degrades to a neutral reading when its API is unreachable so the
// analysis page never blanks out.
func (s *Service) MarketMood(ctx context.Context) (*models.MarketMood, error) {
	s.mu.Lock()
	if s.cachedMood != nil && common.IsFresh(s.cachedMood.FetchedAt, common.FreshnessMood) {
		cached := s.cachedMood
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	degraded := false

	fearGreed, err := s.mood.GetFearGreed(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Fear & greed fetch failed, using neutral default")
		fearGreed = neutralMood
		degraded = true
	}

	altcoin, err := s.mood.GetAltcoinIndex(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Altcoin index fetch failed, using neutral default")
		altcoin = neutralMood
		degraded = true
	}

	mood := &models.MarketMood{
		FearGreedIndex:  fearGreed,
		FearGreedStatus: valuation.FearGreedStatus(fearGreed),
		AltcoinIndex:    altcoin,
		AltcoinStatus:   valuation.AltcoinStatus(altcoin),
		FetchedAt:       time.Now(),
	}

	// Neutral fallbacks are not cached so the next call retries the APIs.
	if !degraded {
		s.mu.Lock()
		s.cachedMood = mood
		s.mu.Unlock()
	}

	return mood, nil
}

// Ensure Service implements AnalyzerService
var _ interfaces.AnalyzerService = (*Service)(nil)
