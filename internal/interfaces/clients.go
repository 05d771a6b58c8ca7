// Package interfaces defines service contracts for Folio
package interfaces

import (
	"context"
)

// CryptoPriceClient provides spot prices for crypto assets
type CryptoPriceClient interface {
	// GetPrices retrieves USD spot prices for a batch of symbols.
	// Symbols absent from the result had no quote available.
	GetPrices(ctx context.Context, symbols []string) (map[string]float64, error)
}

// ETFPriceClient provides quotes for exchange-traded funds
type ETFPriceClient interface {
	// GetQuotes retrieves current prices for a set of ETF symbols.
	// Symbols that fail to resolve are skipped, not errored.
	GetQuotes(ctx context.Context, symbols []string) (map[string]float64, error)
}

// MarketMoodClient provides market-wide sentiment indices
type MarketMoodClient interface {
	// GetFearGreed retrieves the current Fear & Greed index (0-100)
	GetFearGreed(ctx context.Context) (int, error)

	// GetAltcoinIndex retrieves the current altcoin season index (0-100)
	GetAltcoinIndex(ctx context.Context) (int, error)
}
