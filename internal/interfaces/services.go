// Package interfaces defines service contracts for Folio
package interfaces

import (
	"context"

	"github.com/mverhoef/folio/internal/models"
)

// TrackerService manages portfolio positions and valuation
type TrackerService interface {
	// GetPortfolio retrieves positions of a kind, enriched with current
	// prices and aggregated totals
	GetPortfolio(ctx context.Context, kind models.AssetKind) (*models.PortfolioView, error)

	// AddPosition validates, normalizes and stores a new position
	AddPosition(ctx context.Context, position *models.Position) (*models.Position, error)

	// UpdatePosition replaces a stored position by ID
	UpdatePosition(ctx context.Context, id string, position *models.Position) (*models.Position, error)

	// RemovePosition deletes a position by ID
	RemovePosition(ctx context.Context, id string) error

	// RefreshPrices re-fetches quotes for all open positions and persists
	// the enriched values
	RefreshPrices(ctx context.Context) error
}

// AnalyzerService derives buy signals and market sentiment
type AnalyzerService interface {
	// AnalyzeTokens ranks tracked crypto assets by buy-signal strength
	AnalyzeTokens(ctx context.Context) ([]models.AnalyzedToken, error)

	// MarketMood retrieves classified market-wide sentiment indices
	MarketMood(ctx context.Context) (*models.MarketMood, error)
}

// NetWorthService manages net worth snapshots and their timeline
type NetWorthService interface {
	// ListRecords retrieves all stored snapshots, unprocessed
	ListRecords(ctx context.Context) ([]*models.NetWorthRecord, error)

	// AddRecord validates and stores a new snapshot
	AddRecord(ctx context.Context, record *models.NetWorthRecord) (*models.NetWorthRecord, error)

	// UpdateRecord replaces a stored snapshot by ID
	UpdateRecord(ctx context.Context, id string, record *models.NetWorthRecord) (*models.NetWorthRecord, error)

	// RemoveRecord deletes a snapshot by ID
	RemoveRecord(ctx context.Context, id string) error

	// Timeline processes all snapshots chronologically with deltas and
	// a summary of recent and total growth
	Timeline(ctx context.Context) (*models.NetWorthTimeline, error)

	// RenderChart produces a PNG chart of the net worth timeline
	RenderChart(ctx context.Context) ([]byte, error)
}
