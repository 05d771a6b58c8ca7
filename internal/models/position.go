// Package models defines data structures for Folio
package models

import (
	"fmt"
	"strings"
	"time"
)

// AssetKind distinguishes the two tracked portfolios.
type AssetKind string

const (
	AssetKindCrypto AssetKind = "crypto"
	AssetKindETF    AssetKind = "etf"
)

// ParseAssetKind maps a path/query value to an AssetKind.
func ParseAssetKind(s string) (AssetKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "crypto":
		return AssetKindCrypto, nil
	case "etf", "etfs":
		return AssetKindETF, nil
	default:
		return "", fmt.Errorf("unknown asset kind %q", s)
	}
}

// PositionStatus indicates whether a position is still held.
type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "open"
	PositionStatusClosed PositionStatus = "closed"
)

// Position is a single tracked holding (crypto token or ETF) with its cost
// basis, optional historical price bounds, and derived valuation fields.
type Position struct {
	ID            string         `json:"id,omitempty"`
	Kind          AssetKind      `json:"kind"`
	Name          string         `json:"name"`
	Symbol        string         `json:"symbol"`
	Quantity      float64        `json:"quantity"`
	PurchasePrice float64        `json:"purchase_price"`
	AmountPaid    float64        `json:"amount_paid"`
	Wallet        string         `json:"wallet,omitempty"`
	DateAdded     string         `json:"date_added,omitempty"` // "DD.MM.YY" or "YYYY-MM-DD"
	Status        PositionStatus `json:"status"`
	ClosePrice    float64        `json:"close_price,omitempty"`
	SoldPct       float64        `json:"sold_pct,omitempty"` // informational, 0-100

	// Historical price bounds, used only by the buy analyzer.
	AllTimeLow  float64 `json:"all_time_low,omitempty"`
	AllTimeHigh float64 `json:"all_time_high,omitempty"`
	OneYearLow  float64 `json:"one_year_low,omitempty"`
	OneYearHigh float64 `json:"one_year_high,omitempty"`

	// Derived valuation fields, recomputed on every valuation pass and
	// never treated as source of truth.
	CurrentPrice  float64   `json:"current_price"`
	CurrentValue  float64   `json:"current_value"`
	ProfitLoss    float64   `json:"profit_loss"`
	ProfitLossPct float64   `json:"profit_loss_pct"`
	LastUpdated   time.Time `json:"last_updated,omitempty"`
}

// IsClosed returns true when the position has been disposed.
// Closed positions are frozen at their close price and never re-priced.
func (p *Position) IsClosed() bool {
	return p.Status == PositionStatusClosed
}

// HasAnalysisBounds returns true when the position carries the all-time
// bounds the buy analyzer needs.
func (p *Position) HasAnalysisBounds() bool {
	return p.Symbol != "" && p.AllTimeLow != 0 && p.AllTimeHigh != 0
}

// Normalize canonicalizes the position in place: symbols are lowercased for
// crypto (CoinGecko ids) and uppercased for ETFs (FMP tickers), status
// defaults to open, and AmountPaid defaults to Quantity * PurchasePrice.
func (p *Position) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Symbol = strings.TrimSpace(p.Symbol)

	switch p.Kind {
	case AssetKindCrypto:
		p.Symbol = strings.ToLower(p.Symbol)
	case AssetKindETF:
		p.Symbol = strings.ToUpper(p.Symbol)
	}

	if p.Status == "" {
		p.Status = PositionStatusOpen
	}
	if p.AmountPaid == 0 {
		p.AmountPaid = p.Quantity * p.PurchasePrice
	}
}

// Validate checks required fields and numeric ranges.
func (p *Position) Validate() error {
	if p.Kind != AssetKindCrypto && p.Kind != AssetKindETF {
		return fmt.Errorf("kind must be %q or %q", AssetKindCrypto, AssetKindETF)
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if p.Quantity < 0 {
		return fmt.Errorf("quantity must be >= 0")
	}
	if p.PurchasePrice < 0 {
		return fmt.Errorf("purchase price must be >= 0")
	}
	if p.SoldPct < 0 || p.SoldPct > 100 {
		return fmt.Errorf("sold_pct must be between 0 and 100")
	}
	if p.Status != PositionStatusOpen && p.Status != PositionStatusClosed {
		return fmt.Errorf("status must be %q or %q", PositionStatusOpen, PositionStatusClosed)
	}
	if p.Status == PositionStatusOpen && p.ClosePrice != 0 {
		return fmt.Errorf("close_price is only meaningful on closed positions")
	}
	return nil
}

// PortfolioTotals are portfolio-level aggregates, purely derived from the
// current position set on every valuation pass.
type PortfolioTotals struct {
	TotalInvested      float64 `json:"total_invested"`
	TotalCurrentValue  float64 `json:"total_current_value"`
	TotalProfitLoss    float64 `json:"total_profit_loss"`
	TotalProfitLossPct float64 `json:"total_profit_loss_pct"`
	RealisedProfitLoss float64 `json:"realised_profit_loss"`
}

// PortfolioView is the enriched response for one portfolio: positions with
// fresh valuations plus the derived totals.
type PortfolioView struct {
	Kind      AssetKind       `json:"kind"`
	Positions []Position      `json:"positions"`
	Totals    PortfolioTotals `json:"totals"`
	AsOf      time.Time       `json:"as_of"`
}
