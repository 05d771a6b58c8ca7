package valuation

import (
	"time"

	"github.com/mverhoef/folio/internal/models"
)

// Enrich combines a position with the latest spot prices and returns a copy
// carrying fresh valuation fields.
//
// Closed positions are frozen at their disposal value: the close price (0 if
// absent) is the valuation price, the price map is never consulted, and
// LastUpdated keeps its prior value to signal "not re-evaluated".
//
// Open positions degrade gracefully when a quote is missing: fresh price
// from the map, else the position's last-known CurrentPrice, else zero. The
// caller owns the previous-price snapshot; it arrives on the position
// itself, never from ambient state.
func Enrich(p models.Position, prices map[string]float64, now time.Time) models.Position {
	var price float64
	if p.IsClosed() {
		price = p.ClosePrice
	} else {
		if fresh, ok := prices[p.Symbol]; ok {
			price = fresh
		} else {
			price = p.CurrentPrice
		}
		p.LastUpdated = now
	}

	p.CurrentPrice = price
	p.CurrentValue = p.Quantity * price
	p.ProfitLoss = p.CurrentValue - p.AmountPaid
	if p.AmountPaid > 0 {
		p.ProfitLossPct = p.ProfitLoss / p.AmountPaid * 100
	} else {
		p.ProfitLossPct = 0
	}
	return p
}

// EnrichAll enriches every position in the slice against the same price
// snapshot. A missing quote for one symbol never aborts the batch.
func EnrichAll(positions []models.Position, prices map[string]float64, now time.Time) []models.Position {
	out := make([]models.Position, len(positions))
	for i, p := range positions {
		out[i] = Enrich(p, prices, now)
	}
	return out
}

// Aggregate folds enriched positions into portfolio totals. The aggregator
// is filter-agnostic: it sums whatever set it is given. RealisedProfitLoss
// is left zero here; compute it separately over the unfiltered set.
func Aggregate(positions []models.Position) models.PortfolioTotals {
	var t models.PortfolioTotals
	for _, p := range positions {
		t.TotalInvested += p.AmountPaid
		t.TotalCurrentValue += p.CurrentValue
	}
	t.TotalProfitLoss = t.TotalCurrentValue - t.TotalInvested
	if t.TotalInvested > 0 {
		t.TotalProfitLossPct = t.TotalProfitLoss / t.TotalInvested * 100
	}
	return t
}

// RealisedProfitLoss sums (currentValue - amountPaid) over closed positions
// only. It must be computed from the full unfiltered set so that realized
// P/L reflects every closed position regardless of display filters.
func RealisedProfitLoss(positions []models.Position) float64 {
	var realised float64
	for _, p := range positions {
		if p.IsClosed() {
			realised += p.CurrentValue - p.AmountPaid
		}
	}
	return realised
}
