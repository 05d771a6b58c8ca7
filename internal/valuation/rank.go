package valuation

import (
	"sort"
	"time"

	"github.com/mverhoef/folio/internal/models"
)

// Rank derives the buy analysis from a position set and a price snapshot.
//
// Only positions carrying a symbol plus all-time bounds participate; the
// rest are skipped silently. Each retained position is scored against both
// its all-time and one-year bands independently, then the set is
// deduplicated by symbol (first occurrence in input order wins) and ordered
// by the all-time signal's rank. The sort is stable, so tokens sharing a
// tier keep their relative input order.
func Rank(positions []models.Position, prices map[string]float64, now time.Time) []models.AnalyzedToken {
	analyzed := make([]models.AnalyzedToken, 0, len(positions))
	seen := make(map[string]bool)

	for _, p := range positions {
		if !p.HasAnalysisBounds() {
			continue
		}
		if seen[p.Symbol] {
			continue
		}
		seen[p.Symbol] = true

		currentPrice := prices[p.Symbol] // zero when the quote is missing

		priceIndex := PriceIndex(currentPrice, p.AllTimeLow, p.AllTimeHigh)
		oneYearIndex := PriceIndex(currentPrice, p.OneYearLow, p.OneYearHigh)

		analyzed = append(analyzed, models.AnalyzedToken{
			ID:                p.ID,
			Name:              p.Name,
			Symbol:            p.Symbol,
			CurrentPrice:      currentPrice,
			PriceIndex:        priceIndex,
			OneYearPriceIndex: oneYearIndex,
			BuySignal:         Classify(priceIndex),
			OneYearBuySignal:  Classify(oneYearIndex),
			LastUpdated:       now,
		})
	}

	sort.SliceStable(analyzed, func(i, j int) bool {
		return analyzed[i].BuySignal.Rank() < analyzed[j].BuySignal.Rank()
	})

	return analyzed
}
