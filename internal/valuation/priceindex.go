// Package valuation implements the pure computation core: price indices,
// buy-signal classification, position enrichment, portfolio aggregation,
// chronological processing, and buy-analysis ranking. Every function is a
// stateless transform over its explicit inputs.
package valuation

// PriceIndex normalizes a current price against a historical low/high band:
// (current - low) / (high - low). The result is not clamped: it is negative
// when the price has fallen below the recorded low and exceeds 1 when the
// price has broken above the recorded high; both are meaningful.
//
// Returns nil when either bound is zero or the range is degenerate
// (low >= high). A position without usable bounds must not break the
// pipeline; nil propagates as an UNKNOWN signal.
func PriceIndex(current, low, high float64) *float64 {
	if low == 0 || high == 0 || low >= high {
		return nil
	}
	idx := (current - low) / (high - low)
	return &idx
}
