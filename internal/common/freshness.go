// Package common provides shared utilities for Folio
package common

import "time"

// Freshness TTLs for data components
const (
	FreshnessSpotPrice = 1 * time.Minute  // live quotes go stale fast
	FreshnessMood      = 1 * time.Hour    // fear & greed updates daily
	FreshnessAnalysis  = 15 * time.Minute // ranked token analysis
)

// IsFresh returns true if the given timestamp is within the TTL
func IsFresh(updated time.Time, ttl time.Duration) bool {
	if updated.IsZero() {
		return false
	}
	return time.Since(updated) < ttl
}
