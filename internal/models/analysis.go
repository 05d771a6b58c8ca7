package models

import "time"

// Signal is the discrete buy-signal tier derived from a price index.
type Signal string

const (
	SignalStrongBuy Signal = "STRONG_BUY"
	SignalBuy       Signal = "BUY"
	SignalCaution   Signal = "CAUTION"
	SignalAvoid     Signal = "AVOID"
	SignalUnknown   Signal = "UNKNOWN"
)

// Rank returns the display priority of the signal, lowest first.
// Every tier has a rank so sorting can never silently drop one.
func (s Signal) Rank() int {
	switch s {
	case SignalStrongBuy:
		return 1
	case SignalBuy:
		return 2
	case SignalCaution:
		return 3
	case SignalAvoid:
		return 4
	default:
		return 5 // UNKNOWN and anything unrecognized sort last
	}
}

// Label returns the human-readable form of the signal.
func (s Signal) Label() string {
	switch s {
	case SignalStrongBuy:
		return "Strong Buy"
	case SignalBuy:
		return "Buy"
	case SignalCaution:
		return "Caution"
	case SignalAvoid:
		return "Avoid"
	default:
		return "—"
	}
}

// AnalyzedToken is the per-symbol buy analysis derived from positions that
// carry historical price bounds. PriceIndex values are nil when the bounds
// are missing or degenerate, which serializes as JSON null.
type AnalyzedToken struct {
	ID                string    `json:"id,omitempty"`
	Name              string    `json:"name"`
	Symbol            string    `json:"symbol"`
	CurrentPrice      float64   `json:"current_price"`
	PriceIndex        *float64  `json:"price_index"`
	OneYearPriceIndex *float64  `json:"one_year_price_index"`
	BuySignal         Signal    `json:"buy_signal"`
	OneYearBuySignal  Signal    `json:"one_year_buy_signal"`
	LastUpdated       time.Time `json:"last_updated"`
}

// MoodStatus is a classified market sentiment band with display styling.
type MoodStatus struct {
	Text    string `json:"text"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

// MarketMood carries the two market-wide sentiment indices shown alongside
// the buy analysis: the Fear & Greed index and the altcoin season index,
// both on a 0-100 scale.
type MarketMood struct {
	FearGreedIndex  int        `json:"fear_greed_index"`
	FearGreedStatus MoodStatus `json:"fear_greed_status"`
	AltcoinIndex    int        `json:"altcoin_index"`
	AltcoinStatus   MoodStatus `json:"altcoin_status"`
	FetchedAt       time.Time  `json:"fetched_at"`
}
