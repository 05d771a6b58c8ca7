package valuation

import "github.com/mverhoef/folio/internal/models"

// Classify maps a price index to a discrete buy-signal tier. Boundaries are
// inclusive on the lower tier: an index of exactly 0.20 is STRONG_BUY, and
// exactly 0.40 is BUY. A nil index (no usable bounds) classifies as UNKNOWN.
// The function is total over (-inf, +inf) and nil.
func Classify(index *float64) models.Signal {
	if index == nil {
		return models.SignalUnknown
	}
	switch idx := *index; {
	case idx <= 0.20:
		return models.SignalStrongBuy
	case idx <= 0.40:
		return models.SignalBuy
	case idx <= 0.60:
		return models.SignalCaution
	default:
		return models.SignalAvoid
	}
}

// FearGreedStatus classifies a 0-100 Fear & Greed index reading into its
// sentiment band.
func FearGreedStatus(index int) models.MoodStatus {
	switch {
	case index <= 25:
		return models.MoodStatus{Text: "Extreme Fear", Color: "#10b981", BgColor: "rgba(16, 185, 129, 0.1)"}
	case index <= 45:
		return models.MoodStatus{Text: "Fear", Color: "#34d399", BgColor: "rgba(52, 211, 153, 0.1)"}
	case index <= 55:
		return models.MoodStatus{Text: "Neutral", Color: "#9ca3af", BgColor: "rgba(107, 114, 128, 0.1)"}
	case index <= 75:
		return models.MoodStatus{Text: "Greed", Color: "#f59e0b", BgColor: "rgba(245, 158, 11, 0.1)"}
	default:
		return models.MoodStatus{Text: "Extreme Greed", Color: "#ef4444", BgColor: "rgba(239, 68, 68, 0.1)"}
	}
}

// AltcoinStatus classifies a 0-100 altcoin season index reading.
func AltcoinStatus(index int) models.MoodStatus {
	switch {
	case index <= 30:
		return models.MoodStatus{Text: "Altcoin Winter", Color: "#10b981", BgColor: "rgba(16, 185, 129, 0.1)"}
	case index <= 50:
		return models.MoodStatus{Text: "Accumulation", Color: "#34d399", BgColor: "rgba(52, 211, 153, 0.1)"}
	case index <= 70:
		return models.MoodStatus{Text: "Growth Phase", Color: "#fbbf24", BgColor: "rgba(251, 191, 36, 0.1)"}
	case index <= 85:
		return models.MoodStatus{Text: "Alt Season", Color: "#f59e0b", BgColor: "rgba(245, 158, 11, 0.1)"}
	default:
		return models.MoodStatus{Text: "Euphoria", Color: "#ef4444", BgColor: "rgba(239, 68, 68, 0.1)"}
	}
}
