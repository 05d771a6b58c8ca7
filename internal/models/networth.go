package models

// NetWorthRecord is one dated snapshot of total holdings split across the
// four tracked asset classes. Date is textual in one of two accepted
// formats: "DD.MM.YY" or ISO "YYYY-MM-DD".
type NetWorthRecord struct {
	ID     string  `json:"id,omitempty"`
	Date   string  `json:"date"`
	Fiat   float64 `json:"fiat"`
	Bonds  float64 `json:"bonds"`
	ETFs   float64 `json:"etfs"`
	Crypto float64 `json:"crypto"`
}

// NetWorth returns the record total across all asset classes.
func (r *NetWorthRecord) NetWorth() float64 {
	return r.Fiat + r.Bonds + r.ETFs + r.Crypto
}

// ProcessedNetWorthRecord is a NetWorthRecord in chronological order with
// period-over-period deltas. ChangePct is numeric; formatting to the
// historical one-decimal display string happens at the HTTP boundary.
type ProcessedNetWorthRecord struct {
	NetWorthRecord
	NetWorth  float64 `json:"net_worth"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
}

// NetWorthSummary captures the headline numbers for the dashboard: the
// latest snapshot against its predecessor, and total growth since the
// earliest record.
type NetWorthSummary struct {
	CurrentNetWorth  float64 `json:"current_net_worth"`
	MonthlyChange    float64 `json:"monthly_change"`
	MonthlyChangePct float64 `json:"monthly_change_pct"`
	TotalGrowth      float64 `json:"total_growth"`
	TotalGrowthPct   float64 `json:"total_growth_pct"`
}

// NetWorthTimeline is the processed record set plus its summary.
type NetWorthTimeline struct {
	Records []ProcessedNetWorthRecord `json:"records"`
	Summary NetWorthSummary           `json:"summary"`
}
