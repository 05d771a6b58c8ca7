package valuation

import (
	"sort"
	"strconv"

	"github.com/mverhoef/folio/internal/models"
)

// ProcessNetWorth sorts net-worth records into chronological order and
// computes period-over-period deltas. The earliest record always carries
// change 0. Later records carry the delta against their immediate
// predecessor; the percentage is guarded so a zero previous net worth
// yields 0 rather than Inf.
//
// The sort is stable: records sharing a date keep their input order, so
// processing a shuffled permutation produces the same deltas as processing
// an already-sorted set. Any malformed date aborts with a DateParseError.
func ProcessNetWorth(records []models.NetWorthRecord) ([]models.ProcessedNetWorthRecord, error) {
	type dated struct {
		rec  models.NetWorthRecord
		date ParsedDate
	}

	parsed := make([]dated, len(records))
	for i, r := range records {
		d, err := ParseFlexibleDate(r.Date)
		if err != nil {
			return nil, err
		}
		parsed[i] = dated{rec: r, date: d}
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].date.Value.Before(parsed[j].date.Value)
	})

	out := make([]models.ProcessedNetWorthRecord, len(parsed))
	for i, p := range parsed {
		nw := p.rec.NetWorth()
		out[i] = models.ProcessedNetWorthRecord{
			NetWorthRecord: p.rec,
			NetWorth:       nw,
		}
		if i == 0 {
			continue
		}
		prev := out[i-1].NetWorth
		out[i].Change = nw - prev
		if prev != 0 {
			out[i].ChangePct = (nw - prev) / prev * 100
		}
	}
	return out, nil
}

// SummarizeNetWorth derives the dashboard headline numbers from processed
// records: latest vs previous snapshot, and total growth since the first.
// Divisions are guarded; an empty timeline summarizes to all zeros.
func SummarizeNetWorth(records []models.ProcessedNetWorthRecord) models.NetWorthSummary {
	var s models.NetWorthSummary
	if len(records) == 0 {
		return s
	}

	latest := records[len(records)-1]
	s.CurrentNetWorth = latest.NetWorth

	if len(records) > 1 {
		prev := records[len(records)-2]
		s.MonthlyChange = latest.NetWorth - prev.NetWorth
		if prev.NetWorth != 0 {
			s.MonthlyChangePct = s.MonthlyChange / prev.NetWorth * 100
		}
	}

	first := records[0]
	s.TotalGrowth = latest.NetWorth - first.NetWorth
	if first.NetWorth != 0 {
		s.TotalGrowthPct = s.TotalGrowth / first.NetWorth * 100
	}
	return s
}

// SortByDateAddedDesc returns positions ordered newest-first by their
// dateAdded field. This is a pure reorder for display: no deltas are
// computed. Positions without a dateAdded sort last; malformed dates
// fail fast.
func SortByDateAddedDesc(positions []models.Position) ([]models.Position, error) {
	type dated struct {
		pos     models.Position
		hasDate bool
		date    ParsedDate
	}

	parsed := make([]dated, len(positions))
	for i, p := range positions {
		parsed[i] = dated{pos: p}
		if p.DateAdded == "" {
			continue
		}
		d, err := ParseFlexibleDate(p.DateAdded)
		if err != nil {
			return nil, err
		}
		parsed[i].hasDate = true
		parsed[i].date = d
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		if parsed[i].hasDate != parsed[j].hasDate {
			return parsed[i].hasDate
		}
		return parsed[i].date.Value.After(parsed[j].date.Value)
	})

	out := make([]models.Position, len(parsed))
	for i, d := range parsed {
		out[i] = d.pos
	}
	return out, nil
}

// FormatChangePct renders a numeric change percentage with the one-decimal
// precision the dashboard has always displayed ("10.0"). Presentation only;
// the core keeps percentages numeric.
func FormatChangePct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
