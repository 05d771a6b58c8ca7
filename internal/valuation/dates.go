package valuation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKind identifies which of the two accepted textual formats a date was
// written in.
type DateKind string

const (
	DateKindISO       DateKind = "iso"       // YYYY-MM-DD
	DateKindShortEuro DateKind = "shortEuro" // DD.MM.YY
)

// ParsedDate is the discriminated result of flexible date parsing.
type ParsedDate struct {
	Kind  DateKind
	Value time.Time
}

// DateParseError reports a date string that matched neither accepted format.
// Malformed dates fail fast: a silently-invalid date would corrupt sort
// order unpredictably.
type DateParseError struct {
	Input  string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse date %q: %s", e.Input, e.Reason)
}

// ParseFlexibleDate parses a date in either ISO "YYYY-MM-DD" form (detected
// by a '-' and length 10) or short European "DD.MM.YY" form.
//
// Two-digit years are always expanded to 20YY, with no attempt to
// disambiguate centuries. That matches the historical data already stored;
// records dated beyond 2099 would be mis-sorted. Kept for compatibility.
func ParseFlexibleDate(s string) (ParsedDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ParsedDate{}, &DateParseError{Input: s, Reason: "empty string"}
	}

	if strings.Contains(s, "-") && len(s) == 10 {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return ParsedDate{}, &DateParseError{Input: s, Reason: "invalid ISO date"}
		}
		return ParsedDate{Kind: DateKindISO, Value: t}, nil
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return ParsedDate{}, &DateParseError{Input: s, Reason: "expected DD.MM.YY or YYYY-MM-DD"}
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return ParsedDate{}, &DateParseError{Input: s, Reason: "invalid day"}
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return ParsedDate{}, &DateParseError{Input: s, Reason: "invalid month"}
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || len(parts[2]) != 2 {
		return ParsedDate{}, &DateParseError{Input: s, Reason: "invalid two-digit year"}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ParsedDate{}, &DateParseError{Input: s, Reason: "day or month out of range"}
	}

	t := time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return ParsedDate{}, &DateParseError{Input: s, Reason: "day does not exist in month"}
	}
	return ParsedDate{Kind: DateKindShortEuro, Value: t}, nil
}
