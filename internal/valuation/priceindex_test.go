package valuation

import "testing"

func TestPriceIndex(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		low      float64
		high     float64
		want     float64
		wantNil  bool
	}{
		{"midpoint", 55, 10, 100, 0.5, false},
		{"at low", 10, 10, 100, 0, false},
		{"at high", 100, 10, 100, 1, false},
		{"below low goes negative", 1, 10, 100, -0.1, false},
		{"above high exceeds one", 190, 10, 100, 2, false},
		{"negative low is a valid bound", 0, -10, 10, 0.5, false},
		{"zero low", 50, 0, 100, 0, true},
		{"zero high", 50, 10, 0, 0, true},
		{"inverted range", 50, 100, 10, 0, true},
		{"equal bounds", 50, 10, 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceIndex(tt.current, tt.low, tt.high)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("PriceIndex(%v, %v, %v) = %v, want nil", tt.current, tt.low, tt.high, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("PriceIndex(%v, %v, %v) = nil, want %v", tt.current, tt.low, tt.high, tt.want)
			}
			if *got != tt.want {
				t.Errorf("PriceIndex(%v, %v, %v) = %v, want %v", tt.current, tt.low, tt.high, *got, tt.want)
			}
		})
	}
}

func TestPriceIndex_Formula(t *testing.T) {
	// For any valid band the result is exactly (current-low)/(high-low).
	cases := []struct{ current, low, high float64 }{
		{42, 1, 2},
		{0.003, 0.001, 0.09},
		{73000, 3200, 110000},
	}
	for _, c := range cases {
		got := PriceIndex(c.current, c.low, c.high)
		if got == nil {
			t.Fatalf("PriceIndex(%v, %v, %v) = nil, want value", c.current, c.low, c.high)
		}
		want := (c.current - c.low) / (c.high - c.low)
		if *got != want {
			t.Errorf("PriceIndex(%v, %v, %v) = %v, want %v", c.current, c.low, c.high, *got, want)
		}
	}
}

func TestPriceIndex_IndependentBands(t *testing.T) {
	// All-time and one-year invocations are independent: a degenerate
	// one-year band does not poison the all-time result.
	allTime := PriceIndex(50, 10, 100)
	oneYear := PriceIndex(50, 0, 0)

	if allTime == nil {
		t.Fatal("all-time index should be valid")
	}
	if oneYear != nil {
		t.Fatalf("one-year index should be nil, got %v", *oneYear)
	}
}
