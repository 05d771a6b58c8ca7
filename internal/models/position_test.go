package models

import "testing"

func TestParseAssetKind(t *testing.T) {
	tests := []struct {
		input   string
		want    AssetKind
		wantErr bool
	}{
		{"crypto", AssetKindCrypto, false},
		{"etf", AssetKindETF, false},
		{"etfs", AssetKindETF, false},
		{" ETF ", AssetKindETF, false},
		{"bonds", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAssetKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAssetKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAssetKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPosition_Normalize_CryptoSymbolLowercased(t *testing.T) {
	p := Position{Kind: AssetKindCrypto, Name: "Bitcoin", Symbol: " Bitcoin ", Quantity: 2, PurchasePrice: 100}
	p.Normalize()

	if p.Symbol != "bitcoin" {
		t.Errorf("Symbol = %q, want %q", p.Symbol, "bitcoin")
	}
	if p.Status != PositionStatusOpen {
		t.Errorf("Status = %q, want default open", p.Status)
	}
	if p.AmountPaid != 200 {
		t.Errorf("AmountPaid = %v, want defaulted 200", p.AmountPaid)
	}
}

func TestPosition_Normalize_ETFSymbolUppercased(t *testing.T) {
	p := Position{Kind: AssetKindETF, Name: "S&P 500", Symbol: "sxr8.de", Quantity: 1, PurchasePrice: 500}
	p.Normalize()

	if p.Symbol != "SXR8.DE" {
		t.Errorf("Symbol = %q, want %q", p.Symbol, "SXR8.DE")
	}
}

func TestPosition_Normalize_ExplicitAmountPaidKept(t *testing.T) {
	p := Position{Kind: AssetKindCrypto, Name: "Ether", Symbol: "ethereum", Quantity: 3, PurchasePrice: 1000, AmountPaid: 2800}
	p.Normalize()

	if p.AmountPaid != 2800 {
		t.Errorf("AmountPaid = %v, want explicit 2800 preserved", p.AmountPaid)
	}
}

func TestPosition_Validate(t *testing.T) {
	valid := Position{Kind: AssetKindCrypto, Name: "Bitcoin", Symbol: "bitcoin", Quantity: 1, PurchasePrice: 100, Status: PositionStatusOpen}

	tests := []struct {
		name    string
		mutate  func(*Position)
		wantErr bool
	}{
		{"valid open position", func(p *Position) {}, false},
		{"valid closed position", func(p *Position) { p.Status = PositionStatusClosed; p.ClosePrice = 50 }, false},
		{"missing name", func(p *Position) { p.Name = "" }, true},
		{"missing symbol", func(p *Position) { p.Symbol = "" }, true},
		{"negative quantity", func(p *Position) { p.Quantity = -1 }, true},
		{"negative purchase price", func(p *Position) { p.PurchasePrice = -0.1 }, true},
		{"sold over 100", func(p *Position) { p.SoldPct = 101 }, true},
		{"bad status", func(p *Position) { p.Status = "pending" }, true},
		{"bad kind", func(p *Position) { p.Kind = "bond" }, true},
		{"close price on open position", func(p *Position) { p.ClosePrice = 10 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPosition_HasAnalysisBounds(t *testing.T) {
	p := Position{Symbol: "bitcoin", AllTimeLow: 100, AllTimeHigh: 100000}
	if !p.HasAnalysisBounds() {
		t.Error("expected bounds present")
	}

	p.AllTimeHigh = 0
	if p.HasAnalysisBounds() {
		t.Error("expected bounds missing when high is zero")
	}
}

func TestSignal_RankOrdering(t *testing.T) {
	order := []Signal{SignalStrongBuy, SignalBuy, SignalCaution, SignalAvoid, SignalUnknown}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("%s.Rank() = %d should be < %s.Rank() = %d",
				order[i-1], order[i-1].Rank(), order[i], order[i].Rank())
		}
	}

	// Unrecognized values sort with UNKNOWN, never before real tiers
	if Signal("??").Rank() != SignalUnknown.Rank() {
		t.Errorf("unrecognized signal rank = %d, want %d", Signal("??").Rank(), SignalUnknown.Rank())
	}
}

func TestNetWorthRecord_NetWorth(t *testing.T) {
	r := NetWorthRecord{Fiat: 100, Bonds: 200, ETFs: 300, Crypto: 400}
	if got := r.NetWorth(); got != 1000 {
		t.Errorf("NetWorth() = %v, want 1000", got)
	}
}
