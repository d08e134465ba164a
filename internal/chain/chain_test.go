package chain

import (
	"math"
	"testing"

	"options-engine/internal/errors"
	"options-engine/internal/models"
)

func TestStrikeStep(t *testing.T) {
	tests := []struct {
		spot float64
		want float64
	}{
		{250, 5},
		{100.01, 5},
		{100, 2.5},
		{75, 2.5},
		{50.5, 2.5},
		{50, 1},
		{12, 1},
	}

	for _, tt := range tests {
		if got := StrikeStep(tt.spot); got != tt.want {
			t.Errorf("StrikeStep(%v) = %v, want %v", tt.spot, got, tt.want)
		}
	}
}

func TestStrikeLadderCenteredAndAscending(t *testing.T) {
	strikes := StrikeLadder(102, DefaultSpan)

	if len(strikes) != 2*DefaultSpan+1 {
		t.Fatalf("ladder length = %d, want %d", len(strikes), 2*DefaultSpan+1)
	}
	// 102 rounds to ATM 100 on a 5-point grid.
	if strikes[0] != 50 || strikes[DefaultSpan] != 100 || strikes[len(strikes)-1] != 150 {
		t.Errorf("ladder = [%v ... %v ... %v], want [50 ... 100 ... 150]",
			strikes[0], strikes[DefaultSpan], strikes[len(strikes)-1])
	}
	for i := 1; i < len(strikes); i++ {
		if strikes[i] <= strikes[i-1] {
			t.Fatalf("ladder not ascending at %d: %v", i, strikes)
		}
	}
}

func TestStrikeLadderDropsNonPositiveStrikes(t *testing.T) {
	// Spot 3 on a 1-point grid: ATM 3, ten steps down would reach -7.
	strikes := StrikeLadder(3, 10)

	for _, k := range strikes {
		if k <= 0 {
			t.Fatalf("ladder contains non-positive strike %v", k)
		}
	}
	if strikes[0] != 1 || strikes[len(strikes)-1] != 13 {
		t.Errorf("ladder = [%v ... %v], want [1 ... 13]", strikes[0], strikes[len(strikes)-1])
	}
}

func TestGeneratePreservesOrderAndPricesBothSides(t *testing.T) {
	strikes := []float64{90, 95, 100, 105, 110}
	c, err := Generate(100, 0.05, 0.25, strikes, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.Rows) != len(strikes) {
		t.Fatalf("rows = %d, want %d", len(c.Rows), len(strikes))
	}
	for i, row := range c.Rows {
		if row.Strike != strikes[i] {
			t.Errorf("row %d strike = %v, want %v", i, row.Strike, strikes[i])
		}
		if row.Call.Price < 0 || row.Put.Price < 0 {
			t.Errorf("strike %v: negative price call=%v put=%v", row.Strike, row.Call.Price, row.Put.Price)
		}
		if row.Call.Quote.Type != models.Call || row.Put.Quote.Type != models.Put {
			t.Errorf("strike %v: quote types mislabeled", row.Strike)
		}
		if row.Call.Quote.Volatility != 0.25 || row.Put.Quote.Volatility != 0.25 {
			t.Errorf("strike %v: flat vol not propagated", row.Strike)
		}
	}

	// Calls lose value and puts gain value as the strike rises.
	for i := 1; i < len(c.Rows); i++ {
		if c.Rows[i].Call.Price > c.Rows[i-1].Call.Price+1e-9 {
			t.Errorf("call price increased with strike at %v", c.Rows[i].Strike)
		}
		if c.Rows[i].Put.Price < c.Rows[i-1].Put.Price-1e-9 {
			t.Errorf("put price decreased with strike at %v", c.Rows[i].Strike)
		}
	}
}

func TestGenerateDeltaSigns(t *testing.T) {
	c, err := Generate(100, 0.05, 0.25, StrikeLadder(100, 5), 30)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range c.Rows {
		if row.Call.Greeks.Delta < 0 || row.Call.Greeks.Delta > 1 {
			t.Errorf("strike %v: call delta %v out of [0,1]", row.Strike, row.Call.Greeks.Delta)
		}
		if row.Put.Greeks.Delta < -1 || row.Put.Greeks.Delta > 0 {
			t.Errorf("strike %v: put delta %v out of [-1,0]", row.Strike, row.Put.Greeks.Delta)
		}
		if math.Abs(row.Call.Greeks.Gamma-row.Put.Greeks.Gamma) > 1e-12 {
			t.Errorf("strike %v: gamma differs between call and put", row.Strike)
		}
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	if _, err := Generate(0, 0.05, 0.25, []float64{100}, 30); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("zero spot: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Generate(100, 0.05, 0.25, []float64{100, -5}, 30); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("negative strike: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Generate(100, 0.05, 0.25, []float64{100}, -1); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("negative days: err = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateExpiryDayChain(t *testing.T) {
	c, err := Generate(100, 0.05, 0.25, []float64{90, 100, 110}, 0)
	if err != nil {
		t.Fatalf("expiry-day chain must not error: %v", err)
	}
	// Prices collapse to intrinsic.
	if c.Rows[0].Call.Price != 10 || c.Rows[2].Put.Price != 10 {
		t.Errorf("intrinsic collapse failed: call@90=%v put@110=%v",
			c.Rows[0].Call.Price, c.Rows[2].Put.Price)
	}
}
