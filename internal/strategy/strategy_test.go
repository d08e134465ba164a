package strategy

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"options-engine/internal/errors"
	"options-engine/internal/models"
)

func TestStraddleBreakevensExact(t *testing.T) {
	st, err := Straddle(100, 100, 0.05, 0.25, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(st.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(st.Legs))
	}
	premium := st.Legs[0].Premium + st.Legs[1].Premium
	if st.NetPremium != premium {
		t.Errorf("netPremium = %v, want %v", st.NetPremium, premium)
	}

	// Breakevens are exactly K -/+ premium.
	if st.Breakevens[0] != 100-premium || st.Breakevens[1] != 100+premium {
		t.Errorf("breakevens = %v, want [%v, %v]", st.Breakevens, 100-premium, 100+premium)
	}

	if !st.MaxProfit.Unlimited {
		t.Error("straddle max profit must be the unlimited sentinel")
	}
	if st.MaxLoss.Unlimited || st.MaxLoss.Amount != premium {
		t.Errorf("maxLoss = %+v, want the paid debit %v", st.MaxLoss, premium)
	}
}

func TestStraddlePayoffAtBreakevensIsZero(t *testing.T) {
	st, err := Straddle(100, 100, 0.05, 0.25, 30)
	if err != nil {
		t.Fatal(err)
	}

	for _, be := range st.Breakevens {
		if payoff := st.PayoffAt(be); math.Abs(payoff) > 1e-9 {
			t.Errorf("payoff at breakeven %v = %v, want 0", be, payoff)
		}
	}
	// Worst case sits at the strike.
	if payoff := st.PayoffAt(100); math.Abs(payoff+st.NetPremium) > 1e-9 {
		t.Errorf("payoff at strike = %v, want %v", payoff, -st.NetPremium)
	}
}

func TestIronCondorScenario(t *testing.T) {
	// S=100, strikes (90, 95, 105, 110), sigma=25%, 30 days.
	st, err := IronCondor(100, 90, 95, 105, 110, 0.05, 0.25, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	credit := st.NetPremium
	if credit <= 0 {
		t.Fatalf("netPremium = %v, want a positive credit", credit)
	}
	if math.Abs(credit-1.519203) > 1e-4 {
		t.Errorf("credit = %v, want 1.519203", credit)
	}

	// Breakevens bracket the short strikes.
	if st.Breakevens[0] != 95-credit || st.Breakevens[1] != 105+credit {
		t.Errorf("breakevens = %v, want [%v, %v]", st.Breakevens, 95-credit, 105+credit)
	}

	// maxProfit + maxLoss equals the wing width (5).
	total := st.MaxProfit.Amount + st.MaxLoss.Amount
	if math.Abs(total-5) > 1e-9 {
		t.Errorf("maxProfit + maxLoss = %v, want 5", total)
	}
	if st.MaxLoss.Amount < 0 {
		t.Errorf("maxLoss = %v, must never be negative", st.MaxLoss.Amount)
	}
	if st.Degenerate {
		t.Error("well-formed condor flagged degenerate")
	}
}

func TestIronCondorUsesWiderWing(t *testing.T) {
	// Put wing 10 wide, call wing 5 wide.
	st, err := IronCondor(100, 85, 95, 105, 110, 0.05, 0.25, 30)
	if err != nil {
		t.Fatal(err)
	}

	want := 10 - st.NetPremium
	if math.Abs(st.MaxLoss.Amount-want) > 1e-9 {
		t.Errorf("maxLoss = %v, want wider wing minus credit = %v", st.MaxLoss.Amount, want)
	}
}

func TestIronCondorDegenerateClampsLossAtZero(t *testing.T) {
	// With a deeply negative rate and extreme volatility both spreads price
	// near their discounted widths and the combined credit exceeds the
	// 5-wide wing: discounting at e^(-rT) > 1 pushes it past the cap that
	// binds under non-negative rates.
	st, err := IronCondor(100, 90, 95, 105, 110, -0.20, 3.0, 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(st.NetPremium-6.071169) > 1e-4 {
		t.Errorf("credit = %v, want 6.071169", st.NetPremium)
	}
	if st.NetPremium <= 5 {
		t.Fatalf("credit = %v, expected to exceed the wing width 5", st.NetPremium)
	}
	if st.MaxLoss.Amount != 0 {
		t.Errorf("maxLoss = %v, want clamped to 0", st.MaxLoss.Amount)
	}
	if st.MaxLoss.Unlimited {
		t.Error("maxLoss flagged unlimited on a defined-risk condor")
	}
	if !st.Degenerate {
		t.Error("credit above wing width not flagged degenerate")
	}
}

func TestIronCondorRejectsOutOfOrderStrikes(t *testing.T) {
	bad := [][4]float64{
		{95, 90, 105, 110},  // puts swapped
		{90, 95, 110, 105},  // calls swapped
		{90, 105, 95, 110},  // spreads interleaved
		{90, 90, 105, 110},  // duplicate strike
	}

	for _, ks := range bad {
		_, err := IronCondor(100, ks[0], ks[1], ks[2], ks[3], 0.05, 0.25, 30)
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("strikes %v: err = %v, want ErrInvalidInput", ks, err)
		}
	}
}

func TestIronCondorPayoffBetweenShortStrikesIsCredit(t *testing.T) {
	st, err := IronCondor(100, 90, 95, 105, 110, 0.05, 0.25, 30)
	if err != nil {
		t.Fatal(err)
	}

	for _, price := range []float64{95, 100, 105} {
		if payoff := st.PayoffAt(price); math.Abs(payoff-st.NetPremium) > 1e-9 {
			t.Errorf("payoff at %v = %v, want full credit %v", price, payoff, st.NetPremium)
		}
	}
	// Beyond either long strike the loss is pinned at maxLoss.
	for _, price := range []float64{50, 90, 110, 200} {
		if payoff := st.PayoffAt(price); math.Abs(payoff+st.MaxLoss.Amount) > 1e-9 {
			t.Errorf("payoff at %v = %v, want %v", price, payoff, -st.MaxLoss.Amount)
		}
	}
}

func TestProfitBoundJSON(t *testing.T) {
	st, err := Straddle(100, 100, 0.05, 0.25, 30)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"max_profit":"unlimited"`) {
		t.Errorf("JSON missing unlimited sentinel: %s", data)
	}

	var back models.Strategy
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.MaxProfit.Unlimited {
		t.Error("round trip lost the unlimited sentinel")
	}
	if back.MaxLoss.Amount != st.MaxLoss.Amount {
		t.Errorf("round trip maxLoss = %v, want %v", back.MaxLoss.Amount, st.MaxLoss.Amount)
	}
}
