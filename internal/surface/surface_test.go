package surface

import (
	"testing"

	"options-engine/internal/errors"
)

func TestGenerateGridShapeAndOrder(t *testing.T) {
	expiries := []int{30, 7, 90}
	sv, err := Generate(100, 0.05, 0.30, expiries, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sv.Points) != 3*11 {
		t.Fatalf("points = %d, want %d", len(sv.Points), 3*11)
	}

	// Rows ordered by ascending expiry, then ascending strike.
	wantExpiries := []int{7, 30, 90}
	for row := 0; row < 3; row++ {
		for col := 0; col < 11; col++ {
			p := sv.Points[row*11+col]
			if p.ExpiryDays != wantExpiries[row] {
				t.Fatalf("point (%d,%d) expiry = %d, want %d", row, col, p.ExpiryDays, wantExpiries[row])
			}
			if col > 0 && p.Strike <= sv.Points[row*11+col-1].Strike {
				t.Fatalf("strikes not ascending within expiry %d", p.ExpiryDays)
			}
		}
	}
}

func TestGenerateFlatVolAcrossSurface(t *testing.T) {
	sv, err := Generate(100, 0.05, 0.30, []int{7, 30}, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range sv.Points {
		if p.ImpliedVol != 0.30 {
			t.Errorf("point (%d, %v) impliedVol = %v, want flat 0.30", p.ExpiryDays, p.Strike, p.ImpliedVol)
		}
		if p.TheoreticalPrice < 0 {
			t.Errorf("point (%d, %v) price = %v, want >= 0", p.ExpiryDays, p.Strike, p.TheoreticalPrice)
		}
	}
}

func TestGenerateTimeValueGrowsWithExpiry(t *testing.T) {
	sv, err := Generate(100, 0.05, 0.30, []int{7, 30, 90}, 1)
	if err != nil {
		t.Fatal(err)
	}
	// A single ATM strike per expiry: the call price must rise with time.
	for i := 1; i < len(sv.Points); i++ {
		if sv.Points[i].TheoreticalPrice <= sv.Points[i-1].TheoreticalPrice {
			t.Errorf("price at %dd = %v not above price at %dd = %v",
				sv.Points[i].ExpiryDays, sv.Points[i].TheoreticalPrice,
				sv.Points[i-1].ExpiryDays, sv.Points[i-1].TheoreticalPrice)
		}
	}
}

func TestGenerateStrikeCountRespectedNearZeroSpot(t *testing.T) {
	// Spot 2 on a 1-point grid cannot go 10 strikes down; the ladder pads
	// upward instead of emitting non-positive strikes.
	sv, err := Generate(2, 0.05, 0.50, []int{30}, 21)
	if err != nil {
		t.Fatal(err)
	}
	if len(sv.Points) != 21 {
		t.Fatalf("points = %d, want 21", len(sv.Points))
	}
	for _, p := range sv.Points {
		if p.Strike <= 0 {
			t.Fatalf("non-positive strike %v in surface", p.Strike)
		}
	}
}

func TestGenerateTinySpotSingleStrike(t *testing.T) {
	// Spot below half a step rounds to an ATM strike of zero, so the raw
	// ladder is empty; the grid must still produce positive strikes.
	sv, err := Generate(0.3, 0.05, 0.50, []int{30}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(sv.Points) != 1 {
		t.Fatalf("points = %d, want 1", len(sv.Points))
	}
	if sv.Points[0].Strike != 1 {
		t.Errorf("strike = %v, want 1 (smallest grid strike)", sv.Points[0].Strike)
	}

	sv, err = Generate(0.3, 0.05, 0.50, []int{30}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(sv.Points) != 4 {
		t.Fatalf("points = %d, want 4", len(sv.Points))
	}
	for _, p := range sv.Points {
		if p.Strike <= 0 {
			t.Fatalf("non-positive strike %v in surface", p.Strike)
		}
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	if _, err := Generate(-1, 0.05, 0.30, []int{30}, 5); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("negative spot: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Generate(100, 0.05, 0.30, []int{30, -7}, 5); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("negative expiry: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Generate(100, 0.05, 0.30, []int{30}, 0); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("zero strike count: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Generate(100, 0.05, 0.30, nil, 5); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("empty expiries: err = %v, want ErrInvalidInput", err)
	}
}

func TestATMStrike(t *testing.T) {
	tests := []struct {
		spot float64
		want float64
	}{
		{102, 100},
		{103, 105},
		{76.2, 75},
		{12.4, 12},
	}
	for _, tt := range tests {
		if got := ATMStrike(tt.spot); got != tt.want {
			t.Errorf("ATMStrike(%v) = %v, want %v", tt.spot, got, tt.want)
		}
	}
}
