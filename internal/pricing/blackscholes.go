package pricing

import (
	"math"

	"options-engine/internal/errors"
	"options-engine/internal/models"
)

// DaysPerYear converts calendar days to expiry into a year fraction.
// Note this is distinct from the 252 trading days used to annualize
// historical returns; both conventions are intentional.
const DaysPerYear = 365.0

// YearFraction converts calendar days to expiry into years.
func YearFraction(days int) float64 {
	return float64(days) / DaysPerYear
}

// d1d2 returns the two Black-Scholes quantiles. Callers must have already
// rejected non-positive S, K and degenerate T, sigma.
func d1d2(s, k, t, r, sigma float64) (float64, float64) {
	sqrtT := math.Sqrt(t)
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * sqrtT)
	return d1, d1 - sigma*sqrtT
}

// intrinsic returns the expiry value of an option.
func intrinsic(typ models.OptionType, s, k float64) float64 {
	if typ == models.Call {
		return math.Max(s-k, 0)
	}
	return math.Max(k-s, 0)
}

// validate rejects inputs the formulas cannot price.
func validate(typ models.OptionType, s, k float64) error {
	if !typ.IsValid() {
		return errors.NewValidationError("type", typ, "must be CALL or PUT")
	}
	if s <= 0 {
		return errors.NewValidationError("spot", s, "must be positive")
	}
	if k <= 0 {
		return errors.NewValidationError("strike", k, "must be positive")
	}
	return nil
}

// Price returns the Black-Scholes theoretical price of a European option.
// T is the time to expiry in years. T<=0 and sigma<=0 are defined
// boundaries, not errors: the price collapses to intrinsic value.
func Price(typ models.OptionType, s, k, t, r, sigma float64) (float64, error) {
	if err := validate(typ, s, k); err != nil {
		return 0, err
	}
	if t <= 0 || sigma <= 0 {
		return intrinsic(typ, s, k), nil
	}

	d1, d2 := d1d2(s, k, t, r, sigma)
	discount := math.Exp(-r * t)
	if typ == models.Call {
		return s*CDF(d1) - k*discount*CDF(d2), nil
	}
	return k*discount*CDF(-d2) - s*CDF(-d1), nil
}

// PriceDays is Price with the expiry given in calendar days.
func PriceDays(typ models.OptionType, s, k float64, days int, r, sigma float64) (float64, error) {
	if days < 0 {
		return 0, errors.NewValidationError("days_to_expiry", days, "must not be negative")
	}
	return Price(typ, s, k, YearFraction(days), r, sigma)
}
