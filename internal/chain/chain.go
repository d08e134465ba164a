// Package chain builds synthetic options chains: a priced call and put per
// strike at a single expiry, under a flat-volatility approximation.
package chain

import (
	"math"

	"options-engine/internal/errors"
	"options-engine/internal/models"
	"options-engine/internal/pricing"
)

// DefaultSpan is the number of strike steps on each side of the at-the-money
// strike in a generated ladder.
const DefaultSpan = 10

// StrikeStep returns the strike increment for a spot price. Higher-priced
// underlyings trade on wider strike grids.
func StrikeStep(spot float64) float64 {
	switch {
	case spot > 100:
		return 5
	case spot > 50:
		return 2.5
	default:
		return 1
	}
}

// StrikeLadder generates an ascending strike ladder symmetric around the
// at-the-money strike (spot rounded to the nearest step), spanning span
// steps in each direction. Strikes that would round to zero or below are
// dropped.
func StrikeLadder(spot float64, span int) []float64 {
	if spot <= 0 || span < 0 {
		return nil
	}
	step := StrikeStep(spot)
	atm := math.Round(spot/step) * step

	strikes := make([]float64, 0, 2*span+1)
	for i := -span; i <= span; i++ {
		k := atm + float64(i)*step
		if k > 0 {
			strikes = append(strikes, k)
		}
	}
	return strikes
}

// Generate prices a call and a put at every supplied strike, holding sigma
// flat across the chain (no skew). It is a pure transform: strike selection
// policy belongs to the caller and input ordering is preserved.
func Generate(s, r, sigma float64, strikes []float64, days int) (models.Chain, error) {
	if s <= 0 {
		return models.Chain{}, errors.NewValidationError("spot", s, "must be positive")
	}
	if days < 0 {
		return models.Chain{}, errors.NewValidationError("days_to_expiry", days, "must not be negative")
	}

	rows := make([]models.ChainRow, 0, len(strikes))
	for _, k := range strikes {
		call, err := entry(models.Call, s, k, days, r, sigma)
		if err != nil {
			return models.Chain{}, err
		}
		put, err := entry(models.Put, s, k, days, r, sigma)
		if err != nil {
			return models.Chain{}, err
		}
		rows = append(rows, models.ChainRow{Strike: k, Call: call, Put: put})
	}

	return models.Chain{Spot: s, DaysToExpiry: days, Rows: rows}, nil
}

func entry(typ models.OptionType, s, k float64, days int, r, sigma float64) (models.OptionEntry, error) {
	price, err := pricing.PriceDays(typ, s, k, days, r, sigma)
	if err != nil {
		return models.OptionEntry{}, err
	}
	greeks, err := pricing.GreeksDays(typ, s, k, days, r, sigma)
	if err != nil {
		return models.OptionEntry{}, err
	}
	return models.OptionEntry{
		Quote: models.OptionQuote{
			Type:         typ,
			Spot:         s,
			Strike:       k,
			DaysToExpiry: days,
			RiskFreeRate: r,
			Volatility:   sigma,
		},
		Price:  price,
		Greeks: greeks,
	}, nil
}
