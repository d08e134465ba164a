// Package surface builds implied-volatility surfaces: theoretical call
// prices across a strikes x expiries grid. The engine does not model skew
// or smile, so every point carries the single input volatility; the surface
// shape comes entirely from moneyness and time value.
package surface

import (
	"math"
	"sort"

	"options-engine/internal/chain"
	"options-engine/internal/errors"
	"options-engine/internal/models"
	"options-engine/internal/pricing"
)

// Generate builds a rectangular surface of strikeCount strikes (centered on
// the at-the-money strike using the chain ladder step rule) for each expiry.
// Points are ordered by ascending expiry, then ascending strike.
func Generate(s, r, sigma float64, expiriesDays []int, strikeCount int) (models.IVSurface, error) {
	if s <= 0 {
		return models.IVSurface{}, errors.NewValidationError("spot", s, "must be positive")
	}
	if strikeCount < 1 {
		return models.IVSurface{}, errors.NewValidationError("strike_count", strikeCount, "must be at least 1")
	}
	if len(expiriesDays) == 0 {
		return models.IVSurface{}, errors.NewValidationError("expiries", expiriesDays, "must not be empty")
	}
	for _, days := range expiriesDays {
		if days < 0 {
			return models.IVSurface{}, errors.NewValidationError("expiries", days, "must not be negative")
		}
	}

	strikes := ladder(s, strikeCount)

	expiries := make([]int, len(expiriesDays))
	copy(expiries, expiriesDays)
	sort.Ints(expiries)

	points := make([]models.IVSurfacePoint, 0, len(expiries)*len(strikes))
	for _, days := range expiries {
		for _, k := range strikes {
			price, err := pricing.PriceDays(models.Call, s, k, days, r, sigma)
			if err != nil {
				return models.IVSurface{}, err
			}
			points = append(points, models.IVSurfacePoint{
				ExpiryDays:       days,
				Strike:           k,
				TheoreticalPrice: price,
				ImpliedVol:       sigma,
			})
		}
	}

	return models.IVSurface{Spot: s, Points: points}, nil
}

// ladder trims or pads the symmetric chain ladder to exactly count strikes
// centered on the at-the-money strike.
func ladder(spot float64, count int) []float64 {
	span := count / 2
	step := chain.StrikeStep(spot)
	strikes := chain.StrikeLadder(spot, span)

	// Spot below half a step rounds to an ATM strike of zero and the whole
	// ladder gets dropped; seed the smallest positive grid strike.
	if len(strikes) == 0 {
		strikes = []float64{step}
	}

	// The symmetric ladder has 2*span+1 strikes (fewer if low strikes were
	// dropped). Trim the far end for an even count.
	for len(strikes) > count {
		strikes = strikes[:len(strikes)-1]
	}
	// Pad upward when low strikes were dropped near zero.
	for len(strikes) < count {
		strikes = append(strikes, strikes[len(strikes)-1]+step)
	}
	return strikes
}

// ATMStrike returns the grid strike nearest to spot, for display layers.
func ATMStrike(spot float64) float64 {
	step := chain.StrikeStep(spot)
	return math.Round(spot/step) * step
}
