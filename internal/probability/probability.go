// Package probability computes probability-of-outcome statistics under the
// lognormal, zero-drift assumption used for retail-facing display.
package probability

import (
	"math"

	"options-engine/internal/errors"
	"options-engine/internal/models"
	"options-engine/internal/pricing"
)

// Probabilities returns the probability of the option finishing in the
// money, the probability of the underlying touching the strike before
// expiry, the expected move, and the one-standard-deviation price range.
//
// The touch probability doubles the one-sided OTM probability (reflection
// principle). This is the standard retail heuristic, not an exact barrier
// formula, and downstream consumers are calibrated against its bias.
//
// At the sigma=0 / T=0 boundary the outcome is decided and probabilities
// collapse to 0 or 1, with one carve-out: spot exactly at the strike
// reports probTouch=1 (the barrier is already touched) even though
// probITM is 0 there.
func Probabilities(typ models.OptionType, s, k, sigma float64, days int) (models.ProbabilityResult, error) {
	if !typ.IsValid() {
		return models.ProbabilityResult{}, errors.NewValidationError("type", typ, "must be CALL or PUT")
	}
	if s <= 0 {
		return models.ProbabilityResult{}, errors.NewValidationError("spot", s, "must be positive")
	}
	if k <= 0 {
		return models.ProbabilityResult{}, errors.NewValidationError("strike", k, "must be positive")
	}
	if days < 0 {
		return models.ProbabilityResult{}, errors.NewValidationError("days_to_expiry", days, "must not be negative")
	}

	t := pricing.YearFraction(days)
	if t <= 0 || sigma <= 0 {
		return heaviside(typ, s, k), nil
	}

	// P(S_T > K) with zero drift: N((ln(S/K) + sigma^2 T / 2) / (sigma sqrt(T))).
	d := (math.Log(s/k) + 0.5*sigma*sigma*t) / (sigma * math.Sqrt(t))
	probITMCall := pricing.CDF(d)

	probITM := probITMCall
	if typ == models.Put {
		probITM = 1 - probITMCall
	}

	// Touch doubles the probability of finishing beyond the strike on its
	// OTM side relative to spot.
	otmProb := probITMCall
	if k < s {
		otmProb = 1 - probITMCall
	}
	probTouch := math.Min(1, 2*otmProb)

	stdDev := s * sigma * math.Sqrt(t)
	return models.ProbabilityResult{
		ProbITM:      probITM,
		ProbTouch:    probTouch,
		ExpectedMove: stdDev,
		RangeLow:     s - stdDev,
		RangeHigh:    s + stdDev,
	}, nil
}

// heaviside is the sigma=0 / T=0 boundary: the outcome is already decided,
// so probabilities collapse to 0 or 1 and the move to zero.
func heaviside(typ models.OptionType, s, k float64) models.ProbabilityResult {
	itm := 0.0
	if (typ == models.Call && s > k) || (typ == models.Put && s < k) {
		itm = 1
	}
	touch := itm
	if s == k {
		// Spot already sits on the barrier.
		touch = 1
	}
	return models.ProbabilityResult{
		ProbITM:      itm,
		ProbTouch:    touch,
		ExpectedMove: 0,
		RangeLow:     s,
		RangeHigh:    s,
	}
}
