package pricing

import (
	"math"

	"options-engine/internal/errors"
	"options-engine/internal/models"
)

// Display-unit scaling used by trading desks: vega and rho per 1% move,
// theta per calendar day.
const (
	percentScale = 100.0
	thetaScale   = DaysPerYear
)

// Greeks returns the option sensitivities for a European option.
// T<=0 and sigma<=0 collapse to the terminal boundary: delta becomes a step
// function, every other Greek is 0. That boundary never errors.
func Greeks(typ models.OptionType, s, k, t, r, sigma float64) (models.Greeks, error) {
	if err := validate(typ, s, k); err != nil {
		return models.Greeks{}, err
	}
	if t <= 0 || sigma <= 0 {
		return terminalGreeks(typ, s, k), nil
	}

	d1, d2 := d1d2(s, k, t, r, sigma)
	sqrtT := math.Sqrt(t)
	discount := math.Exp(-r * t)
	pdfD1 := PDF(d1)

	g := models.Greeks{
		Gamma: pdfD1 / (s * sigma * sqrtT),
		Vega:  s * pdfD1 * sqrtT / percentScale,
	}
	if typ == models.Call {
		g.Delta = CDF(d1)
		g.Theta = (-s*pdfD1*sigma/(2*sqrtT) - r*k*discount*CDF(d2)) / thetaScale
		g.Rho = k * t * discount * CDF(d2) / percentScale
	} else {
		g.Delta = CDF(d1) - 1
		g.Theta = (-s*pdfD1*sigma/(2*sqrtT) + r*k*discount*CDF(-d2)) / thetaScale
		g.Rho = -k * t * discount * CDF(-d2) / percentScale
	}
	return g, nil
}

// GreeksDays is Greeks with the expiry given in calendar days.
func GreeksDays(typ models.OptionType, s, k float64, days int, r, sigma float64) (models.Greeks, error) {
	if days < 0 {
		return models.Greeks{}, errors.NewValidationError("days_to_expiry", days, "must not be negative")
	}
	return Greeks(typ, s, k, YearFraction(days), r, sigma)
}

// terminalGreeks is the expiry-day boundary: step-function delta, all else 0.
func terminalGreeks(typ models.OptionType, s, k float64) models.Greeks {
	var delta float64
	if typ == models.Call && s > k {
		delta = 1
	} else if typ == models.Put && s < k {
		delta = -1
	}
	return models.Greeks{Delta: delta}
}
