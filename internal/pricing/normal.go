// Package pricing implements closed-form Black-Scholes option pricing and
// the Greeks. All functions are pure; concurrent callers need no locking.
package pricing

import "math"

// cdfSaturation is the |x| beyond which the normal CDF is pinned to 0 or 1.
// Past eight standard deviations the tail mass is below 1e-15, well under
// the 1e-7 accuracy contract.
const cdfSaturation = 8.0

// CDF returns the standard normal cumulative distribution at x.
func CDF(x float64) float64 {
	if x > cdfSaturation {
		return 1
	}
	if x < -cdfSaturation {
		return 0
	}
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// PDF returns the standard normal density at x.
func PDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
