// Package volatility estimates annualized historical volatility from a
// close-price series, used as an implied-volatility proxy when no market IV
// is available.
package volatility

import (
	"math"

	"github.com/montanaflynn/stats"

	"options-engine/internal/errors"
	"options-engine/internal/models"
)

// TradingDaysPerYear is the default annualization factor for daily returns.
// Expiry time elsewhere uses 365 calendar days; the two conventions are
// intentionally different.
const TradingDaysPerYear = 252

// MinConfidentObservations is the series length below which callers should
// flag the estimate as low-confidence. The estimator itself still returns a
// value for anything down to two closes.
const MinConfidentObservations = 20

// Annualized computes annualized historical volatility from an ordered
// close-price series: population variance of the log returns, scaled by
// sqrt(tradingDays). Fewer than two closes is ErrInsufficientData.
func Annualized(closes []float64, tradingDays int) (float64, error) {
	if len(closes) < 2 {
		return 0, errors.Wrapf(errors.ErrInsufficientData,
			"volatility estimate needs at least 2 closes, got %d", len(closes))
	}
	if tradingDays <= 0 {
		return 0, errors.NewValidationError("trading_days", tradingDays, "must be positive")
	}

	logReturns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, errors.NewValidationError("closes", closes[i], "prices must be positive")
		}
		logReturns = append(logReturns, math.Log(closes[i]/closes[i-1]))
	}

	variance, err := stats.PopulationVariance(logReturns)
	if err != nil {
		return 0, errors.Wrap(err, "variance of log returns")
	}

	return math.Sqrt(variance * float64(tradingDays)), nil
}

// FromSeries is Annualized over PricePoints with the default annualization.
func FromSeries(points []models.PricePoint) (float64, error) {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return Annualized(closes, TradingDaysPerYear)
}

// LowConfidence reports whether an estimate over n observations should be
// flagged as low-confidence by the caller.
func LowConfidence(n int) bool {
	return n < MinConfidentObservations
}
