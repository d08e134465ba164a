// Package strategy composes and evaluates multi-leg option strategies.
// Every composer is a pure function: legs are priced with the flat-vol
// Black-Scholes model, and the result carries net premium, breakevens and
// profit/loss bounds.
package strategy

import (
	"math"

	"options-engine/internal/errors"
	"options-engine/internal/models"
	"options-engine/internal/pricing"
)

// Straddle builds a long straddle: one call and one put bought at the same
// strike. The position pays a debit and profits from a large move in either
// direction.
func Straddle(s, k, r, sigma float64, days int) (models.Strategy, error) {
	callPrice, err := pricing.PriceDays(models.Call, s, k, days, r, sigma)
	if err != nil {
		return models.Strategy{}, err
	}
	putPrice, err := pricing.PriceDays(models.Put, s, k, days, r, sigma)
	if err != nil {
		return models.Strategy{}, err
	}

	premium := callPrice + putPrice
	return models.Strategy{
		Name:         "straddle",
		Spot:         s,
		DaysToExpiry: days,
		Legs: []models.StrategyLeg{
			{Type: models.Call, Strike: k, Side: models.Buy, Quantity: 1, Premium: callPrice},
			{Type: models.Put, Strike: k, Side: models.Buy, Quantity: 1, Premium: putPrice},
		},
		NetPremium: premium,
		Breakevens: []float64{k - premium, k + premium},
		// Upside is unbounded; downside stops at zero but the loss bound is
		// the paid debit either way.
		MaxProfit: models.Unbounded(),
		MaxLoss:   models.Limited(premium),
	}, nil
}

// IronCondor builds a short iron condor: a short put spread below spot and a
// short call spread above it. Strikes must satisfy
// putBuyK < putSellK < callSellK < callBuyK; violations are rejected,
// never reordered.
func IronCondor(s, putBuyK, putSellK, callSellK, callBuyK, r, sigma float64, days int) (models.Strategy, error) {
	if !(putBuyK < putSellK && putSellK < callSellK && callSellK < callBuyK) {
		return models.Strategy{}, errors.NewValidationError("strikes",
			[]float64{putBuyK, putSellK, callSellK, callBuyK},
			"must be strictly ascending: putBuy < putSell < callSell < callBuy")
	}

	putBuy, err := pricing.PriceDays(models.Put, s, putBuyK, days, r, sigma)
	if err != nil {
		return models.Strategy{}, err
	}
	putSell, err := pricing.PriceDays(models.Put, s, putSellK, days, r, sigma)
	if err != nil {
		return models.Strategy{}, err
	}
	callSell, err := pricing.PriceDays(models.Call, s, callSellK, days, r, sigma)
	if err != nil {
		return models.Strategy{}, err
	}
	callBuy, err := pricing.PriceDays(models.Call, s, callBuyK, days, r, sigma)
	if err != nil {
		return models.Strategy{}, err
	}

	credit := (putSell - putBuy) + (callSell - callBuy)

	// Risk is carried by the wider wing; equal widths are common but not
	// assumed.
	wingWidth := math.Max(putSellK-putBuyK, callBuyK-callSellK)
	maxLoss := wingWidth - credit
	degenerate := maxLoss < 0
	if degenerate {
		maxLoss = 0
	}

	return models.Strategy{
		Name:         "iron_condor",
		Spot:         s,
		DaysToExpiry: days,
		Legs: []models.StrategyLeg{
			{Type: models.Put, Strike: putBuyK, Side: models.Buy, Quantity: 1, Premium: putBuy},
			{Type: models.Put, Strike: putSellK, Side: models.Sell, Quantity: 1, Premium: putSell},
			{Type: models.Call, Strike: callSellK, Side: models.Sell, Quantity: 1, Premium: callSell},
			{Type: models.Call, Strike: callBuyK, Side: models.Buy, Quantity: 1, Premium: callBuy},
		},
		NetPremium: credit,
		Breakevens: []float64{putSellK - credit, callSellK + credit},
		MaxProfit:  models.Limited(credit),
		MaxLoss:    models.Limited(maxLoss),
		Degenerate: degenerate,
	}, nil
}
