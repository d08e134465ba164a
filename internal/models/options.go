// Package models defines the value types produced by the pricing engine.
// Every type is immutable after construction and safe to serialize as JSON.
package models

import (
	"encoding/json"
	"time"
)

// OptionType identifies a call or a put.
type OptionType string

const (
	Call OptionType = "CALL"
	Put  OptionType = "PUT"
)

// IsValid reports whether the option type is CALL or PUT.
func (t OptionType) IsValid() bool {
	return t == Call || t == Put
}

// OrderSide identifies the direction of a strategy leg.
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

// OptionQuote is the immutable input tuple for a single pricing call.
type OptionQuote struct {
	Type         OptionType `json:"type"`
	Spot         float64    `json:"spot"`
	Strike       float64    `json:"strike"`
	DaysToExpiry int        `json:"days_to_expiry"`
	RiskFreeRate float64    `json:"risk_free_rate"`
	Volatility   float64    `json:"volatility"`
}

// Greeks holds the option price sensitivities.
// Theta is per calendar day; vega and rho are per 1% move.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// ProbabilityResult holds probability-of-outcome statistics for one strike.
type ProbabilityResult struct {
	ProbITM      float64    `json:"prob_itm"`
	ProbTouch    float64    `json:"prob_touch"`
	ExpectedMove float64    `json:"expected_move"`
	RangeLow     float64    `json:"one_std_dev_low"`
	RangeHigh    float64    `json:"one_std_dev_high"`
}

// OptionEntry is one priced contract inside a chain row.
type OptionEntry struct {
	Quote  OptionQuote `json:"quote"`
	Price  float64     `json:"price"`
	Greeks Greeks      `json:"greeks"`
}

// ChainRow is one strike of an options chain: a priced call and put.
type ChainRow struct {
	Strike float64     `json:"strike"`
	Call   OptionEntry `json:"call"`
	Put    OptionEntry `json:"put"`
}

// Chain is an options chain at a single expiry, ascending by strike.
type Chain struct {
	Spot         float64    `json:"spot"`
	DaysToExpiry int        `json:"days_to_expiry"`
	Rows         []ChainRow `json:"rows"`
}

// StrategyLeg is one leg of a multi-leg option strategy.
type StrategyLeg struct {
	Type     OptionType `json:"type"`
	Strike   float64    `json:"strike"`
	Side     OrderSide  `json:"side"`
	Quantity int        `json:"quantity"`
	Premium  float64    `json:"premium"`
}

// ProfitBound is a profit or loss bound that may be unbounded.
// It marshals to a number, or to the string "unlimited".
type ProfitBound struct {
	Amount    float64
	Unlimited bool
}

// Limited returns a finite bound.
func Limited(amount float64) ProfitBound {
	return ProfitBound{Amount: amount}
}

// Unbounded returns the unlimited sentinel.
func Unbounded() ProfitBound {
	return ProfitBound{Unlimited: true}
}

func (b ProfitBound) MarshalJSON() ([]byte, error) {
	if b.Unlimited {
		return json.Marshal("unlimited")
	}
	return json.Marshal(b.Amount)
}

func (b *ProfitBound) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Unbounded()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*b = Limited(f)
	return nil
}

// Strategy is an evaluated multi-leg option strategy. It is constructed,
// reported, and discarded per request; there is no persistent identity.
type Strategy struct {
	Name         string        `json:"name"`
	Spot         float64       `json:"spot"`
	DaysToExpiry int           `json:"days_to_expiry"`
	Legs         []StrategyLeg `json:"legs"`
	NetPremium   float64       `json:"net_premium"`
	Breakevens   []float64     `json:"breakevens"`
	MaxProfit    ProfitBound   `json:"max_profit"`
	MaxLoss      ProfitBound   `json:"max_loss"`
	// Degenerate marks a likely-misconfigured strategy, e.g. an iron condor
	// whose credit exceeds its wing width.
	Degenerate bool `json:"degenerate,omitempty"`
}

// PayoffAt returns the strategy's net profit if the underlying settles at
// price on expiry day. Premiums paid count against the payoff, premiums
// received count toward it.
func (s Strategy) PayoffAt(price float64) float64 {
	var total float64
	for _, leg := range s.Legs {
		intrinsic := 0.0
		switch leg.Type {
		case Call:
			if price > leg.Strike {
				intrinsic = price - leg.Strike
			}
		case Put:
			if price < leg.Strike {
				intrinsic = leg.Strike - price
			}
		}
		qty := float64(leg.Quantity)
		if leg.Side == Buy {
			total += qty * (intrinsic - leg.Premium)
		} else {
			total += qty * (leg.Premium - intrinsic)
		}
	}
	return total
}

// IVSurfacePoint is one (expiry, strike) cell of an IV surface.
type IVSurfacePoint struct {
	ExpiryDays       int     `json:"expiry_days"`
	Strike           float64 `json:"strike"`
	TheoreticalPrice float64 `json:"theoretical_price"`
	ImpliedVol       float64 `json:"implied_vol"`
}

// IVSurface is a rectangular grid of theoretical prices across
// expiries x strikes, ordered by ascending expiry then ascending strike.
type IVSurface struct {
	Spot   float64          `json:"spot"`
	Points []IVSurfacePoint `json:"points"`
}

// PricePoint is a single historical close, the input unit of the
// volatility estimator and the price-history store.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}
