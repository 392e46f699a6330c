// Package strategy maps news sentiment scores to trading signals.
package strategy

import "fmt"

// Signal is a discrete trading action.
type Signal string

const (
	Buy  Signal = "BUY"
	Sell Signal = "SELL"
	Hold Signal = "HOLD"
)

// DefaultBuyThreshold and DefaultSellThreshold are the sentiment bands used
// when a Policy is built without explicit thresholds.
const (
	DefaultBuyThreshold  = 0.5
	DefaultSellThreshold = -0.5
)

// Policy turns a sentiment score into a signal. It is pure: the caller
// supplies the holdings state, the policy never tracks any.
type Policy struct {
	BuyThreshold  float64
	SellThreshold float64
}

// NewPolicy builds a Policy and validates the threshold band.
// BuyThreshold must be >= SellThreshold and both must lie in [-1, 1].
func NewPolicy(buyThreshold, sellThreshold float64) (Policy, error) {
	if buyThreshold < -1 || buyThreshold > 1 {
		return Policy{}, fmt.Errorf("strategy: buy_threshold %.3f out of range [-1, 1]", buyThreshold)
	}
	if sellThreshold < -1 || sellThreshold > 1 {
		return Policy{}, fmt.Errorf("strategy: sell_threshold %.3f out of range [-1, 1]", sellThreshold)
	}
	if buyThreshold < sellThreshold {
		return Policy{}, fmt.Errorf("strategy: buy_threshold %.3f must be >= sell_threshold %.3f",
			buyThreshold, sellThreshold)
	}
	return Policy{BuyThreshold: buyThreshold, SellThreshold: sellThreshold}, nil
}

// DefaultPolicy returns the policy with the default sentiment bands.
func DefaultPolicy() Policy {
	return Policy{BuyThreshold: DefaultBuyThreshold, SellThreshold: DefaultSellThreshold}
}

// Decide returns the signal for a sentiment score given the current holdings
// state. Buys require free cash, sells require an open position; everything
// else is a hold.
func (p Policy) Decide(sentiment float64, hasCash, hasHoldings bool) Signal {
	if sentiment > p.BuyThreshold && hasCash {
		return Buy
	}
	if sentiment < p.SellThreshold && hasHoldings {
		return Sell
	}
	return Hold
}
