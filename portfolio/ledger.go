// Package portfolio tracks cash and holdings for a single backtest run and
// executes trading signals against a price.
package portfolio

import (
	"fmt"
	"time"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/strategy"
)

// Ledger owns the portfolio state exclusively. Cash and holdings never go
// negative: buys spend a fraction of available cash, sells liquidate the full
// position, shorts and margin do not exist here.
type Ledger struct {
	cash           float64
	holdings       float64
	initialCapital float64
	positionSize   float64

	trades []Trade
}

// State is an immutable snapshot of the ledger at a given price.
type State struct {
	Cash           float64
	Holdings       float64
	PortfolioValue float64
	TotalReturn    float64
	TradeCount     int
}

// NewLedger creates a ledger with the given starting capital. positionSize is
// the fraction of available cash committed per buy and must be in (0, 1].
func NewLedger(initialCapital, positionSize float64) (*Ledger, error) {
	if initialCapital <= 0 {
		return nil, fmt.Errorf("portfolio: initial capital must be positive, got %.2f", initialCapital)
	}
	if positionSize <= 0 || positionSize > 1 {
		return nil, fmt.Errorf("portfolio: position size must be in (0, 1], got %.3f", positionSize)
	}
	return &Ledger{
		cash:           initialCapital,
		holdings:       0,
		initialCapital: initialCapital,
		positionSize:   positionSize,
	}, nil
}

// HasCash reports whether there is cash available to buy.
func (l *Ledger) HasCash() bool { return l.cash > 0 }

// HasHoldings reports whether there is an open position to sell.
func (l *Ledger) HasHoldings() bool { return l.holdings > 0 }

// InitialCapital returns the capital the ledger was constructed with.
func (l *Ledger) InitialCapital() float64 { return l.initialCapital }

// Execute applies a signal at the given price. It returns the executed trade,
// or nil when the signal is a hold or the preconditions fail (no cash to buy,
// no holdings to sell, non-positive price). Executed trades are appended to
// the trade history.
func (l *Ledger) Execute(signal strategy.Signal, price, sentiment float64, timestamp time.Time) *Trade {
	switch signal {
	case strategy.Buy:
		if l.cash <= 0 || price <= 0 {
			return nil
		}
		amount := l.cash * l.positionSize
		shares := amount / price
		l.holdings += shares
		l.cash -= amount
		return l.record(strategy.Buy, price, shares, amount, sentiment, timestamp)

	case strategy.Sell:
		if l.holdings <= 0 {
			return nil
		}
		shares := l.holdings
		amount := shares * price
		l.cash += amount
		l.holdings = 0
		return l.record(strategy.Sell, price, shares, amount, sentiment, timestamp)
	}

	return nil
}

func (l *Ledger) record(action strategy.Signal, price, shares, amount, sentiment float64, timestamp time.Time) *Trade {
	t := Trade{
		Timestamp:     timestamp,
		Action:        action,
		Price:         price,
		Shares:        shares,
		Amount:        amount,
		Sentiment:     sentiment,
		CashAfter:     l.cash,
		HoldingsAfter: l.holdings,
	}
	l.trades = append(l.trades, t)
	return &t
}

// MarkToMarket returns the portfolio value at the given price. It does not
// mutate the ledger.
func (l *Ledger) MarkToMarket(price float64) float64 {
	return l.cash + l.holdings*price
}

// Snapshot returns an immutable view of the ledger at the given price.
func (l *Ledger) Snapshot(price float64) State {
	value := l.MarkToMarket(price)
	return State{
		Cash:           l.cash,
		Holdings:       l.holdings,
		PortfolioValue: value,
		TotalReturn:    (value - l.initialCapital) / l.initialCapital,
		TradeCount:     len(l.trades),
	}
}

// Trades returns a copy of the trade history in execution order.
func (l *Ledger) Trades() []Trade {
	out := make([]Trade, len(l.trades))
	copy(out, l.trades)
	return out
}
