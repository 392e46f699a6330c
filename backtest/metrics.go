package backtest

import (
	"math"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/portfolio"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/strategy"
)

// tradingDaysPerYear annualizes the Sharpe ratio.
const tradingDaysPerYear = 252

// Metrics summarizes a completed run. Every field is finite: degenerate
// inputs (zero variance, zero trades) resolve to 0 rather than NaN or Inf.
type Metrics struct {
	StrategyReturn      float64 `json:"strategy_return"`
	BuyHoldReturn       float64 `json:"buy_hold_return"`
	Outperformance      float64 `json:"outperformance"`
	StrategySharpe      float64 `json:"strategy_sharpe"`
	BuyHoldSharpe       float64 `json:"buy_hold_sharpe"`
	MaxDrawdown         float64 `json:"max_drawdown"`
	TotalTrades         int     `json:"total_trades"`
	WinRate             float64 `json:"win_rate"`
	FinalPortfolioValue float64 `json:"final_portfolio_value"`
	FinalBuyHoldValue   float64 `json:"final_buy_hold_value"`
}

func computeMetrics(daily []DailyRecord, trades []portfolio.Trade, initialCapital float64) Metrics {
	if len(daily) == 0 {
		return Metrics{}
	}

	final := daily[len(daily)-1]

	strategyValues := make([]float64, len(daily))
	buyHoldValues := make([]float64, len(daily))
	for i, d := range daily {
		strategyValues[i] = d.PortfolioValue
		buyHoldValues[i] = d.BuyHoldValue
	}

	strategyReturn := (final.PortfolioValue - initialCapital) / initialCapital
	buyHoldReturn := (final.BuyHoldValue - initialCapital) / initialCapital

	return Metrics{
		StrategyReturn:      sanitize(strategyReturn),
		BuyHoldReturn:       sanitize(buyHoldReturn),
		Outperformance:      sanitize(strategyReturn - buyHoldReturn),
		StrategySharpe:      sharpeRatio(strategyValues),
		BuyHoldSharpe:       sharpeRatio(buyHoldValues),
		MaxDrawdown:         maxDrawdown(strategyValues),
		TotalTrades:         len(trades),
		WinRate:             winRate(trades),
		FinalPortfolioValue: final.PortfolioValue,
		FinalBuyHoldValue:   final.BuyHoldValue,
	}
}

// sharpeRatio annualizes mean over sample stdev of daily percentage changes,
// assuming a 0% risk-free rate. Fewer than two changes, or zero variance,
// gives exactly 0.
func sharpeRatio(values []float64) float64 {
	returns := pctChanges(values)
	if len(returns) < 2 {
		return 0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var sq float64
	for _, r := range returns {
		d := r - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(returns)-1))
	if std == 0 {
		return 0
	}

	return sanitize(mean / std * math.Sqrt(tradingDaysPerYear))
}

func pctChanges(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		out = append(out, values[i]/values[i-1]-1)
	}
	return out
}

// maxDrawdown returns the deepest decline from a running peak as a
// non-positive fraction of that peak.
func maxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	peak := values[0]
	worst := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			dd := (v - peak) / peak
			if dd < worst {
				worst = dd
			}
		}
	}
	return sanitize(worst)
}

// winRate counts sells that beat the price of the most recent prior buy.
// The denominator is the total trade count, buys included. That matches the
// historical behavior consumers already rely on, even though it reads like
// it should divide by sells only.
func winRate(trades []portfolio.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}

	wins := 0
	for _, t := range trades {
		if t.Action != strategy.Sell {
			continue
		}
		if isWinningSell(t, trades) {
			wins++
		}
	}
	return float64(wins) / float64(len(trades))
}

func isWinningSell(sell portfolio.Trade, trades []portfolio.Trade) bool {
	for i := len(trades) - 1; i >= 0; i-- {
		prev := trades[i]
		if prev.Timestamp.Before(sell.Timestamp) && prev.Action == strategy.Buy {
			return sell.Price > prev.Price
		}
	}
	return false
}

// sanitize maps NaN and Inf to 0 so no consumer ever sees a non-finite
// metric.
func sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
