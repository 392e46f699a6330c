package backtest

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/portfolio"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/strategy"
)

func dailyFromValues(values []float64) []DailyRecord {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := make([]DailyRecord, len(values))
	for i, v := range values {
		out[i] = DailyRecord{
			Date:           start.AddDate(0, 0, i),
			PortfolioValue: v,
			BuyHoldValue:   v,
		}
	}
	return out
}

func TestComputeMetricsEmpty(t *testing.T) {
	assert.Equal(t, Metrics{}, computeMetrics(nil, nil, 10_000))
}

func TestComputeMetricsReturns(t *testing.T) {
	daily := dailyFromValues([]float64{10_000, 10_500, 11_000})
	daily[2].BuyHoldValue = 10_200

	m := computeMetrics(daily, nil, 10_000)

	assert.InDelta(t, 0.10, m.StrategyReturn, 1e-9)
	assert.InDelta(t, 0.02, m.BuyHoldReturn, 1e-9)
	assert.InDelta(t, 0.08, m.Outperformance, 1e-9)
	assert.Equal(t, 11_000.0, m.FinalPortfolioValue)
	assert.Equal(t, 10_200.0, m.FinalBuyHoldValue)
}

func TestSharpeRatio(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		check  func(t *testing.T, got float64)
	}{
		{
			"constant values give exactly zero",
			[]float64{100, 100, 100, 100},
			func(t *testing.T, got float64) { assert.Zero(t, got) },
		},
		{
			"single value gives zero",
			[]float64{100},
			func(t *testing.T, got float64) { assert.Zero(t, got) },
		},
		{
			"two values give zero (one return, stdev undefined)",
			[]float64{100, 110},
			func(t *testing.T, got float64) { assert.Zero(t, got) },
		},
		{
			"steady growth is strongly positive",
			[]float64{100, 101, 102.2, 103, 104.5},
			func(t *testing.T, got float64) {
				assert.Greater(t, got, 0.0)
				assert.False(t, math.IsNaN(got))
			},
		},
		{
			"steady decline is negative",
			[]float64{100, 99, 97.5, 96, 95.2},
			func(t *testing.T, got float64) { assert.Less(t, got, 0.0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, sharpeRatio(tt.values))
		})
	}
}

func TestSharpeRatioMatchesHandComputation(t *testing.T) {
	values := []float64{100, 102, 101, 104}
	// Daily returns: 0.02, -0.0098039..., 0.0297029...
	returns := []float64{0.02, 101.0/102.0 - 1, 104.0/101.0 - 1}

	mean := (returns[0] + returns[1] + returns[2]) / 3
	var sq float64
	for _, r := range returns {
		sq += (r - mean) * (r - mean)
	}
	std := math.Sqrt(sq / 2)
	want := mean / std * math.Sqrt(252)

	assert.InDelta(t, want, sharpeRatio(values), 1e-12)
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"monotonic rise has no drawdown", []float64{100, 110, 120}, 0},
		{"flat has no drawdown", []float64{100, 100, 100}, 0},
		{"single dip", []float64{100, 80, 90}, -0.2},
		{"deepest of two dips", []float64{100, 90, 120, 84}, -0.3},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, maxDrawdown(tt.values), 1e-9)
		})
	}
}

func tradeAt(day int, action strategy.Signal, price float64) portfolio.Trade {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return portfolio.Trade{
		Timestamp: start.AddDate(0, 0, day),
		Action:    action,
		Price:     price,
	}
}

func TestWinRatePinnedDenominator(t *testing.T) {
	// Two round trips, one winning sell. The denominator is ALL trades
	// (4), not just sells (2): 1 win / 4 trades = 0.25.
	trades := []portfolio.Trade{
		tradeAt(0, strategy.Buy, 100),
		tradeAt(1, strategy.Sell, 110),
		tradeAt(2, strategy.Buy, 105),
		tradeAt(3, strategy.Sell, 95),
	}

	assert.InDelta(t, 0.25, winRate(trades), 1e-9)
}

func TestWinRateUsesMostRecentPriorBuy(t *testing.T) {
	// Two buys before the sell: only the later one (at 108) is compared,
	// so the sell at 106 is a loss.
	trades := []portfolio.Trade{
		tradeAt(0, strategy.Buy, 100),
		tradeAt(1, strategy.Buy, 108),
		tradeAt(2, strategy.Sell, 106),
	}

	assert.Zero(t, winRate(trades))
}

func TestWinRateNoTrades(t *testing.T) {
	assert.Zero(t, winRate(nil))
}

func TestWinRateSellWithoutPriorBuy(t *testing.T) {
	trades := []portfolio.Trade{tradeAt(0, strategy.Sell, 110)}
	assert.Zero(t, winRate(trades))
}

func TestSanitize(t *testing.T) {
	assert.Zero(t, sanitize(math.NaN()))
	assert.Zero(t, sanitize(math.Inf(1)))
	assert.Zero(t, sanitize(math.Inf(-1)))
	assert.Equal(t, 1.5, sanitize(1.5))
	assert.Equal(t, -2.5, sanitize(-2.5))
}
