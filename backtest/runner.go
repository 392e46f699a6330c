// Package backtest replays daily price history through the sentiment
// strategy and measures performance against a buy-and-hold baseline.
package backtest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/market"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/portfolio"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/strategy"
)

// SentimentSource yields one sentiment score per trading day. The day index
// and total day count let deterministic generators shape a full cycle over
// the run; live sources ignore them.
type SentimentSource interface {
	SentimentAt(ctx context.Context, symbol string, date time.Time, dayIndex, totalDays int) (float64, error)
}

// Config holds the strategy parameters for a run.
type Config struct {
	BuyThreshold   float64
	SellThreshold  float64
	PositionSize   float64
	InitialCapital float64
}

// DefaultConfig mirrors the defaults the strategy ships with.
func DefaultConfig() Config {
	return Config{
		BuyThreshold:   strategy.DefaultBuyThreshold,
		SellThreshold:  strategy.DefaultSellThreshold,
		PositionSize:   0.2,
		InitialCapital: 10_000,
	}
}

// DailyRecord captures one simulated trading day. The ordered sequence of
// records is the run's primary output.
type DailyRecord struct {
	Date           time.Time
	Price          float64
	Sentiment      float64
	Signal         strategy.Signal
	PortfolioValue float64
	BuyHoldValue   float64
	Cash           float64
	Holdings       float64
	Trade          *portfolio.Trade
}

// Result is the complete output of one backtest run.
type Result struct {
	Symbol         string
	Metrics        Metrics
	Trades         []portfolio.Trade
	Daily          []DailyRecord
	InitialCapital float64
}

// Runner drives a backtest: prices in, signals and trades out, metrics at
// the end. Each run builds its own ledger, so runners are safe to reuse
// across symbols but a single run is strictly sequential.
type Runner struct {
	prices    market.PriceSource
	sentiment SentimentSource
	policy    strategy.Policy
	cfg       Config
	log       *slog.Logger
}

// NewRunner validates the configuration and wires the runner. Threshold and
// position-size violations fail here, before any data is fetched.
func NewRunner(prices market.PriceSource, sentiment SentimentSource, cfg Config, log *slog.Logger) (*Runner, error) {
	policy, err := strategy.NewPolicy(cfg.BuyThreshold, cfg.SellThreshold)
	if err != nil {
		return nil, err
	}
	// Ledger construction revalidates at run time; reject bad values early.
	if _, err := portfolio.NewLedger(cfg.InitialCapital, cfg.PositionSize); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		prices:    prices,
		sentiment: sentiment,
		policy:    policy,
		cfg:       cfg,
		log:       log,
	}, nil
}

// Run executes the backtest for a symbol over the given number of calendar
// days. An empty price series yields an empty Result, not an error; price or
// sentiment source failures propagate to the caller.
func (r *Runner) Run(ctx context.Context, symbol string, days int) (*Result, error) {
	r.log.Info("starting backtest", "symbol", symbol, "days", days)

	bars, err := r.prices.GetPriceHistory(ctx, symbol, days)
	if err != nil {
		return nil, fmt.Errorf("backtest: price history for %s: %w", symbol, err)
	}

	bars = validBars(bars)
	if len(bars) == 0 {
		r.log.Warn("no price data available", "symbol", symbol)
		return emptyResult(symbol), nil
	}

	ledger, err := portfolio.NewLedger(r.cfg.InitialCapital, r.cfg.PositionSize)
	if err != nil {
		return nil, err
	}

	// Buy-and-hold baseline: one purchase at the first close, held
	// untouched for the rest of the run.
	buyHoldShares := r.cfg.InitialCapital / bars[0].Close

	daily := make([]DailyRecord, 0, len(bars))
	for i, bar := range bars {
		sentiment, err := r.sentiment.SentimentAt(ctx, symbol, bar.Date, i, len(bars))
		if err != nil {
			return nil, fmt.Errorf("backtest: sentiment for %s on %s: %w",
				symbol, bar.Date.Format("2006-01-02"), err)
		}

		signal := r.policy.Decide(sentiment, ledger.HasCash(), ledger.HasHoldings())
		trade := ledger.Execute(signal, bar.Close, sentiment, bar.Date)
		snap := ledger.Snapshot(bar.Close)

		daily = append(daily, DailyRecord{
			Date:           bar.Date,
			Price:          bar.Close,
			Sentiment:      sentiment,
			Signal:         signal,
			PortfolioValue: snap.PortfolioValue,
			BuyHoldValue:   buyHoldShares * bar.Close,
			Cash:           snap.Cash,
			Holdings:       snap.Holdings,
			Trade:          trade,
		})
	}

	trades := ledger.Trades()
	metrics := computeMetrics(daily, trades, r.cfg.InitialCapital)

	r.log.Info("backtest complete",
		"symbol", symbol,
		"trading_days", len(daily),
		"strategy_return", metrics.StrategyReturn,
		"buy_hold_return", metrics.BuyHoldReturn,
		"trades", metrics.TotalTrades,
	)

	return &Result{
		Symbol:         symbol,
		Metrics:        metrics,
		Trades:         trades,
		Daily:          daily,
		InitialCapital: r.cfg.InitialCapital,
	}, nil
}

// validBars drops bars without a usable quote and collapses duplicate dates,
// keeping the series strictly ascending.
func validBars(bars []market.Bar) []market.Bar {
	out := bars[:0:0]
	var last time.Time
	for _, b := range bars {
		if b.Close <= 0 {
			continue
		}
		day := b.Date.Truncate(24 * time.Hour)
		if !last.IsZero() && !day.After(last) {
			continue
		}
		last = day
		out = append(out, b)
	}
	return out
}

func emptyResult(symbol string) *Result {
	return &Result{Symbol: symbol}
}
