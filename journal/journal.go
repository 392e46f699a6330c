// Package journal persists backtest runs, trades, and daily equity rows.
package journal

import (
	"time"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/backtest"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/internal/id"
)

// RunRecord summarizes one completed backtest run.
type RunRecord struct {
	RunID          string
	Symbol         string
	StartDate      time.Time
	EndDate        time.Time
	InitialCapital float64
	FinalValue     float64
	StrategyReturn float64
	BuyHoldReturn  float64
	TotalTrades    int
	CreatedAt      time.Time
}

// TradeRecord is one executed trade, keyed to its run.
type TradeRecord struct {
	TradeID       string
	RunID         string
	Timestamp     time.Time
	Action        string
	Price         float64
	Shares        float64
	Amount        float64
	Sentiment     float64
	CashAfter     float64
	HoldingsAfter float64
}

// DailyRecord is one simulated day's equity row, keyed to its run.
type DailyRecord struct {
	RunID          string
	Date           time.Time
	Price          float64
	Sentiment      float64
	Signal         string
	PortfolioValue float64
	BuyHoldValue   float64
	Cash           float64
	Holdings       float64
}

// Journal records backtest output. Implementations append only; rows are
// never updated or deleted.
type Journal interface {
	RecordRun(RunRecord) error
	RecordTrade(TradeRecord) error
	RecordDaily(DailyRecord) error
	Close() error
}

// SaveResult writes a full backtest result to the journal and returns the
// generated run ID. An empty result (no trading days) still gets a run row
// so "no data" runs remain visible in history.
func SaveResult(j Journal, res *backtest.Result) (string, error) {
	runID := id.NewRun()

	run := RunRecord{
		RunID:          runID,
		Symbol:         res.Symbol,
		InitialCapital: res.InitialCapital,
		StrategyReturn: res.Metrics.StrategyReturn,
		BuyHoldReturn:  res.Metrics.BuyHoldReturn,
		FinalValue:     res.Metrics.FinalPortfolioValue,
		TotalTrades:    res.Metrics.TotalTrades,
		CreatedAt:      time.Now().UTC(),
	}
	if len(res.Daily) > 0 {
		run.StartDate = res.Daily[0].Date
		run.EndDate = res.Daily[len(res.Daily)-1].Date
	}
	if err := j.RecordRun(run); err != nil {
		return "", err
	}

	for _, tr := range res.Trades {
		if err := j.RecordTrade(TradeRecord{
			TradeID:       id.NewTrade(),
			RunID:         runID,
			Timestamp:     tr.Timestamp,
			Action:        string(tr.Action),
			Price:         tr.Price,
			Shares:        tr.Shares,
			Amount:        tr.Amount,
			Sentiment:     tr.Sentiment,
			CashAfter:     tr.CashAfter,
			HoldingsAfter: tr.HoldingsAfter,
		}); err != nil {
			return "", err
		}
	}

	for _, d := range res.Daily {
		if err := j.RecordDaily(DailyRecord{
			RunID:          runID,
			Date:           d.Date,
			Price:          d.Price,
			Sentiment:      d.Sentiment,
			Signal:         string(d.Signal),
			PortfolioValue: d.PortfolioValue,
			BuyHoldValue:   d.BuyHoldValue,
			Cash:           d.Cash,
			Holdings:       d.Holdings,
		}); err != nil {
			return "", err
		}
	}

	return runID, nil
}
