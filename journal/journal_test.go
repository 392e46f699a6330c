package journal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/backtest"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/portfolio"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/strategy"
)

type memJournal struct {
	runs    []RunRecord
	trades  []TradeRecord
	daily   []DailyRecord
	failRun bool
}

func (m *memJournal) RecordRun(r RunRecord) error {
	if m.failRun {
		return errors.New("boom")
	}
	m.runs = append(m.runs, r)
	return nil
}

func (m *memJournal) RecordTrade(t TradeRecord) error {
	m.trades = append(m.trades, t)
	return nil
}

func (m *memJournal) RecordDaily(d DailyRecord) error {
	m.daily = append(m.daily, d)
	return nil
}

func (m *memJournal) Close() error { return nil }

func sampleResult() *backtest.Result {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	trade := portfolio.Trade{
		Timestamp:     start,
		Action:        strategy.Buy,
		Price:         100,
		Shares:        20,
		Amount:        2000,
		Sentiment:     0.8,
		CashAfter:     8000,
		HoldingsAfter: 20,
	}

	return &backtest.Result{
		Symbol:         "AAPL",
		InitialCapital: 10_000,
		Metrics: backtest.Metrics{
			StrategyReturn:      0.05,
			BuyHoldReturn:       0.02,
			FinalPortfolioValue: 10_500,
			TotalTrades:         1,
		},
		Trades: []portfolio.Trade{trade},
		Daily: []backtest.DailyRecord{
			{Date: start, Price: 100, Signal: strategy.Buy, PortfolioValue: 10_000, BuyHoldValue: 10_000, Cash: 8000, Holdings: 20, Trade: &trade},
			{Date: start.AddDate(0, 0, 1), Price: 105, Signal: strategy.Hold, PortfolioValue: 10_100, BuyHoldValue: 10_500, Cash: 8000, Holdings: 20},
		},
	}
}

func TestSaveResult(t *testing.T) {
	m := &memJournal{}

	runID, err := SaveResult(m, sampleResult())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "run_"))

	require.Len(t, m.runs, 1)
	run := m.runs[0]
	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, "AAPL", run.Symbol)
	assert.Equal(t, 10_000.0, run.InitialCapital)
	assert.Equal(t, 10_500.0, run.FinalValue)
	assert.Equal(t, 1, run.TotalTrades)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), run.StartDate)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), run.EndDate)
	assert.False(t, run.CreatedAt.IsZero())

	require.Len(t, m.trades, 1)
	tr := m.trades[0]
	assert.True(t, strings.HasPrefix(tr.TradeID, "trd_"))
	assert.Equal(t, runID, tr.RunID)
	assert.Equal(t, "BUY", tr.Action)
	assert.Equal(t, 100.0, tr.Price)
	assert.Equal(t, 20.0, tr.Shares)

	require.Len(t, m.daily, 2)
	assert.Equal(t, runID, m.daily[0].RunID)
	assert.Equal(t, "BUY", m.daily[0].Signal)
	assert.Equal(t, "HOLD", m.daily[1].Signal)
	assert.Equal(t, 10_500.0, m.daily[1].BuyHoldValue)
}

func TestSaveResultEmptyRun(t *testing.T) {
	m := &memJournal{}

	res := &backtest.Result{Symbol: "AAPL", InitialCapital: 10_000}

	runID, err := SaveResult(m, res)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	require.Len(t, m.runs, 1)
	assert.True(t, m.runs[0].StartDate.IsZero())
	assert.Empty(t, m.trades)
	assert.Empty(t, m.daily)
}

func TestSaveResultPropagatesError(t *testing.T) {
	m := &memJournal{failRun: true}

	_, err := SaveResult(m, sampleResult())
	assert.Error(t, err)
}
