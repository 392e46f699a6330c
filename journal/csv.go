package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs   *csv.Writer
	trades *csv.Writer
	daily  *csv.Writer
	rf     *os.File
	tf     *os.File
	df     *os.File
}

func NewCSV(runsPath, tradesPath, dailyPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	tf, err := os.Create(tradesPath)
	if err != nil {
		rf.Close()
		return nil, err
	}
	df, err := os.Create(dailyPath)
	if err != nil {
		rf.Close()
		tf.Close()
		return nil, err
	}
	closeAll := func() {
		rf.Close()
		tf.Close()
		df.Close()
	}

	rw := csv.NewWriter(rf)
	tw := csv.NewWriter(tf)
	dw := csv.NewWriter(df)

	if err := rw.Write([]string{"run_id", "symbol", "start_date", "end_date", "initial_capital", "final_value", "strategy_return", "buy_hold_return", "total_trades", "created_at"}); err != nil {
		closeAll()
		return nil, err
	}
	if err := tw.Write([]string{"trade_id", "run_id", "timestamp", "action", "price", "shares", "amount", "sentiment", "cash_after", "holdings_after"}); err != nil {
		closeAll()
		return nil, err
	}
	if err := dw.Write([]string{"run_id", "date", "price", "sentiment", "signal", "portfolio_value", "buy_hold_value", "cash", "holdings"}); err != nil {
		closeAll()
		return nil, err
	}

	for _, w := range []*csv.Writer{rw, tw, dw} {
		w.Flush()
		if err := w.Error(); err != nil {
			closeAll()
			return nil, err
		}
	}

	return &CSVJournal{rw, tw, dw, rf, tf, df}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Symbol,
		r.StartDate.Format(time.RFC3339),
		r.EndDate.Format(time.RFC3339),
		f(r.InitialCapital),
		f(r.FinalValue),
		f(r.StrategyReturn),
		f(r.BuyHoldReturn),
		strconv.Itoa(r.TotalTrades),
		r.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.TradeID,
		t.RunID,
		t.Timestamp.Format(time.RFC3339),
		t.Action,
		f(t.Price),
		f(t.Shares),
		f(t.Amount),
		f(t.Sentiment),
		f(t.CashAfter),
		f(t.HoldingsAfter),
	})
	if err != nil {
		return err
	}

	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordDaily(d DailyRecord) error {
	err := j.daily.Write([]string{
		d.RunID,
		d.Date.Format(time.RFC3339),
		f(d.Price),
		f(d.Sentiment),
		d.Signal,
		f(d.PortfolioValue),
		f(d.BuyHoldValue),
		f(d.Cash),
		f(d.Holdings),
	})
	if err != nil {
		return err
	}

	j.daily.Flush()
	return j.daily.Error()
}

func (j *CSVJournal) Close() error {
	for _, w := range []*csv.Writer{j.runs, j.trades, j.daily} {
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
	}

	for _, file := range []*os.File{j.rf, j.tf, j.df} {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
