package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, symbol, start_date, end_date, initial_capital, final_value, strategy_return, buy_hold_return, total_trades, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Symbol, r.StartDate, r.EndDate, r.InitialCapital,
		r.FinalValue, r.StrategyReturn, r.BuyHoldReturn, r.TotalTrades, r.CreatedAt,
	)
	return err
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, run_id, timestamp, action, price, shares, amount, sentiment, cash_after, holdings_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.RunID, t.Timestamp, t.Action, t.Price,
		t.Shares, t.Amount, t.Sentiment, t.CashAfter, t.HoldingsAfter,
	)
	return err
}

func (j *SQLiteJournal) RecordDaily(d DailyRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO daily
		(run_id, date, price, sentiment, signal, portfolio_value, buy_hold_value, cash, holdings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.RunID, d.Date, d.Price, d.Sentiment, d.Signal,
		d.PortfolioValue, d.BuyHoldValue, d.Cash, d.Holdings,
	)
	return err
}

// GetRun returns a single run summary by ID.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, symbol, start_date, end_date, initial_capital, final_value, strategy_return, buy_hold_return, total_trades, created_at
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Symbol,
		&rec.StartDate,
		&rec.EndDate,
		&rec.InitialCapital,
		&rec.FinalValue,
		&rec.StrategyReturn,
		&rec.BuyHoldReturn,
		&rec.TotalTrades,
		&rec.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns run summaries, newest first.
func (j *SQLiteJournal) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, symbol, start_date, end_date, initial_capital, final_value, strategy_return, buy_hold_return, total_trades, created_at
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Symbol,
			&rec.StartDate,
			&rec.EndDate,
			&rec.InitialCapital,
			&rec.FinalValue,
			&rec.StrategyReturn,
			&rec.BuyHoldReturn,
			&rec.TotalTrades,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTradesByRun returns a run's trades in execution order.
func (j *SQLiteJournal) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, run_id, timestamp, action, price, shares, amount, sentiment, cash_after, holdings_after
		FROM trades
		WHERE run_id = ?
		ORDER BY timestamp ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.TradeID,
			&rec.RunID,
			&rec.Timestamp,
			&rec.Action,
			&rec.Price,
			&rec.Shares,
			&rec.Amount,
			&rec.Sentiment,
			&rec.CashAfter,
			&rec.HoldingsAfter,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDailyByRun returns a run's daily rows in date order.
func (j *SQLiteJournal) ListDailyByRun(runID string) ([]DailyRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, date, price, sentiment, signal, portfolio_value, buy_hold_value, cash, holdings
		FROM daily
		WHERE run_id = ?
		ORDER BY date ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyRecord
	for rows.Next() {
		var rec DailyRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Date,
			&rec.Price,
			&rec.Sentiment,
			&rec.Signal,
			&rec.PortfolioValue,
			&rec.BuyHoldValue,
			&rec.Cash,
			&rec.Holdings,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
