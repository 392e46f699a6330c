package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	start_date DATETIME,
	end_date DATETIME,
	initial_capital REAL NOT NULL,
	final_value REAL NOT NULL,
	strategy_return REAL NOT NULL,
	buy_hold_return REAL NOT NULL,
	total_trades INTEGER NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	timestamp DATETIME NOT NULL,
	action TEXT NOT NULL,
	price REAL NOT NULL,
	shares REAL NOT NULL,
	amount REAL NOT NULL,
	sentiment REAL NOT NULL,
	cash_after REAL NOT NULL,
	holdings_after REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS daily (
	run_id TEXT NOT NULL,
	date DATETIME NOT NULL,
	price REAL NOT NULL,
	sentiment REAL NOT NULL,
	signal TEXT NOT NULL,
	portfolio_value REAL NOT NULL,
	buy_hold_value REAL NOT NULL,
	cash REAL NOT NULL,
	holdings REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id);
CREATE INDEX IF NOT EXISTS idx_daily_run ON daily(run_id, date);
`
