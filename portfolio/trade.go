package portfolio

import (
	"time"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/strategy"
)

// Trade is an immutable record of one executed order. Trades are appended to
// the ledger's history and never edited afterwards.
type Trade struct {
	Timestamp     time.Time
	Action        strategy.Signal
	Price         float64
	Shares        float64
	Amount        float64
	Sentiment     float64
	CashAfter     float64
	HoldingsAfter float64
}
