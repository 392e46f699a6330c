// Package market provides daily price history for backtesting.
package market

import (
	"context"
	"time"
)

// Bar represents one day of OHLCV data.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSource delivers historical daily bars for a symbol, ordered by
// ascending date. Gaps are allowed and an empty series is not an error;
// callers decide how to render "no data".
type PriceSource interface {
	GetPriceHistory(ctx context.Context, symbol string, days int) ([]Bar, error)
}
