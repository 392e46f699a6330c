package market

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// YahooSource fetches daily bars from the Yahoo Finance chart API.
type YahooSource struct{}

// NewYahooSource returns a Yahoo Finance backed PriceSource.
func NewYahooSource() *YahooSource {
	return &YahooSource{}
}

// GetPriceHistory returns up to `days` calendar days of daily bars ending
// today. Non-trading days are simply absent from the series.
func (s *YahooSource) GetPriceHistory(ctx context.Context, symbol string, days int) ([]Bar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, fmt.Errorf("market: days must be positive, got %d", days)
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	var bars []Bar
	for iter.Next() {
		b := iter.Bar()
		// Yahoo reports halted or delisted days with zero quotes.
		if b.Close.Cmp(decimal.Zero) <= 0 {
			continue
		}
		bars = append(bars, Bar{
			Date:   time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("market: fetch history for %s: %w", symbol, err)
	}

	return bars, nil
}
