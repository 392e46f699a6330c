// Package news fetches articles and scores their sentiment.
package news

import (
	"context"
	"time"
)

// Article is one scored news item.
type Article struct {
	Title       string
	Description string
	URL         string
	PublishedAt time.Time
	Sentiment   float64
}

// Summary aggregates article sentiment for a symbol on a date.
type Summary struct {
	Symbol       string
	Sentiment    float64
	ArticleCount int
	Articles     []Article
	Timestamp    time.Time
}

// SentimentSource provides a daily aggregate sentiment score in [-1, 1] for
// a symbol. Implementations may hit live APIs; retry and caching policy
// belongs to them, not to the backtest core.
type SentimentSource interface {
	DailySentiment(ctx context.Context, symbol string, date time.Time) (float64, error)
}
