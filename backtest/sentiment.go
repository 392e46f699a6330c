package backtest

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/news"
)

// SyntheticSentiment generates a reproducible sentiment series for demo and
// test runs: a slow sine cycle over the run, gaussian noise, and an
// occasional strong jump. The generator reseeds from the date each day, so
// the same date and day-index/total pair always produces the same score.
type SyntheticSentiment struct{}

// SentimentAt implements SentimentSource.
func (SyntheticSentiment) SentimentAt(_ context.Context, _ string, date time.Time, dayIndex, totalDays int) (float64, error) {
	if totalDays <= 0 {
		totalDays = 1
	}

	h := fnv.New32a()
	h.Write([]byte(date.Format("2006-01-02")))
	rng := rand.New(rand.NewSource(int64(h.Sum32())))

	trend := math.Sin(float64(dayIndex)/float64(totalDays)*4*math.Pi) * 0.3
	noise := rng.NormFloat64() * 0.3

	// 10% of days get a strong jump in either direction.
	if rng.Float64() < 0.1 {
		if rng.Intn(2) == 0 {
			noise -= 0.5
		} else {
			noise += 0.5
		}
	}

	return clamp(trend+noise, -1, 1), nil
}

// LiveSentiment adapts a news aggregate into the runner's per-day contract.
// The day index is irrelevant for live data.
type LiveSentiment struct {
	Source news.SentimentSource
}

// SentimentAt implements SentimentSource.
func (s LiveSentiment) SentimentAt(ctx context.Context, symbol string, date time.Time, _, _ int) (float64, error) {
	return s.Source.DailySentiment(ctx, symbol, date)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
