package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		name string
		text string
		want func(t *testing.T, score float64)
	}{
		{
			"positive headline", "Apple shares surge to record high on strong profits",
			func(t *testing.T, score float64) { assert.Greater(t, score, 0.0) },
		},
		{
			"negative headline", "Tesla stock plunges after earnings miss and layoffs",
			func(t *testing.T, score float64) { assert.Less(t, score, 0.0) },
		},
		{
			"neutral headline", "Company schedules annual shareholder meeting",
			func(t *testing.T, score float64) { assert.Zero(t, score) },
		},
		{
			"empty text", "",
			func(t *testing.T, score float64) { assert.Zero(t, score) },
		},
		{
			"mixed cancels out", "Shares rise then fall",
			func(t *testing.T, score float64) { assert.Zero(t, score) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := s.Score(tt.text)
			assert.GreaterOrEqual(t, score, -1.0)
			assert.LessOrEqual(t, score, 1.0)
			tt.want(t, score)
		})
	}
}

func newsServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		assert.Equal(t, "/everything", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Api-Key"))
		assert.Equal(t, r.URL.Query().Get("from"), r.URL.Query().Get("to"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"title": "Shares surge on strong profits", "description": "record growth", "url": "http://example.com/1", "publishedAt": "2024-03-01T10:00:00Z"},
				{"title": "Analysts see gains ahead", "description": "bullish outlook", "url": "http://example.com/2", "publishedAt": "2024-03-01T11:00:00Z"}
			]
		}`))
	}))
}

func TestClientSummarize(t *testing.T) {
	srv := newsServer(t, nil)
	defer srv.Close()

	c, err := NewClient("test-key", srv.URL)
	require.NoError(t, err)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s, err := c.Summarize(context.Background(), "AAPL", date)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", s.Symbol)
	assert.Equal(t, 2, s.ArticleCount)
	assert.Greater(t, s.Sentiment, 0.0)
	assert.LessOrEqual(t, s.Sentiment, 1.0)
}

func TestClientCachesPerDay(t *testing.T) {
	var hits atomic.Int64
	srv := newsServer(t, &hits)
	defer srv.Close()

	c, err := NewClient("test-key", srv.URL)
	require.NoError(t, err)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = c.Summarize(context.Background(), "AAPL", date)
	require.NoError(t, err)
	_, err = c.Summarize(context.Background(), "AAPL", date)
	require.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load())
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status": "error", "message": "apiKey invalid"}`))
	}))
	defer srv.Close()

	c, err := NewClient("bad-key", srv.URL)
	require.NoError(t, err)

	_, err = c.DailySentiment(context.Background(), "AAPL", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("", "")
	assert.Error(t, err)
}
