package news

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://newsapi.org/v2"

// Client fetches articles from NewsAPI and aggregates their sentiment.
// Construct it explicitly and inject it where needed; there is no shared
// lazily-initialized instance.
type Client struct {
	http   *resty.Client
	scorer *Scorer

	mu    sync.Mutex
	cache map[string]Summary // keyed by symbol + date
}

// NewClient creates a NewsAPI client. baseURL may be empty to use the public
// endpoint; tests point it at a local server.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("news: api key is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("X-Api-Key", apiKey)

	return &Client{
		http:   http,
		scorer: NewScorer(),
		cache:  make(map[string]Summary),
	}, nil
}

type apiResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// FetchArticles returns scored articles for a symbol published on the given
// date.
func (c *Client) FetchArticles(ctx context.Context, symbol string, date time.Time) ([]Article, error) {
	day := date.Format("2006-01-02")

	var out apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        searchQuery(symbol),
			"from":     day,
			"to":       day,
			"language": "en",
			"sortBy":   "relevancy",
			"pageSize": "100",
		}).
		SetResult(&out).
		Get("/everything")
	if err != nil {
		return nil, fmt.Errorf("news: fetch articles for %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("news: fetch articles for %s: status %d: %s",
			symbol, resp.StatusCode(), out.Message)
	}

	articles := make([]Article, 0, len(out.Articles))
	for _, a := range out.Articles {
		text := a.Title + ". " + a.Description
		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Sentiment:   c.scorer.Score(text),
		})
	}
	return articles, nil
}

// Summarize fetches and aggregates sentiment for a symbol on a date. Results
// are cached per symbol and day.
func (c *Client) Summarize(ctx context.Context, symbol string, date time.Time) (Summary, error) {
	key := symbol + "|" + date.Format("2006-01-02")

	c.mu.Lock()
	if s, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return s, nil
	}
	c.mu.Unlock()

	articles, err := c.FetchArticles(ctx, symbol, date)
	if err != nil {
		return Summary{}, err
	}

	var total float64
	for _, a := range articles {
		total += a.Sentiment
	}

	avg := 0.0
	if len(articles) > 0 {
		avg = total / float64(len(articles))
	}

	s := Summary{
		Symbol:       symbol,
		Sentiment:    avg,
		ArticleCount: len(articles),
		Articles:     articles,
		Timestamp:    time.Now(),
	}

	c.mu.Lock()
	c.cache[key] = s
	c.mu.Unlock()

	return s, nil
}

// DailySentiment implements SentimentSource.
func (c *Client) DailySentiment(ctx context.Context, symbol string, date time.Time) (float64, error) {
	s, err := c.Summarize(ctx, symbol, date)
	if err != nil {
		return 0, err
	}
	return s.Sentiment, nil
}

// searchQuery widens the query for well-known tickers so headline matches
// are not limited to the raw symbol.
func searchQuery(symbol string) string {
	names := map[string]string{
		"AAPL":    "Apple",
		"GOOGL":   "Google",
		"MSFT":    "Microsoft",
		"AMZN":    "Amazon",
		"TSLA":    "Tesla",
		"META":    "Meta Facebook",
		"NVDA":    "NVIDIA",
		"BTC-USD": "Bitcoin",
		"ETH-USD": "Ethereum",
	}
	if name, ok := names[symbol]; ok {
		return symbol + " OR " + name
	}
	return symbol
}
