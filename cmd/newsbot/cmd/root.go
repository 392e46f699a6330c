package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/backtest"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/config"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/internal/logging"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/journal"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/news"
)

var rootCmd = &cobra.Command{
	Use:   "newsbot",
	Short: "A news-sentiment trading strategy backtester",
	Long: `Newsbot backtests a sentiment-driven trading strategy against daily
stock prices.

It provides tools for:
  - Backtesting the sentiment strategy against Yahoo Finance or CSV prices
  - Scoring news headlines from NewsAPI with a keyword lexicon
  - Journaling runs, trades, and daily equity to SQLite or CSV
  - Serving backtests and sentiment lookups over HTTP`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional; real deployments set env vars directly.
		_ = godotenv.Load()

		logger = logging.NewLogger(logLevel)
		logging.SetDefault(logger)
	},
}

var (
	logLevel string
	logger   *slog.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig loads the config file when a path is given and falls back to
// defaults otherwise. Flags explicitly set on the command line are layered
// over the result by the individual commands.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newJournal builds the journal backend the config selects.
func newJournal(jc config.JournalConfig) (journal.Journal, error) {
	if jc.Type == "csv" {
		return journal.NewCSV(jc.RunsFile, jc.TradesFile, jc.DailyFile)
	}
	return journal.NewSQLite(jc.DBPath)
}

// sentimentSource picks live NewsAPI sentiment when a key is available and
// falls back to the deterministic synthetic generator otherwise. Config
// values win over environment variables.
func sentimentSource(nc config.NewsConfig, synthetic bool) (backtest.SentimentSource, error) {
	apiKey := nc.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("NEWS_API_KEY")
	}
	baseURL := nc.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv("NEWS_API_BASE_URL")
	}

	if synthetic || apiKey == "" {
		if !synthetic {
			logger.Info("no news api key configured, using synthetic sentiment")
		}
		return backtest.SyntheticSentiment{}, nil
	}

	client, err := news.NewClient(apiKey, baseURL)
	if err != nil {
		return nil, err
	}
	return backtest.LiveSentiment{Source: client}, nil
}
