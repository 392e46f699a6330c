package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/config"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Score one day of news sentiment for a symbol",
	Long: `Sentiment fetches headlines for a symbol and prints the aggregate
score in [-1, 1]. Without NEWS_API_KEY the synthetic generator is used.

Example:
  newsbot sentiment -s TSLA --date 2024-03-15`,
	RunE: runSentiment,
}

var (
	sentSymbol    string
	sentDate      string
	sentSynthetic bool
)

func init() {
	rootCmd.AddCommand(sentimentCmd)

	sentimentCmd.Flags().StringVarP(&sentSymbol, "symbol", "s", "AAPL", "stock symbol")
	sentimentCmd.Flags().StringVar(&sentDate, "date", "", "date to score (YYYY-MM-DD, default today)")
	sentimentCmd.Flags().BoolVar(&sentSynthetic, "synthetic", false, "force synthetic sentiment even if NEWS_API_KEY is set")
}

func runSentiment(cmd *cobra.Command, args []string) error {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if sentDate != "" {
		parsed, err := time.Parse("2006-01-02", sentDate)
		if err != nil {
			return fmt.Errorf("bad date %q: %w", sentDate, err)
		}
		date = parsed
	}

	source, err := sentimentSource(config.NewsConfig{}, sentSynthetic)
	if err != nil {
		return err
	}

	score, err := source.SentimentAt(context.Background(), sentSymbol, date, 0, 1)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s sentiment: %+.4f\n", sentSymbol, date.Format("2006-01-02"), score)
	return nil
}
