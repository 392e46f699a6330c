package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/backtest"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/config"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/journal"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/market"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run a sentiment backtest for a symbol",
	Long: `Backtest replays daily prices through the sentiment strategy and
compares it against a buy-and-hold baseline.

Prices come from Yahoo Finance by default, or from a CSV file with
-csv (date,open,high,low,close,volume). Sentiment comes from NewsAPI
when a key is configured, otherwise from the deterministic synthetic
generator.

Settings come from a config file when -f is given; flags set on the
command line override it. Runs are journaled to the backend the config
selects, or to SQLite with --db.

Examples:
  newsbot backtest -s AAPL -n 90 -c 10000 --db runs.sqlite
  newsbot backtest -f newsbot.yaml -n 30`,
	RunE: runBacktest,
}

var (
	btConfigPath string
	btSymbol     string
	btDays       int
	btCapital    float64
	btPosition   float64
	btBuyThresh  float64
	btSellThresh float64
	btCSVPath    string
	btDBPath     string
	btSynthetic  bool
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	backtestCmd.Flags().StringVarP(&btSymbol, "symbol", "s", "AAPL", "stock symbol to backtest")
	backtestCmd.Flags().IntVarP(&btDays, "days", "n", 90, "number of calendar days of history")
	backtestCmd.Flags().Float64VarP(&btCapital, "capital", "c", 10_000, "starting capital")
	backtestCmd.Flags().Float64VarP(&btPosition, "position", "p", 0.2, "fraction of cash per buy (0-1]")
	backtestCmd.Flags().Float64Var(&btBuyThresh, "buy-threshold", 0.5, "sentiment above this triggers a buy")
	backtestCmd.Flags().Float64Var(&btSellThresh, "sell-threshold", -0.5, "sentiment below this triggers a sell")
	backtestCmd.Flags().StringVar(&btCSVPath, "csv", "", "replay prices from CSV instead of Yahoo Finance")
	backtestCmd.Flags().StringVar(&btDBPath, "db", "", "SQLite journal DB path (overrides config journal)")
	backtestCmd.Flags().BoolVar(&btSynthetic, "synthetic", false, "force synthetic sentiment even if a news key is configured")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(btConfigPath)
	if err != nil {
		return err
	}
	applyBacktestFlags(cmd, cfg)

	var prices market.PriceSource = market.NewYahooSource()
	if btCSVPath != "" {
		prices = market.NewCSVSource(btCSVPath)
	}

	sentiment, err := sentimentSource(cfg.News, btSynthetic)
	if err != nil {
		return err
	}

	runner, err := backtest.NewRunner(prices, sentiment, backtest.Config{
		BuyThreshold:   cfg.Strategy.BuyThreshold,
		SellThreshold:  cfg.Strategy.SellThreshold,
		PositionSize:   cfg.Strategy.PositionSize,
		InitialCapital: cfg.Strategy.InitialCapital,
	}, logger)
	if err != nil {
		return err
	}

	res, err := runner.Run(context.Background(), cfg.Backtest.Symbol, cfg.Backtest.Days)
	if err != nil {
		return err
	}

	printResult(res)

	return journalResult(cfg, res)
}

// applyBacktestFlags layers explicitly-set flags over the loaded config.
// Flags left at their defaults defer to the config file.
func applyBacktestFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("symbol") {
		cfg.Backtest.Symbol = btSymbol
	}
	if cmd.Flags().Changed("days") {
		cfg.Backtest.Days = btDays
	}
	if cmd.Flags().Changed("capital") {
		cfg.Strategy.InitialCapital = btCapital
	}
	if cmd.Flags().Changed("position") {
		cfg.Strategy.PositionSize = btPosition
	}
	if cmd.Flags().Changed("buy-threshold") {
		cfg.Strategy.BuyThreshold = btBuyThresh
	}
	if cmd.Flags().Changed("sell-threshold") {
		cfg.Strategy.SellThreshold = btSellThresh
	}
}

// journalResult persists the run. --db forces SQLite at that path; with a
// config file the configured backend is used; with neither, nothing is saved.
func journalResult(cfg *config.Config, res *backtest.Result) error {
	var (
		j    journal.Journal
		dest string
		err  error
	)

	switch {
	case btDBPath != "":
		j, err = journal.NewSQLite(btDBPath)
		dest = btDBPath
	case btConfigPath != "":
		j, err = newJournal(cfg.Journal)
		dest = cfg.Journal.DBPath
		if cfg.Journal.Type == "csv" {
			dest = cfg.Journal.RunsFile
		}
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	runID, err := journal.SaveResult(j, res)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	fmt.Printf("\nRun saved: %s (%s)\n", runID, dest)
	return nil
}

func printResult(res *backtest.Result) {
	m := res.Metrics

	fmt.Printf("Backtest Complete: %s\n", res.Symbol)
	fmt.Printf("  Trading Days: %d\n", len(res.Daily))
	fmt.Printf("  Strategy Return: %.2f%%\n", m.StrategyReturn*100)
	fmt.Printf("  Buy & Hold Return: %.2f%%\n", m.BuyHoldReturn*100)
	fmt.Printf("  Outperformance: %.2f%%\n", m.Outperformance*100)
	fmt.Printf("  Sharpe (strategy): %.2f\n", m.StrategySharpe)
	fmt.Printf("  Sharpe (buy & hold): %.2f\n", m.BuyHoldSharpe)
	fmt.Printf("  Max Drawdown: %.2f%%\n", m.MaxDrawdown*100)
	fmt.Printf("  Trades: %d (win rate %.1f%%)\n", m.TotalTrades, m.WinRate*100)
	fmt.Printf("  Final Value: $%.2f\n", m.FinalPortfolioValue)
}
