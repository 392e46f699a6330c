package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query saved backtest runs",
	Long: `Query and display backtest records from the SQLite journal.

Subcommands:
  runs   - List recent runs
  show   - Show one run's summary and trades

Examples:
  newsbot journal runs
  newsbot journal show <run-id>`,
}

var journalRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalRuns,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run's summary and trades",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunsCmd)
	journalCmd.AddCommand(journalShowCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./newsbot.sqlite", "path to SQLite journal DB")
	journalRunsCmd.Flags().IntVarP(&journalLimit, "limit", "l", 20, "maximum runs to list")
}

func runJournalRuns(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	runs, err := j.ListRuns(journalLimit)
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%s  %-6s  %s → %s  return %+.2f%%  trades %d\n",
			r.RunID, r.Symbol,
			r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"),
			r.StrategyReturn*100, r.TotalTrades)
	}
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	runID := args[0]

	run, err := j.GetRun(runID)
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	trades, err := j.ListTradesByRun(runID)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	daily, err := j.ListDailyByRun(runID)
	if err != nil {
		return fmt.Errorf("query daily: %w", err)
	}

	fmt.Printf("Run %s: %s\n", run.RunID, run.Symbol)
	fmt.Printf("  Period: %s → %s (%d trading days)\n",
		run.StartDate.Format("2006-01-02"), run.EndDate.Format("2006-01-02"), len(daily))
	fmt.Printf("  Capital: $%.2f → $%.2f (%+.2f%%)\n",
		run.InitialCapital, run.FinalValue, run.StrategyReturn*100)
	fmt.Printf("  Buy & Hold: %+.2f%%\n", run.BuyHoldReturn*100)
	fmt.Printf("  Trades: %d\n\n", run.TotalTrades)

	for _, t := range trades {
		fmt.Printf("  %s  %-4s  %8.2f x %10.4f  sentiment %+.2f\n",
			t.Timestamp.Format("2006-01-02"), t.Action, t.Price, t.Shares, t.Sentiment)
	}
	return nil
}
