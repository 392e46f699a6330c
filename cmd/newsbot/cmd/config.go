package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage configuration files for the backtester.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  newsbot config init -o newsbot.yaml
  newsbot config validate -f newsbot.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	RunE:  runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "newsbot.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default configuration: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and run with:")
	fmt.Printf("  newsbot backtest -s %s -n %d\n", cfg.Backtest.Symbol, cfg.Backtest.Days)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Configuration valid: %s\n", configValidatePath)
	fmt.Printf("  Symbol: %s (%d days)\n", cfg.Backtest.Symbol, cfg.Backtest.Days)
	fmt.Printf("  Thresholds: buy > %.2f, sell < %.2f\n", cfg.Strategy.BuyThreshold, cfg.Strategy.SellThreshold)
	fmt.Printf("  Capital: $%.2f (%.0f%% per position)\n", cfg.Strategy.InitialCapital, cfg.Strategy.PositionSize*100)
	fmt.Printf("  Journal: %s\n", cfg.Journal.Type)
	return nil
}
