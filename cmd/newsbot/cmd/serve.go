package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/backtest"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/httpapi"
	"github.com/DJOMATIN-AHO-Christian/news-trading-bot/market"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve backtests and sentiment lookups over HTTP",
	Long: `Serve starts the HTTP API. Settings come from a config file when -f
is given; --addr overrides the configured listen address.

Endpoints:
  GET /healthz
  GET /api/backtest/:symbol?days=90&capital=10000
  GET /api/sentiment/:symbol?date=2024-03-15

Examples:
  newsbot serve --addr :8080
  newsbot serve -f newsbot.yaml`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveAddr       string
	serveSynthetic  bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&serveSynthetic, "synthetic", false, "force synthetic sentiment even if a news key is configured")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") || cfg.Server.Addr == "" {
		cfg.Server.Addr = serveAddr
	}

	sentiment, err := sentimentSource(cfg.News, serveSynthetic)
	if err != nil {
		return err
	}

	server := httpapi.NewServer(market.NewYahooSource(), sentiment, backtest.Config{
		BuyThreshold:   cfg.Strategy.BuyThreshold,
		SellThreshold:  cfg.Strategy.SellThreshold,
		PositionSize:   cfg.Strategy.PositionSize,
		InitialCapital: cfg.Strategy.InitialCapital,
	}, logger)

	logger.Info("starting http server", "addr", cfg.Server.Addr)
	if err := server.Router().Run(cfg.Server.Addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
