package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Backtest BacktestConfig `json:"backtest" yaml:"backtest"`
	News     NewsConfig     `json:"news" yaml:"news"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

// StrategyConfig contains signal and sizing parameters
type StrategyConfig struct {
	BuyThreshold   float64 `json:"buy_threshold" yaml:"buy_threshold"`
	SellThreshold  float64 `json:"sell_threshold" yaml:"sell_threshold"`
	PositionSize   float64 `json:"position_size" yaml:"position_size"`
	InitialCapital float64 `json:"initial_capital" yaml:"initial_capital"`
}

// BacktestConfig contains backtest run parameters
type BacktestConfig struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Days   int    `json:"days" yaml:"days"`
}

// NewsConfig contains NewsAPI access parameters. An empty APIKey means
// synthetic sentiment is used instead of live headlines.
type NewsConfig struct {
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// JournalConfig contains run persistence parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv" or "sqlite"
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DailyFile  string `json:"daily_file,omitempty" yaml:"daily_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ServerConfig contains HTTP API parameters
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Strategy.BuyThreshold < -1 || c.Strategy.BuyThreshold > 1 {
		return fmt.Errorf("strategy.buy_threshold must be between -1 and 1")
	}
	if c.Strategy.SellThreshold < -1 || c.Strategy.SellThreshold > 1 {
		return fmt.Errorf("strategy.sell_threshold must be between -1 and 1")
	}
	if c.Strategy.BuyThreshold < c.Strategy.SellThreshold {
		return fmt.Errorf("strategy.buy_threshold must not be below sell_threshold")
	}
	if c.Strategy.PositionSize <= 0 || c.Strategy.PositionSize > 1 {
		return fmt.Errorf("strategy.position_size must be between 0 and 1")
	}
	if c.Strategy.InitialCapital <= 0 {
		return fmt.Errorf("strategy.initial_capital must be positive")
	}
	if c.Backtest.Symbol == "" {
		return fmt.Errorf("backtest.symbol is required")
	}
	if c.Backtest.Days <= 0 {
		return fmt.Errorf("backtest.days must be positive")
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && (c.Journal.RunsFile == "" || c.Journal.TradesFile == "" || c.Journal.DailyFile == "") {
		return fmt.Errorf("journal runs_file, trades_file and daily_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Strategy: StrategyConfig{
			BuyThreshold:   0.5,
			SellThreshold:  -0.5,
			PositionSize:   0.2,
			InitialCapital: 10000,
		},
		Backtest: BacktestConfig{
			Symbol: "AAPL",
			Days:   90,
		},
		Journal: JournalConfig{
			Type:       "csv",
			RunsFile:   "./runs.csv",
			TradesFile: "./trades.csv",
			DailyFile:  "./daily.csv",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
