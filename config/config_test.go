package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			"valid default",
			func(c *Config) {},
			"",
		},
		{
			"buy threshold above range",
			func(c *Config) { c.Strategy.BuyThreshold = 1.5 },
			"buy_threshold",
		},
		{
			"sell threshold below range",
			func(c *Config) { c.Strategy.SellThreshold = -1.5 },
			"sell_threshold",
		},
		{
			"inverted thresholds",
			func(c *Config) { c.Strategy.BuyThreshold = -0.5; c.Strategy.SellThreshold = 0.5 },
			"buy_threshold must not be below sell_threshold",
		},
		{
			"zero position size",
			func(c *Config) { c.Strategy.PositionSize = 0 },
			"position_size",
		},
		{
			"position size above one",
			func(c *Config) { c.Strategy.PositionSize = 1.2 },
			"position_size",
		},
		{
			"negative capital",
			func(c *Config) { c.Strategy.InitialCapital = -100 },
			"initial_capital",
		},
		{
			"empty symbol",
			func(c *Config) { c.Backtest.Symbol = "" },
			"symbol",
		},
		{
			"zero days",
			func(c *Config) { c.Backtest.Days = 0 },
			"days",
		},
		{
			"bad journal type",
			func(c *Config) { c.Journal.Type = "postgres" },
			"journal.type",
		},
		{
			"csv journal missing files",
			func(c *Config) { c.Journal.DailyFile = "" },
			"daily_file",
		},
		{
			"sqlite journal missing db path",
			func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "" },
			"db_path",
		},
		{
			"empty server addr",
			func(c *Config) { c.Server.Addr = "" },
			"server.addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Backtest.Symbol = "TSLA"
	cfg.Strategy.BuyThreshold = 0.3
	cfg.News.APIKey = "k123"

	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveAndLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.Journal.Type = "sqlite"
	cfg.Journal.DBPath = filepath.Join(dir, "runs.db")

	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Strategy.BuyThreshold = -0.9 // below sell threshold
	require.NoError(t, cfg.SaveToFile(path))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/config.yaml")
	assert.Error(t, err)
}
