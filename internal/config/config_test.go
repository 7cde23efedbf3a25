package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "NVDA", cfg.Symbol)
		assert.Equal(t, "1y", cfg.Range)
		assert.Equal(t, 14, cfg.RSIPeriod)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.NotEmpty(t, cfg.Schedule.AssessCron)
		require.NoError(t, cfg.Validate())
	})

	t.Run("yaml file values are honored", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"symbol: AAPL\nrange: 6mo\nrsi_period: 7\nserver:\n  addr: \":9090\"\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "AAPL", cfg.Symbol)
		assert.Equal(t, "6mo", cfg.Range)
		assert.Equal(t, 7, cfg.RSIPeriod)
		assert.Equal(t, ":9090", cfg.Server.Addr)
	})

	t.Run("environment overrides yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("symbol: AAPL\n"), 0o644))

		t.Setenv("SYMBOL", "MSFT")
		t.Setenv("RSI_PERIOD", "21")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "MSFT", cfg.Symbol)
		assert.Equal(t, 21, cfg.RSIPeriod)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("symbol: [unclosed"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		return cfg
	}

	t.Run("rsi_period below 1 is rejected", func(t *testing.T) {
		cfg := base()
		cfg.RSIPeriod = 0
		require.Error(t, cfg.Validate())

		cfg.RSIPeriod = -3
		require.Error(t, cfg.Validate())
	})

	t.Run("telegram token without chat id is rejected", func(t *testing.T) {
		cfg := base()
		cfg.Telegram.BotToken = "token"
		require.Error(t, cfg.Validate())

		cfg.Telegram.ChatID = "42"
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty symbol is rejected", func(t *testing.T) {
		cfg := base()
		cfg.Symbol = ""
		require.Error(t, cfg.Validate())
	})
}
