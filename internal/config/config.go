package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Symbol    string `yaml:"symbol"`
	Range     string `yaml:"range"`      // history range requested from the data source
	RSIPeriod int    `yaml:"rsi_period"` // lookback period, must be >= 1

	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty means Yahoo Finance
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`

	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`

	Schedule struct {
		AssessCron string `yaml:"assess_cron"`
	} `yaml:"schedule"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment
// variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Symbol = v
	}
	if v := os.Getenv("HISTORY_RANGE"); v != "" {
		cfg.Range = v
	}
	if v := os.Getenv("RSI_PERIOD"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.RSIPeriod = p
		}
	}
	if v := os.Getenv("DATA_SOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_SOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("ASSESS_CRON"); v != "" {
		cfg.Schedule.AssessCron = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Symbol == "" {
		cfg.Symbol = "NVDA"
	}
	if cfg.Range == "" {
		cfg.Range = "1y"
	}
	if cfg.RSIPeriod == 0 {
		cfg.RSIPeriod = 14
	}
	if cfg.Schedule.AssessCron == "" {
		cfg.Schedule.AssessCron = "0 0 22 * * 1-5"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	return cfg, nil
}

// Validate checks that all required fields are usable.
func (c *Config) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if c.Range == "" {
		return fmt.Errorf("range is required")
	}
	if c.RSIPeriod < 1 {
		return fmt.Errorf("rsi_period must be >= 1, got %d", c.RSIPeriod)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}
