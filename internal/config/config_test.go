package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("FOLIO_LOCALE", "")
	t.Setenv("FOLIO_CRON", "")
	t.Setenv("FOLIO_PROVIDER", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Locale != "en" || cfg.Years != 5 || cfg.DataSource.Provider != "yahoo" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if len(cfg.Portfolio) != 5 || cfg.Portfolio[0].Ticker != "VOO" {
		t.Errorf("expected default portfolio, got %v", cfg.Portfolio)
	}
	if !*cfg.Chart.Enabled || !*cfg.DataSource.AutoAdjust {
		t.Error("chart and auto-adjust should default on")
	}
	if cfg.Schedule.Cron != "" {
		t.Errorf("expected interactive mode by default, got cron %q", cfg.Schedule.Cron)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
locale: es
invalid_selection: terminate
years: 3
data_source:
  provider: rest
  base_url: http://localhost:9000
chart:
  enabled: false
portfolio:
  - label: Apple
    ticker: AAPL
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_LOCALE", "")
	t.Setenv("FOLIO_PROVIDER", "")
	t.Setenv("FOLIO_CRON", "0 0 18 * * 1-5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if cfg.ResolveLocale().FileSuffix != "5_anos" {
		t.Errorf("expected Spanish locale, got %q", cfg.Locale)
	}
	if cfg.Years != 3 || *cfg.Chart.Enabled {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Schedule.Cron != "0 0 18 * * 1-5" {
		t.Errorf("env override not applied: %q", cfg.Schedule.Cron)
	}
	if len(cfg.Schedule.Tickers) != 1 || cfg.Schedule.Tickers[0] != "AAPL" {
		t.Errorf("schedule tickers should default to portfolio, got %v", cfg.Schedule.Tickers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"locale", func(c *Config) { c.Locale = "fr" }},
		{"policy", func(c *Config) { c.InvalidSelection = "retry" }},
		{"years", func(c *Config) { c.Years = -1 }},
		{"provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }},
		{"rest url", func(c *Config) { c.DataSource.Provider = "rest"; c.DataSource.BaseURL = "" }},
		{"ticker", func(c *Config) { c.Portfolio[0].Ticker = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FOLIO_LOCALE", "")
			t.Setenv("FOLIO_PROVIDER", "")
			cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
