package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"FolioLens/internal/locale"
	"FolioLens/internal/menu"
)

// Config holds all application configuration. Every field is optional; a
// missing file yields the interactive English defaults.
type Config struct {
	Locale           string `yaml:"locale"`
	InvalidSelection string `yaml:"invalid_selection"`
	OutputDir        string `yaml:"output_dir"`
	Years            int    `yaml:"years"`
	DataSource       struct {
		Provider   string `yaml:"provider"`
		BaseURL    string `yaml:"base_url"`
		APIKey     string `yaml:"api_key"`
		AutoAdjust *bool  `yaml:"auto_adjust"`
	} `yaml:"data_source"`
	Chart struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"chart"`
	Schedule struct {
		Cron    string   `yaml:"cron"`
		Tickers []string `yaml:"tickers"`
	} `yaml:"schedule"`
	Portfolio []menu.Option `yaml:"portfolio"`
	Proxy     string        `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("FOLIO_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("FOLIO_INVALID_SELECTION"); v != "" {
		cfg.InvalidSelection = v
	}
	if v := os.Getenv("FOLIO_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("FOLIO_YEARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Years = n
		}
	}
	if v := os.Getenv("FOLIO_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("FOLIO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("FOLIO_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("FOLIO_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults
	if cfg.Locale == "" {
		cfg.Locale = locale.English.Name
	}
	if cfg.Years == 0 {
		cfg.Years = 5
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.AutoAdjust == nil {
		on := true
		cfg.DataSource.AutoAdjust = &on
	}
	if cfg.Chart.Enabled == nil {
		on := true
		cfg.Chart.Enabled = &on
	}
	if len(cfg.Portfolio) == 0 {
		cfg.Portfolio = append([]menu.Option(nil), menu.DefaultOptions...)
	}
	if len(cfg.Schedule.Tickers) == 0 {
		for _, o := range cfg.Portfolio {
			cfg.Schedule.Tickers = append(cfg.Schedule.Tickers, o.Ticker)
		}
	}

	return cfg, nil
}

// Validate checks that all fields are consistent.
func (c *Config) Validate() error {
	if _, err := locale.Lookup(c.Locale); err != nil {
		return err
	}
	if c.InvalidSelection != "" && !locale.ValidPolicy(locale.SelectionPolicy(c.InvalidSelection)) {
		return fmt.Errorf("invalid_selection must be %q or %q", locale.Terminate, locale.Continue)
	}
	if c.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	switch c.DataSource.Provider {
	case "yahoo", "finance-go":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	for i, o := range c.Portfolio {
		if o.Ticker == "" {
			return fmt.Errorf("portfolio[%d].ticker is required", i)
		}
	}
	return nil
}

// ResolveLocale returns the configured locale, English if unknown.
func (c *Config) ResolveLocale() locale.Locale {
	loc, err := locale.Lookup(c.Locale)
	if err != nil {
		return locale.English
	}
	return loc
}
