// Package config provides configuration management for the pricing engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Pricing PricingConfig `mapstructure:"pricing"`
	Chain   ChainConfig   `mapstructure:"chain"`
	Surface SurfaceConfig `mapstructure:"surface"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PricingConfig holds numeric defaults shared by all pricing commands.
type PricingConfig struct {
	// RiskFreeRate is the annualized risk-free rate used when the caller
	// does not supply one.
	RiskFreeRate float64 `mapstructure:"risk_free_rate"`
	// DefaultVolatility is the documented 30% fallback used when no
	// historical series is available to estimate from.
	DefaultVolatility float64 `mapstructure:"default_volatility"`
	// TradingDaysPerYear annualizes historical returns. Expiry time always
	// uses 365 calendar days regardless of this setting.
	TradingDaysPerYear int `mapstructure:"trading_days_per_year"`
}

// ChainConfig holds chain generation defaults.
type ChainConfig struct {
	// StrikeSpan is the number of strike steps each side of ATM.
	StrikeSpan int `mapstructure:"strike_span"`
}

// SurfaceConfig holds IV surface generation defaults.
type SurfaceConfig struct {
	ExpiriesDays []int `mapstructure:"expiries_days"`
	StrikeCount  int   `mapstructure:"strike_count"`
}

// StoreConfig holds price-history store configuration.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Console  bool   `mapstructure:"console"`
	File     bool   `mapstructure:"file"`
	FilePath string `mapstructure:"file_path"`
}

// ConfigDir returns the engine's configuration directory.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "options-engine")
}

// Default returns the built-in configuration.
func Default() *Config {
	dir := ConfigDir()
	return &Config{
		Pricing: PricingConfig{
			RiskFreeRate:       0.05,
			DefaultVolatility:  0.30,
			TradingDaysPerYear: 252,
		},
		Chain: ChainConfig{
			StrikeSpan: 10,
		},
		Surface: SurfaceConfig{
			ExpiriesDays: []int{7, 14, 30, 60, 90},
			StrikeCount:  21,
		},
		Store: StoreConfig{
			Path: filepath.Join(dir, "history.db"),
		},
		Logging: LoggingConfig{
			Level:    "info",
			Console:  true,
			File:     false,
			FilePath: filepath.Join(dir, "logs", "engine.log"),
		},
	}
}

// Load reads configuration from the config file and environment, layered
// over the defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	v.SetEnvPrefix("OPTIONS_ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("pricing.risk_free_rate", d.Pricing.RiskFreeRate)
	v.SetDefault("pricing.default_volatility", d.Pricing.DefaultVolatility)
	v.SetDefault("pricing.trading_days_per_year", d.Pricing.TradingDaysPerYear)
	v.SetDefault("chain.strike_span", d.Chain.StrikeSpan)
	v.SetDefault("surface.expiries_days", d.Surface.ExpiriesDays)
	v.SetDefault("surface.strike_count", d.Surface.StrikeCount)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.console", d.Logging.Console)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.file_path", d.Logging.FilePath)
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	if c.Pricing.DefaultVolatility <= 0 {
		return fmt.Errorf("pricing.default_volatility must be positive, got %v", c.Pricing.DefaultVolatility)
	}
	if c.Pricing.TradingDaysPerYear <= 0 {
		return fmt.Errorf("pricing.trading_days_per_year must be positive, got %v", c.Pricing.TradingDaysPerYear)
	}
	if c.Chain.StrikeSpan < 1 {
		return fmt.Errorf("chain.strike_span must be at least 1, got %v", c.Chain.StrikeSpan)
	}
	if c.Surface.StrikeCount < 1 {
		return fmt.Errorf("surface.strike_count must be at least 1, got %v", c.Surface.StrikeCount)
	}
	if len(c.Surface.ExpiriesDays) == 0 {
		return fmt.Errorf("surface.expiries_days must not be empty")
	}
	return nil
}
