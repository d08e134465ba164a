package config

import "testing"

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultPricingConventions(t *testing.T) {
	cfg := Default()

	if cfg.Pricing.DefaultVolatility != 0.30 {
		t.Errorf("default_volatility = %v, want the documented 0.30 fallback", cfg.Pricing.DefaultVolatility)
	}
	if cfg.Pricing.TradingDaysPerYear != 252 {
		t.Errorf("trading_days_per_year = %v, want 252", cfg.Pricing.TradingDaysPerYear)
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero default vol", func(c *Config) { c.Pricing.DefaultVolatility = 0 }},
		{"zero trading days", func(c *Config) { c.Pricing.TradingDaysPerYear = 0 }},
		{"zero strike span", func(c *Config) { c.Chain.StrikeSpan = 0 }},
		{"zero strike count", func(c *Config) { c.Surface.StrikeCount = 0 }},
		{"no expiries", func(c *Config) { c.Surface.ExpiriesDays = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
