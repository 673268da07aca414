package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("CARTSCOPE_SERVER_PORT")
		os.Unsetenv("CARTSCOPE_SERVER_ENVIRONMENT")
		os.Unsetenv("CARTSCOPE_CATALOG_API_KEY")
		os.Unsetenv("CARTSCOPE_CATALOG_BASE_URL")
		os.Unsetenv("CARTSCOPE_CACHE_TTL")
		os.Unsetenv("CARTSCOPE_MATCHING_SCORE_THRESHOLD")
		os.Unsetenv("CARTSCOPE_MATCHING_MAX_RESULTS")
		os.Unsetenv("CARTSCOPE_PRICING_DELIVERY_FEE")
		os.Unsetenv("CARTSCOPE_PRICING_DELIVERY_THRESHOLD")
		os.Unsetenv("CARTSCOPE_PRICING_SAVINGS_THRESHOLD")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Catalog.BaseURL != "https://catalog.cartscope.dev" {
			t.Errorf("Catalog.BaseURL = %s, want https://catalog.cartscope.dev", cfg.Catalog.BaseURL)
		}
		if cfg.Cache.TTL != 10*time.Minute {
			t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
		}
		if cfg.Pricing.DeliveryFee != 30 {
			t.Errorf("Pricing.DeliveryFee = %v, want 30", cfg.Pricing.DeliveryFee)
		}
		if cfg.Pricing.DeliveryThreshold != 200 {
			t.Errorf("Pricing.DeliveryThreshold = %v, want 200", cfg.Pricing.DeliveryThreshold)
		}
		if cfg.Pricing.SavingsThreshold != 800 {
			t.Errorf("Pricing.SavingsThreshold = %v, want 800", cfg.Pricing.SavingsThreshold)
		}
		if cfg.Matching.ScoreThreshold != 0.5 {
			t.Errorf("Matching.ScoreThreshold = %v, want 0.5", cfg.Matching.ScoreThreshold)
		}
		if cfg.Matching.MaxResults != 10 {
			t.Errorf("Matching.MaxResults = %d, want 10", cfg.Matching.MaxResults)
		}
		if cfg.Matching.MaxSuggestionDistance != 0.4 {
			t.Errorf("Matching.MaxSuggestionDistance = %v, want 0.4", cfg.Matching.MaxSuggestionDistance)
		}
	})

	t.Run("default savings rates cover the known platforms", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		want := map[string]float64{
			"blinkit":         0.12,
			"zepto":           0.07,
			"swiggyinstamart": 0.10,
			"jiomart":         0.05,
			"bigbasket":       0.15,
		}
		for key, rate := range want {
			if got := cfg.Pricing.SavingsRates[key]; got != rate {
				t.Errorf("SavingsRates[%s] = %v, want %v", key, got, rate)
			}
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTSCOPE_SERVER_PORT", "9090")
		os.Setenv("CARTSCOPE_SERVER_ENVIRONMENT", "production")
		os.Setenv("CARTSCOPE_CATALOG_API_KEY", "custom-api-key")
		os.Setenv("CARTSCOPE_CATALOG_BASE_URL", "https://custom.catalog.com")
		os.Setenv("CARTSCOPE_CACHE_TTL", "24h")
		os.Setenv("CARTSCOPE_MATCHING_MAX_RESULTS", "5")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Catalog.APIKey != "custom-api-key" {
			t.Errorf("Catalog.APIKey = %s, want custom-api-key", cfg.Catalog.APIKey)
		}
		if cfg.Catalog.BaseURL != "https://custom.catalog.com" {
			t.Errorf("Catalog.BaseURL = %s, want https://custom.catalog.com", cfg.Catalog.BaseURL)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Matching.MaxResults != 5 {
			t.Errorf("Matching.MaxResults = %d, want 5", cfg.Matching.MaxResults)
		}
	})

	t.Run("rejects negative delivery fee", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTSCOPE_PRICING_DELIVERY_FEE", "-5")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation failure")
		}
	})

	t.Run("rejects negative thresholds", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CARTSCOPE_PRICING_SAVINGS_THRESHOLD", "-1")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation failure")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Catalog: CatalogConfig{BaseURL: "https://catalog.example.com"},
			Pricing: PricingConfig{
				DeliveryFee:       30,
				DeliveryThreshold: 200,
				SavingsThreshold:  800,
				SavingsRates:      map[string]float64{"blinkit": 0.12},
			},
			Matching: MatchingConfig{ScoreThreshold: 0.5},
		}
	}

	t.Run("accepts a valid config", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("requires catalog base URL", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.BaseURL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want failure for empty base URL")
		}
	})

	t.Run("rejects savings rate of one or more", func(t *testing.T) {
		cfg := valid()
		cfg.Pricing.SavingsRates["blinkit"] = 1.0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want failure for rate >= 1")
		}
	})

	t.Run("rejects negative savings rate", func(t *testing.T) {
		cfg := valid()
		cfg.Pricing.SavingsRates["blinkit"] = -0.1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want failure for negative rate")
		}
	})

	t.Run("rejects negative score threshold", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.ScoreThreshold = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want failure for negative threshold")
		}
	})
}
