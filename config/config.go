package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Cache    CacheConfig
	Pricing  PricingConfig
	Matching MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds remote catalog service configuration
type CatalogConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// PricingConfig holds the per-platform fee schedule. Adding a platform
// rebate is a data change here, not a code change.
type PricingConfig struct {
	DeliveryFee       float64            `mapstructure:"delivery_fee"`
	DeliveryThreshold float64            `mapstructure:"delivery_threshold"`
	SavingsThreshold  float64            `mapstructure:"savings_threshold"`
	SavingsRates      map[string]float64 `mapstructure:"savings_rates"`
}

// MatchingConfig holds fuzzy matcher configuration
type MatchingConfig struct {
	ScoreThreshold        float64 `mapstructure:"score_threshold"`
	MaxResults            int     `mapstructure:"max_results"`
	MaxSuggestionDistance float64 `mapstructure:"max_suggestion_distance"`
	EnableDebugLogging    bool    `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cartscope/")

	// Environment variable settings
	v.SetEnvPrefix("CARTSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://catalog.cartscope.dev")

	// Cache defaults
	v.SetDefault("cache.ttl", "10m")

	// Pricing defaults
	v.SetDefault("pricing.delivery_fee", 30.0)
	v.SetDefault("pricing.delivery_threshold", 200.0)
	v.SetDefault("pricing.savings_threshold", 800.0)
	v.SetDefault("pricing.savings_rates", map[string]float64{
		"blinkit":         0.12,
		"zepto":           0.07,
		"swiggyinstamart": 0.10,
		"jiomart":         0.05,
		"bigbasket":       0.15,
	})

	// Matching defaults
	v.SetDefault("matching.score_threshold", 0.5)
	v.SetDefault("matching.max_results", 10)
	v.SetDefault("matching.max_suggestion_distance", 0.4)
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set CARTSCOPE_CATALOG_BASE_URL)")
	}

	if config.Pricing.DeliveryFee < 0 {
		return fmt.Errorf("pricing delivery fee must be >= 0, got: %v", config.Pricing.DeliveryFee)
	}

	if config.Pricing.DeliveryThreshold < 0 || config.Pricing.SavingsThreshold < 0 {
		return fmt.Errorf("pricing thresholds must be >= 0")
	}

	for key, rate := range config.Pricing.SavingsRates {
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("savings rate for %q must be in [0, 1), got: %v", key, rate)
		}
	}

	if config.Matching.ScoreThreshold < 0 {
		return fmt.Errorf("matching score threshold must be >= 0, got: %v", config.Matching.ScoreThreshold)
	}

	return nil
}
