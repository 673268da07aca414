package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cartscope/backend/config"
	httpDelivery "github.com/cartscope/backend/internal/delivery/http"
	"github.com/cartscope/backend/internal/infrastructure/cache"
	"github.com/cartscope/backend/internal/infrastructure/catalog"
	"github.com/cartscope/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting CartScope Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s", cfg.Catalog.BaseURL)

	// Initialize infrastructure dependencies
	snapshotCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	catalogClient := catalog.NewClient(cfg.Catalog.APIKey, cfg.Catalog.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(snapshotCache, catalogClient, usecase.CatalogServiceConfig{
		CacheTTL:           cfg.Cache.TTL,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	matcherService := usecase.NewMatcherService(usecase.MatcherConfig{
		ScoreThreshold:        cfg.Matching.ScoreThreshold,
		MaxResults:            cfg.Matching.MaxResults,
		MaxSuggestionDistance: cfg.Matching.MaxSuggestionDistance,
		EnableDebugLogging:    cfg.Matching.EnableDebugLogging,
	})

	optimizerService := usecase.NewOptimizerService(usecase.OptimizerConfig{
		Pricing: usecase.PricingRules{
			DeliveryFee:       cfg.Pricing.DeliveryFee,
			DeliveryThreshold: cfg.Pricing.DeliveryThreshold,
			SavingsThreshold:  cfg.Pricing.SavingsThreshold,
			SavingsRates:      cfg.Pricing.SavingsRates,
		},
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	log.Printf("Matching: threshold=%.2f, max results=%d", cfg.Matching.ScoreThreshold, cfg.Matching.MaxResults)
	log.Printf("Pricing: delivery fee=%.0f below %.0f, savings above %.0f (%d platforms)",
		cfg.Pricing.DeliveryFee,
		cfg.Pricing.DeliveryThreshold,
		cfg.Pricing.SavingsThreshold,
		len(cfg.Pricing.SavingsRates))

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(optimizerService, matcherService, catalogService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
