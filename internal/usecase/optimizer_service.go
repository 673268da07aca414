package usecase

import (
	"context"
	"log"
	"math"
	"sort"

	"github.com/cartscope/backend/internal/domain"
)

// OptimizerConfig holds configuration for the cart optimization facade
type OptimizerConfig struct {
	Pricing            PricingRules
	EnableDebugLogging bool
}

// OptimizerService orchestrates the cart builder and the hybrid
// optimizer into a single decision: every single-platform allocation,
// best first, plus the two-platform split when it actually saves money.
type OptimizerService struct {
	builder            *CartBuilder
	hybrid             *HybridOptimizer
	enableDebugLogging bool
}

// NewOptimizerService creates a new optimizer service with dependencies
func NewOptimizerService(config OptimizerConfig) *OptimizerService {
	rules := config.Pricing
	if rules.SavingsRates == nil {
		rules = DefaultPricingRules()
	}

	return &OptimizerService{
		builder:            NewCartBuilder(rules),
		hybrid:             NewHybridOptimizer(rules),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// OptimizeCart evaluates the cart on every available platform and
// against every two-platform split. Single-platform results are sorted
// complete allocations first, then by ascending estimated total. The
// hybrid result is surfaced only when its combined total is strictly
// below the best complete single-platform total; with no complete
// allocation at all, any feasible hybrid is surfaced.
func (s *OptimizerService) OptimizeCart(ctx context.Context, lines []domain.CartLine) *domain.CartOptimization {
	select {
	case <-ctx.Done():
		return &domain.CartOptimization{Platforms: []domain.PlatformCartResult{}}
	default:
	}

	platforms := s.builder.BuildPlatformCarts(lines)

	sort.SliceStable(platforms, func(i, j int) bool {
		if platforms[i].IsComplete != platforms[j].IsComplete {
			return platforms[i].IsComplete
		}
		return platforms[i].EstimatedTotal < platforms[j].EstimatedTotal
	})

	// Baseline for the hybrid comparison is the best complete
	// single-platform total; with no complete allocation at all, any
	// feasible hybrid beats the infinite fallback and is surfaced.
	bestSingle := math.Inf(1)
	if len(platforms) > 0 && platforms[0].IsComplete {
		bestSingle = platforms[0].EstimatedTotal
	}

	var hybrid *domain.HybridCartResult
	if combo := s.hybrid.BuildBestHybridCart(lines); combo != nil && combo.CombinedEstimatedTotal < bestSingle {
		hybrid = combo
	}

	if s.enableDebugLogging {
		log.Printf("[OPTIMIZE] %d lines, %d platforms, hybrid=%v", len(lines), len(platforms), hybrid != nil)
	}

	return &domain.CartOptimization{
		Platforms: platforms,
		Hybrid:    hybrid,
	}
}
