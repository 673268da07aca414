package usecase

import "github.com/cartscope/backend/internal/domain"

// HybridOptimizer searches for the cheapest split of a cart across two
// platforms. Each line goes to whichever platform of the pair quotes
// the lower current price; each half is then priced under the same fee
// schedule a single-platform cart would be.
type HybridOptimizer struct {
	rules PricingRules
}

// NewHybridOptimizer creates a hybrid optimizer with the given pricing rules.
func NewHybridOptimizer(rules PricingRules) *HybridOptimizer {
	return &HybridOptimizer{rules: rules}
}

// BuildBestHybridCart evaluates every unordered pair of platforms
// appearing in the cart and returns the feasible pair with the lowest
// combined estimated total. A pair is feasible only when every priceable
// line has a quote on at least one of the two platforms; infeasible
// pairs are skipped outright. Returns nil when fewer than two platforms
// exist or no pair jointly covers the cart.
func (o *HybridOptimizer) BuildBestHybridCart(lines []domain.CartLine) *domain.HybridCartResult {
	var priceable []domain.CartLine
	for _, line := range lines {
		if validLine(line) {
			priceable = append(priceable, line)
		}
	}
	if len(priceable) == 0 {
		return nil
	}

	// Distinct platform keys in first-observed order, so pair iteration
	// (and therefore tie-breaking between equal-cost pairs) is stable.
	var platformKeys []string
	displayNames := make(map[string]string)
	seen := make(map[string]bool)
	for _, line := range priceable {
		for _, quote := range line.Quotes {
			key := domain.PlatformKey(quote.Platform)
			if !seen[key] {
				seen[key] = true
				platformKeys = append(platformKeys, key)
				displayNames[key] = quote.Platform
			}
		}
	}
	if len(platformKeys) < 2 {
		return nil
	}

	builder := NewCartBuilder(o.rules)

	var best *domain.HybridCartResult
	for i := 0; i < len(platformKeys); i++ {
		for j := i + 1; j < len(platformKeys); j++ {
			p1, p2 := platformKeys[i], platformKeys[j]

			combo := o.priceCombo(builder, priceable, p1, p2, displayNames)
			if combo == nil {
				continue
			}
			if best == nil || combo.CombinedEstimatedTotal < best.CombinedEstimatedTotal {
				best = combo
			}
		}
	}

	return best
}

// priceCombo assigns every line to the cheaper of the two platforms and
// prices both halves independently. Returns nil when some line has no
// quote on either platform.
func (o *HybridOptimizer) priceCombo(builder *CartBuilder, lines []domain.CartLine, p1, p2 string, displayNames map[string]string) *domain.HybridCartResult {
	halves := map[string]*domain.PlatformCartResult{
		p1: {Platform: displayNames[p1], Key: p1, Missing: []string{}, IsComplete: true},
		p2: {Platform: displayNames[p2], Key: p2, Missing: []string{}, IsComplete: true},
	}

	for _, line := range lines {
		var best *domain.PriceQuote
		for k := range line.Quotes {
			quote := &line.Quotes[k]
			key := domain.PlatformKey(quote.Platform)
			if key != p1 && key != p2 {
				continue
			}
			// Strictly-lower comparison keeps ties on the quote listed first
			if best == nil || quote.Price < best.Price {
				best = quote
			}
		}
		if best == nil {
			return nil // line not coverable by this pair
		}

		qty := lineQuantity(line)
		half := halves[domain.PlatformKey(best.Platform)]
		half.Items = append(half.Items, domain.CartLineItem{
			Name:     line.Name,
			Price:    best.Price,
			OldPrice: best.OldPrice,
			Quantity: qty,
		})
		half.Included = append(half.Included, line.Name)
		half.ItemCount += qty
		half.ItemTotal += best.OldPrice * float64(qty)
		half.Discount += (best.OldPrice - best.Price) * float64(qty)
	}

	// Fee threshold and savings tier are evaluated per half, not on the
	// combined cart.
	combined := 0.0
	for _, key := range []string{p1, p2} {
		builder.finalize(halves[key])
		combined += halves[key].EstimatedTotal
	}

	return &domain.HybridCartResult{
		Platforms:              [2]string{p1, p2},
		Breakdown:              []domain.PlatformCartResult{*halves[p1], *halves[p2]},
		CombinedEstimatedTotal: combined,
	}
}
