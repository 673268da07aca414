package usecase

import (
	"math"

	"github.com/cartscope/backend/internal/domain"
)

// PricingRules holds the per-platform cost schedule: the flat delivery
// fee and the spend threshold that waives it, plus the loyalty-savings
// tier (a percentage rebate applied above a higher spend threshold).
// Platforms absent from SavingsRates get no rebate.
type PricingRules struct {
	DeliveryFee       float64
	DeliveryThreshold float64
	SavingsThreshold  float64
	SavingsRates      map[string]float64 // keyed by normalized platform key
}

// DefaultPricingRules returns the production fee schedule.
func DefaultPricingRules() PricingRules {
	return PricingRules{
		DeliveryFee:       30,
		DeliveryThreshold: 200,
		SavingsThreshold:  800,
		SavingsRates: map[string]float64{
			"blinkit":         0.12,
			"zepto":           0.07,
			"swiggyinstamart": 0.10,
			"jiomart":         0.05,
			"bigbasket":       0.15,
		},
	}
}

// CartBuilder computes per-platform itemized cost summaries for a cart.
type CartBuilder struct {
	rules PricingRules
}

// NewCartBuilder creates a cart builder with the given pricing rules.
// Zero-valued rules fall back to the default schedule.
func NewCartBuilder(rules PricingRules) *CartBuilder {
	if rules.SavingsRates == nil && rules.DeliveryFee == 0 && rules.DeliveryThreshold == 0 && rules.SavingsThreshold == 0 {
		rules = DefaultPricingRules()
	}
	return &CartBuilder{rules: rules}
}

// BuildPlatformCarts prices the cart independently on every platform
// that quotes at least one line. Each result carries the platform's
// items, totals, fees, and the names of lines it cannot serve. Lines
// with no quotes or a negative quantity are never priced; they surface
// through every platform's missing list instead. Results come back in
// first-observed platform order; sorting is the facade's job.
func (b *CartBuilder) BuildPlatformCarts(lines []domain.CartLine) []domain.PlatformCartResult {
	carts := make(map[string]*domain.PlatformCartResult)
	var keyOrder []string

	for _, line := range lines {
		if !validLine(line) {
			continue
		}
		qty := lineQuantity(line)

		for _, quote := range line.Quotes {
			key := domain.PlatformKey(quote.Platform)
			cart, ok := carts[key]
			if !ok {
				cart = &domain.PlatformCartResult{Platform: quote.Platform, Key: key}
				carts[key] = cart
				keyOrder = append(keyOrder, key)
			}

			cart.Items = append(cart.Items, domain.CartLineItem{
				Name:     line.Name,
				Price:    quote.Price,
				OldPrice: quote.OldPrice,
				Quantity: qty,
			})
			cart.ItemTotal += quote.OldPrice * float64(qty)
			cart.Discount += (quote.OldPrice - quote.Price) * float64(qty)
		}
	}

	results := make([]domain.PlatformCartResult, 0, len(keyOrder))
	for _, key := range keyOrder {
		cart := carts[key]

		included := make(map[string]bool, len(cart.Items))
		for _, item := range cart.Items {
			cart.Included = append(cart.Included, item.Name)
			cart.ItemCount += item.Quantity
			included[item.Name] = true
		}

		cart.Missing = []string{}
		for _, line := range lines {
			if !included[line.Name] {
				cart.Missing = append(cart.Missing, line.Name)
			}
		}
		cart.IsComplete = len(cart.Missing) == 0

		b.finalize(cart)
		results = append(results, *cart)
	}

	return results
}

// finalize applies the fee schedule to an accumulated cart: delivery
// fee below the threshold, loyalty savings above the savings tier, and
// the estimated total composed from the parts.
func (b *CartBuilder) finalize(cart *domain.PlatformCartResult) {
	postDiscount := cart.ItemTotal - cart.Discount

	cart.DeliveryFee = 0
	if postDiscount < b.rules.DeliveryThreshold {
		cart.DeliveryFee = b.rules.DeliveryFee
	}

	cart.AdditionalSavings = 0
	if postDiscount >= b.rules.SavingsThreshold {
		// Truncate toward zero to the nearest currency unit
		cart.AdditionalSavings = math.Trunc(b.rules.SavingsRates[cart.Key] * postDiscount)
	}

	cart.EstimatedTotal = postDiscount - cart.AdditionalSavings + cart.DeliveryFee
}

// validLine reports whether a cart line can be priced at all. A line
// with no quotes or a negative quantity is invalid input per the error
// model: it is excluded from totals and reported via missing.
func validLine(line domain.CartLine) bool {
	return len(line.Quotes) > 0 && line.Quantity >= 0
}

// lineQuantity treats an unset quantity as one unit.
func lineQuantity(line domain.CartLine) int {
	if line.Quantity == 0 {
		return 1
	}
	return line.Quantity
}
