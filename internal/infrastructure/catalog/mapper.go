package catalog

import (
	"fmt"
	"strings"

	"github.com/cartscope/backend/internal/domain"
)

// MapToProducts converts the raw catalog feed into domain products.
// Price rows without a platform are dropped, and so are products left
// with no quotes at all; what remains is the searchable snapshot the
// engine consumes.
func MapToProducts(feed []feedProduct, platforms []platformEntry) []domain.Product {
	platformNames := make(map[int]string, len(platforms))
	for _, p := range platforms {
		platformNames[p.PlatformID] = p.Name
	}

	var products []domain.Product
	for _, row := range feed {
		quotes := mapQuotes(row.Product.Prices, platformNames)
		if len(quotes) == 0 {
			continue
		}

		products = append(products, domain.Product{
			ID:       row.Product.ID,
			Name:     row.Product.Name,
			Category: row.Product.Category,
			Keywords: buildKeywords(row.Product.Name, row.Product.Category),
			Quotes:   quotes,
		})
	}

	return products
}

// mapQuotes converts raw price rows into quotes, resolving platform ids
// to display names.
func mapQuotes(prices []feedPrice, platformNames map[int]string) []domain.PriceQuote {
	var quotes []domain.PriceQuote
	for _, price := range prices {
		if price.PlatformID == nil {
			continue
		}

		name, ok := platformNames[*price.PlatformID]
		if !ok {
			name = fmt.Sprintf("Platform %d", *price.PlatformID)
		}

		quotes = append(quotes, domain.PriceQuote{
			Platform: name,
			Price:    price.DiscountedPrice,
			OldPrice: price.BasePrice,
			Time:     price.DeliveryTime,
		})
	}
	return quotes
}

// buildKeywords assembles the lowercased searchable keyword string from
// the product name and category.
func buildKeywords(name, category string) string {
	if category == "" {
		return strings.ToLower(name)
	}
	return strings.ToLower(name + " " + category)
}
