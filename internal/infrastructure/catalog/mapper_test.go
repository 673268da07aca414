package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func feedRow(id, name, category string, prices ...feedPrice) feedProduct {
	var row feedProduct
	row.Product.ID = id
	row.Product.Name = name
	row.Product.Category = category
	row.Product.Prices = prices
	return row
}

func TestMapToProducts(t *testing.T) {
	platforms := []platformEntry{
		{PlatformID: 1, Name: "Blinkit"},
		{PlatformID: 2, Name: "Zepto"},
	}

	t.Run("maps feed rows to products with keywords", func(t *testing.T) {
		feed := []feedProduct{
			feedRow("p1", "Amul Milk", "Dairy",
				feedPrice{PlatformID: intPtr(1), BasePrice: 50, DiscountedPrice: 40, DeliveryTime: "12 Mins"},
				feedPrice{PlatformID: intPtr(2), BasePrice: 55, DiscountedPrice: 42},
			),
		}

		products := MapToProducts(feed, platforms)
		require.Len(t, products, 1)

		p := products[0]
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "Amul Milk", p.Name)
		assert.Equal(t, "amul milk dairy", p.Keywords)
		require.Len(t, p.Quotes, 2)
		assert.Equal(t, "Blinkit", p.Quotes[0].Platform)
		assert.Equal(t, 40.0, p.Quotes[0].Price)
		assert.Equal(t, 50.0, p.Quotes[0].OldPrice)
		assert.Equal(t, "12 Mins", p.Quotes[0].Time)
		assert.Equal(t, "Zepto", p.Quotes[1].Platform)
	})

	t.Run("drops price rows with null platform", func(t *testing.T) {
		feed := []feedProduct{
			feedRow("p1", "Milk", "Dairy",
				feedPrice{PlatformID: nil, BasePrice: 50, DiscountedPrice: 40},
				feedPrice{PlatformID: intPtr(2), BasePrice: 55, DiscountedPrice: 42},
			),
		}

		products := MapToProducts(feed, platforms)
		require.Len(t, products, 1)
		assert.Len(t, products[0].Quotes, 1)
	})

	t.Run("drops products with no quotes", func(t *testing.T) {
		feed := []feedProduct{
			feedRow("p1", "Milk", "Dairy",
				feedPrice{PlatformID: nil, BasePrice: 50, DiscountedPrice: 40},
			),
			feedRow("p2", "Bread", "Bakery",
				feedPrice{PlatformID: intPtr(1), BasePrice: 35, DiscountedPrice: 30},
			),
		}

		products := MapToProducts(feed, platforms)
		require.Len(t, products, 1)
		assert.Equal(t, "p2", products[0].ID)
	})

	t.Run("unknown platform ids fall back to a placeholder name", func(t *testing.T) {
		feed := []feedProduct{
			feedRow("p1", "Milk", "Dairy",
				feedPrice{PlatformID: intPtr(99), BasePrice: 50, DiscountedPrice: 40},
			),
		}

		products := MapToProducts(feed, platforms)
		require.Len(t, products, 1)
		assert.Equal(t, "Platform 99", products[0].Quotes[0].Platform)
	})

	t.Run("empty category keeps keywords to the name", func(t *testing.T) {
		feed := []feedProduct{
			feedRow("p1", "Mixed Hamper", "",
				feedPrice{PlatformID: intPtr(1), BasePrice: 500, DiscountedPrice: 450},
			),
		}

		products := MapToProducts(feed, platforms)
		require.Len(t, products, 1)
		assert.Equal(t, "mixed hamper", products[0].Keywords)
	})

	t.Run("empty feed maps to no products", func(t *testing.T) {
		assert.Empty(t, MapToProducts(nil, platforms))
	})
}
