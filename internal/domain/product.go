package domain

import "strings"

// Product represents a catalog item with its per-platform price quotes.
// Products are owned by the remote catalog service; the engine treats
// them as read-only snapshots.
type Product struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category string       `json:"category,omitempty"`
	Keywords string       `json:"keywords"` // lowercased name + category, used for search
	Quotes   []PriceQuote `json:"prices,omitempty"`
}

// PriceQuote is one platform's offer for a product.
// Price <= OldPrice is expected but not enforced; a quote where it does
// not hold shows up as a negative discount downstream, never as an error.
type PriceQuote struct {
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
	OldPrice float64 `json:"oldPrice"`
	Time     string  `json:"time,omitempty"` // delivery-time label, presentation only
}

// MatchCandidate pairs a product with its relevance score against a query.
type MatchCandidate struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
}

// ResolveResult is the outcome of matching free-text fragments (search
// terms, OCR lines) against the catalog.
type ResolveResult struct {
	Matched   []Product `json:"matched"`
	Unmatched []string  `json:"unmatched"`
}

// PlatformKey normalizes a platform display name into its canonical key:
// lowercase with all whitespace removed ("Swiggy Instamart" -> "swiggyinstamart").
func PlatformKey(platform string) string {
	return strings.ToLower(strings.Join(strings.Fields(platform), ""))
}
