package domain

// CartLine is one product and its requested quantity within a cart,
// along with a quote from every platform that stocks it.
type CartLine struct {
	Name     string       `json:"name"`
	Quantity int          `json:"quantity"`
	Quotes   []PriceQuote `json:"prices"`
}

// CartLineItem is a cart line resolved against one specific platform's quote.
type CartLineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	OldPrice float64 `json:"oldPrice"`
	Quantity int     `json:"quantity"`
}

// PlatformCartResult is the itemized cost summary of serving a cart
// (or a slice of it) from a single platform.
type PlatformCartResult struct {
	Platform          string         `json:"platform"` // display name as first observed
	Key               string         `json:"key"`      // normalized platform key
	Items             []CartLineItem `json:"items"`
	Included          []string       `json:"included"`
	Missing           []string       `json:"missing"`
	ItemCount         int            `json:"itemCount"`
	ItemTotal         float64        `json:"itemTotal"`
	Discount          float64        `json:"discount"`
	DeliveryFee       float64        `json:"deliveryFee"`
	AdditionalSavings float64        `json:"additionalSavings"`
	EstimatedTotal    float64        `json:"estimatedTotal"`
	IsComplete        bool           `json:"isComplete"`
}

// HybridCartResult is the cheapest two-platform split of a cart.
// Breakdown holds exactly two entries, ordered to match Platforms.
type HybridCartResult struct {
	Platforms              [2]string            `json:"platforms"`
	Breakdown              []PlatformCartResult `json:"platformBreakdown"`
	CombinedEstimatedTotal float64              `json:"combinedEstimatedTotal"`
}

// CartOptimization is the full decision output for a cart: every
// single-platform allocation, best first, plus the hybrid split when it
// beats the best single platform.
type CartOptimization struct {
	Platforms []PlatformCartResult `json:"platforms"`
	Hybrid    *HybridCartResult    `json:"hybrid,omitempty"`
}
