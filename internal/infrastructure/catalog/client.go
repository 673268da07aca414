package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/cartscope/backend/internal/domain"
	"golang.org/x/time/rate"
)

// feedProduct mirrors one row of the grouped product feed.
type feedProduct struct {
	Product struct {
		ID       string      `json:"id"`
		Name     string      `json:"name"`
		Category string      `json:"category"`
		Prices   []feedPrice `json:"prices"`
	} `json:"product"`
}

// feedPrice is one price row from the feed. PlatformID is a pointer so
// rows with a null platform can be detected and dropped.
type feedPrice struct {
	PlatformID      *int    `json:"platformId"`
	BasePrice       float64 `json:"basePrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	DeliveryTime    string  `json:"deliveryTime,omitempty"`
}

// feedResponse is the grouped products endpoint payload.
type feedResponse struct {
	Products []feedProduct `json:"products"`
}

// platformEntry maps a numeric platform id to its display name.
type platformEntry struct {
	PlatformID int    `json:"platformId"`
	Name       string `json:"name"`
}

// Client handles communication with the remote product-and-price catalog service
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog API client
func NewClient(apiKey, baseURL string) *Client {
	// The catalog service allows 600 requests per hour
	// rate.Limit is requests per second, so 600/3600 ≈ 0.167 requests/sec
	limiter := rate.NewLimiter(rate.Limit(0.167), 10) // burst of 10 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// FetchProducts retrieves the grouped product feed and the platform
// table, and assembles the searchable catalog snapshot.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var feed feedResponse
	if err := c.getJSON(ctx, "/v1/products/grouped", &feed); err != nil {
		return nil, err
	}

	var platforms []platformEntry
	if err := c.getJSON(ctx, "/v1/platforms", &platforms); err != nil {
		return nil, err
	}

	products := MapToProducts(feed.Products, platforms)
	if c.debug {
		log.Printf("[CATALOG] fetched %d products (%d feed rows)", len(products), len(feed.Products))
	}
	return products, nil
}

// getJSON executes a rate-limited GET against the catalog service with
// retries on transient failures, decoding the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	endpoint := fmt.Sprintf("%s%s", c.baseURL, path)
	params := url.Values{}
	if c.apiKey != "" {
		params.Add("api_key", c.apiKey)
	}
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] API error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, string(body))
			}
			if resp.StatusCode == http.StatusTooManyRequests {
				lastErr = domain.ErrRateLimited
			} else {
				lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
			}
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	return lastErr
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "CartScope/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	return resp, nil
}
