package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartscope/backend/internal/domain"
	"github.com/cartscope/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	optimizer *usecase.OptimizerService
	matcher   *usecase.MatcherService
	catalog   *usecase.CatalogService
}

// NewHandler creates a new HTTP handler
func NewHandler(optimizer *usecase.OptimizerService, matcher *usecase.MatcherService, catalog *usecase.CatalogService) *Handler {
	return &Handler{
		optimizer: optimizer,
		matcher:   matcher,
		catalog:   catalog,
	}
}

// optimizeRequest is the cart payload for the optimize endpoint.
type optimizeRequest struct {
	Items []domain.CartLine `json:"items" binding:"required"`
}

// searchRequest is the query payload for product search.
type searchRequest struct {
	Query string `json:"query" binding:"required"`
}

// resolveRequest carries free-text fragments (OCR lines, pasted lists).
type resolveRequest struct {
	Fragments []string `json:"fragments" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cartscope-backend",
		"version": "1.0.0",
	})
}

// OptimizeCart evaluates single-platform and hybrid allocations for the
// posted cart.
func (h *Handler) OptimizeCart(c *gin.Context) {
	if h.optimizer == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "cart optimization not configured"})
		return
	}

	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result := h.optimizer.OptimizeCart(c.Request.Context(), req.Items)
	c.JSON(http.StatusOK, result)
}

// SearchProducts ranks the catalog against a free-text query and
// returns the candidates plus an optional spelling suggestion.
func (h *Handler) SearchProducts(c *gin.Context) {
	if h.matcher == nil || h.catalog == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "product search not configured"})
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		h.catalogError(c, err)
		return
	}

	candidates := h.matcher.Search(c.Request.Context(), snapshot, req.Query)
	suggestion := ""
	if len(candidates) == 0 {
		suggestion = h.matcher.SuggestCorrection(req.Query, usecase.ProductNames(snapshot))
	}

	resp := gin.H{"results": candidates}
	if suggestion != "" {
		resp["suggestion"] = suggestion
	}
	c.JSON(http.StatusOK, resp)
}

// ResolveItems matches recognized text fragments to catalog products
// for the auto-add-to-cart flow.
func (h *Handler) ResolveItems(c *gin.Context) {
	if h.matcher == nil || h.catalog == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "item resolution not configured"})
		return
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	snapshot, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		h.catalogError(c, err)
		return
	}

	result := h.matcher.ResolveFreeTextItems(c.Request.Context(), req.Fragments, snapshot)
	c.JSON(http.StatusOK, result)
}

// catalogError maps catalog fetch failures to HTTP responses.
func (h *Handler) catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "catalog rate limit exceeded"})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
