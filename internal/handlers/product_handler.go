package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fpv247/storefront-backend/internal/models"
	"github.com/fpv247/storefront-backend/internal/service"
	"github.com/fpv247/storefront-backend/internal/store"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListProducts handles GET /products
// Optional query parameters: category, featured, limit (default 50).
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := service.ProductQuery{
		Category: r.URL.Query().Get("category"),
	}

	if v := r.URL.Query().Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("invalid featured flag", "featured", v)
			WriteError(w, http.StatusBadRequest, "Invalid featured flag", h.logger)
			return
		}
		query.Featured = &featured
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit < 0 {
			h.logger.Warn("invalid limit", "limit", v)
			WriteError(w, http.StatusBadRequest, "Invalid limit", h.logger)
			return
		}
		query.Limit = limit
	}

	products, err := h.catalog.ListProducts(ctx, query)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			WriteError(w, http.StatusBadRequest, validationErr.Error(), h.logger)
		case errors.Is(err, store.ErrUnavailable):
			h.logger.Error("store unavailable", "error", err)
			WriteError(w, http.StatusServiceUnavailable, "Database not configured", h.logger)
		default:
			h.logger.Error("failed to list products", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}
