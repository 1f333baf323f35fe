package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fpv247/storefront-backend/internal/models"
	"github.com/fpv247/storefront-backend/internal/service"
	"github.com/fpv247/storefront-backend/internal/store"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// OrderCreatedResponse is the success body of POST /orders.
type OrderCreatedResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	orderID, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		var validationErr *models.ValidationError
		var notFoundErr *service.ProductNotFoundError
		var writeErr *store.WriteError

		switch {
		case errors.As(err, &validationErr):
			h.log.Warn("invalid order request", "error", err)
			WriteError(w, http.StatusBadRequest, validationErr.Error(), h.log)
		case errors.As(err, &notFoundErr):
			h.log.Info("order references unknown product", "product_id", notFoundErr.ProductID)
			WriteError(w, http.StatusNotFound, "Product "+notFoundErr.ProductID+" not found", h.log)
		case errors.Is(err, store.ErrUnavailable):
			h.log.Error("store unavailable", "error", err)
			WriteError(w, http.StatusServiceUnavailable, "Database not configured", h.log)
		case errors.As(err, &writeErr):
			h.log.Error("failed to persist order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, OrderCreatedResponse{Status: "ok", OrderID: orderID}, h.log)
	h.log.Info("order created successfully", "order_id", orderID, "items_count", len(req.Items))
}
