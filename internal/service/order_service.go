package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fpv247/storefront-backend/internal/models"
	"github.com/fpv247/storefront-backend/internal/store"
)

// ProductNotFoundError reports a cart item whose product id did not
// resolve, malformed ids included.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// OrderService prices and persists orders. Totals are recomputed from
// the stored product prices so a tampered client price has no effect.
type OrderService struct {
	store DocumentStore
}

// NewOrderService creates a new order service.
func NewOrderService(store DocumentStore) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder resolves every cart item against the catalog, computes
// the total from authoritative prices, and persists the order. It is
// all-or-nothing: any unresolved product id aborts before anything is
// written. Returns the store-assigned order id.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var total float64
	for _, item := range req.Items {
		doc, err := s.store.FindByID(ctx, models.CollectionProduct, item.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", &ProductNotFoundError{ProductID: item.ProductID}
			}
			return "", err
		}

		var product models.Product
		if err := bson.Unmarshal(doc, &product); err != nil {
			return "", fmt.Errorf("decode product %s: %w", item.ProductID, err)
		}

		// Quantities below 1 are clamped up to 1 so a zero or negative
		// qty never produces a zero-cost line item. The stored item
		// list keeps the submitted quantities verbatim.
		qty := item.Qty
		if qty < 1 {
			qty = 1
		}
		total += product.Price * float64(qty)
	}

	// math.Round rounds half away from zero; totals at the half-cent
	// boundary round up.
	total = math.Round(total*100) / 100

	order := models.NewOrder(req.Email, req.Items, total)
	if err := order.Validate(); err != nil {
		return "", err
	}

	orderID, err := s.store.Insert(ctx, models.CollectionOrder, order)
	if err != nil {
		return "", err
	}

	return orderID, nil
}
