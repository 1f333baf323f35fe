package models

// CollectionOrder is the document collection holding placed orders.
const CollectionOrder = "order"

// StatusPending is the status assigned to every new order. No further
// transitions happen in this service.
const StatusPending = "pending"

// CartItem is a (product id, quantity) pair submitted when placing an order.
type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Qty       int    `bson:"qty" json:"qty"`
}

// CreateOrderRequest is the inbound body of POST /orders.
type CreateOrderRequest struct {
	Email string     `json:"email"`
	Items []CartItem `json:"items"`
}

// Validate enforces the request constraints. An empty item list is
// allowed and prices to 0.00; a missing items field is not.
func (r *CreateOrderRequest) Validate() error {
	var violations []FieldError

	if r.Email == "" {
		violations = append(violations, FieldError{Field: "email", Reason: "is required"})
	}
	if r.Items == nil {
		violations = append(violations, FieldError{Field: "items", Reason: "is required"})
	}

	return validationError(violations)
}

// Order is a placed order. Total is computed server-side from the
// authoritative product prices and is never client-supplied. Orders are
// immutable after creation.
type Order struct {
	Email  string     `bson:"email" json:"email"`
	Items  []CartItem `bson:"items" json:"items"`
	Total  float64    `bson:"total" json:"total"`
	Status string     `bson:"status" json:"status"`
}

// NewOrder constructs an order with the pending status default applied.
// The item list is stored verbatim, submitted quantities included.
func NewOrder(email string, items []CartItem, total float64) Order {
	return Order{
		Email:  email,
		Items:  items,
		Total:  total,
		Status: StatusPending,
	}
}

// Validate enforces the order constraints.
func (o *Order) Validate() error {
	var violations []FieldError

	if o.Email == "" {
		violations = append(violations, FieldError{Field: "email", Reason: "is required"})
	}
	if o.Total < 0 {
		violations = append(violations, FieldError{Field: "total", Reason: "must not be negative"})
	}
	if o.Status == "" {
		violations = append(violations, FieldError{Field: "status", Reason: "is required"})
	}

	return validationError(violations)
}
