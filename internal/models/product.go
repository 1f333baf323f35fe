package models

// CollectionProduct is the document collection holding the product catalog.
const CollectionProduct = "droneproduct"

// Product is a drone part or built quad sold in the storefront.
// Price is the authoritative billing source: order totals are always
// recomputed from it, never taken from the client.
type Product struct {
	Title       string            `bson:"title" json:"title"`
	Description *string           `bson:"description,omitempty" json:"description"`
	Price       float64           `bson:"price" json:"price"`
	Category    string            `bson:"category" json:"category"`
	Images      []string          `bson:"images" json:"images"`
	InStock     bool              `bson:"in_stock" json:"in_stock"`
	StockQty    int               `bson:"stock_qty" json:"stock_qty"`
	Rating      float64           `bson:"rating" json:"rating"`
	Featured    bool              `bson:"featured" json:"featured"`
	Tags        []string          `bson:"tags" json:"tags"`
	Specs       map[string]string `bson:"specs" json:"specs"`
}

// NewProduct constructs a product with the documented defaults applied:
// in_stock=true, stock_qty=10, rating=4.8, featured=false, empty
// images/tags/specs. Callers set the optional fields afterwards.
func NewProduct(title string, price float64, category string) Product {
	return Product{
		Title:    title,
		Price:    price,
		Category: category,
		Images:   []string{},
		InStock:  true,
		StockQty: 10,
		Rating:   4.8,
		Tags:     []string{},
		Specs:    map[string]string{},
	}
}

// Validate enforces the product constraints, collecting every violation.
func (p *Product) Validate() error {
	var violations []FieldError

	if p.Title == "" {
		violations = append(violations, FieldError{Field: "title", Reason: "is required"})
	}
	if p.Category == "" {
		violations = append(violations, FieldError{Field: "category", Reason: "is required"})
	}
	if p.Price < 0 {
		violations = append(violations, FieldError{Field: "price", Reason: "must not be negative"})
	}
	if p.StockQty < 0 {
		violations = append(violations, FieldError{Field: "stock_qty", Reason: "must not be negative"})
	}
	if p.Rating < 0 || p.Rating > 5 {
		violations = append(violations, FieldError{Field: "rating", Reason: "must be between 0 and 5"})
	}

	return validationError(violations)
}

// ProductOut is the outbound shape of a product: the stored fields plus
// the store-assigned identifier as a string. ID defaults to "" when the
// identifier is absent or unparseable; that is intentional lenience on
// the read path, not an error.
type ProductOut struct {
	ID string `json:"id"`
	Product
}
