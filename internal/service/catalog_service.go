package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fpv247/storefront-backend/internal/models"
	"github.com/fpv247/storefront-backend/internal/store"
)

// DefaultProductLimit caps listing results when no limit is supplied.
const DefaultProductLimit = 50

// DocumentStore is the data-access capability the services depend on.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Upsert(ctx context.Context, collection string, filter map[string]any, doc any) error
	Query(ctx context.Context, collection string, filter map[string]any, limit int64) ([]bson.Raw, error)
	FindByID(ctx context.Context, collection string, id string) (bson.Raw, error)
}

// ProductQuery carries the optional listing filters. Both filters are
// ANDed when present. A zero Limit means the default of 50.
type ProductQuery struct {
	Category string
	Featured *bool
	Limit    int64
}

// CatalogService answers product-listing queries. Read-only.
type CatalogService struct {
	store DocumentStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store DocumentStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts returns catalog products matching the query, each with
// its store identifier attached as a string.
func (s *CatalogService) ListProducts(ctx context.Context, q ProductQuery) ([]models.ProductOut, error) {
	if q.Limit < 0 {
		return nil, &models.ValidationError{Violations: []models.FieldError{
			{Field: "limit", Reason: "must not be negative"},
		}}
	}
	limit := q.Limit
	if limit == 0 {
		limit = DefaultProductLimit
	}

	filter := map[string]any{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}

	docs, err := s.store.Query(ctx, models.CollectionProduct, filter, limit)
	if err != nil {
		return nil, err
	}

	out := make([]models.ProductOut, 0, len(docs))
	for _, doc := range docs {
		var p models.Product
		if err := bson.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		// %v, not %w: a bad stored document is a server fault and must
		// not surface as a client validation error.
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("stored product %q: %v", store.DocumentID(doc), err)
		}

		out = append(out, models.ProductOut{ID: store.DocumentID(doc), Product: p})
	}

	return out, nil
}
