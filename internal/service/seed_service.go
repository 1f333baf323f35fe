package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/fpv247/storefront-backend/internal/models"
)

// SeedService loads the demo catalog so the storefront has content.
type SeedService struct {
	store DocumentStore
}

// NewSeedService creates a new seed service.
func NewSeedService(store DocumentStore) *SeedService {
	return &SeedService{store: store}
}

// SeedResult reports what seeding did.
type SeedResult struct {
	AlreadySeeded bool
	Inserted      int
}

// Seed upserts the demo categories by slug and inserts the demo
// products. It is idempotent: once any product exists, it no-ops.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	existing, err := s.store.Query(ctx, models.CollectionProduct, nil, 1)
	if err != nil {
		return SeedResult{}, err
	}
	if len(existing) > 0 {
		return SeedResult{AlreadySeeded: true}, nil
	}

	for _, c := range demoCategories() {
		if err := c.Validate(); err != nil {
			return SeedResult{}, err
		}
		if err := s.store.Upsert(ctx, models.CollectionCategory, map[string]any{"slug": c.Slug}, c); err != nil {
			return SeedResult{}, err
		}
	}

	products := demoProducts()
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return SeedResult{}, err
		}
		if _, err := s.store.Insert(ctx, models.CollectionProduct, p); err != nil {
			return SeedResult{}, err
		}
	}

	return SeedResult{Inserted: len(products)}, nil
}

func demoCategories() []models.Category {
	return []models.Category{
		{Slug: "custom-drones", Name: "Custom Drones", Description: lo.ToPtr("Fully built quads tuned for performance"), Icon: lo.ToPtr("drone")},
		{Slug: "frames", Name: "Frames", Description: lo.ToPtr("Lightweight and durable"), Icon: lo.ToPtr("box")},
		{Slug: "motors", Name: "Motors", Description: lo.ToPtr("High KV, smooth bearings"), Icon: lo.ToPtr("cpu")},
		{Slug: "batteries", Name: "Batteries", Description: lo.ToPtr("High C LiPos"), Icon: lo.ToPtr("battery")},
		{Slug: "goggles", Name: "Goggles", Description: lo.ToPtr("Digital & analog"), Icon: lo.ToPtr("eye")},
	}
}

func demoProducts() []models.Product {
	raven := models.NewProduct("FPV 24/7 Raven 5", 499.0, "custom-drones")
	raven.Description = lo.ToPtr("5-inch freestyle beast with F7 FC, 2207 1950KV motors, tune by pros.")
	raven.Images = []string{
		"https://images.unsplash.com/photo-1512820790803-83ca734da794?q=80&w=1200&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1484704849700-f032a568e944?q=80&w=1200&auto=format&fit=crop",
	}
	raven.StockQty = 12
	raven.Rating = 4.9
	raven.Featured = true
	raven.Tags = []string{"freestyle", "5-inch", "raven"}
	raven.Specs = map[string]string{"Weight": "410g", "Flight Time": "6-8 min", "Props": `5"`}

	cinewhoop := models.NewProduct("CineWhoop Mini", 389.0, "custom-drones")
	cinewhoop.Description = lo.ToPtr("Ducted 3-inch cinematic rig. Ultra stable for indoors.")
	cinewhoop.Images = []string{
		"https://images.unsplash.com/photo-1548438294-1ad5d5f4f063?q=80&w=1200&auto=format&fit=crop",
	}
	cinewhoop.StockQty = 9
	cinewhoop.Rating = 4.7
	cinewhoop.Featured = true
	cinewhoop.Tags = []string{"cinewhoop", "3-inch", "ducted"}
	cinewhoop.Specs = map[string]string{"Weight": "290g", "Flight Time": "5-7 min", "Props": `3"`}

	motor := models.NewProduct("2207 1950KV Pro Motor", 23.9, "motors")
	motor.Description = lo.ToPtr("Smooth and powerful. Durable bell, N52H magnets.")
	motor.Images = []string{
		"https://images.unsplash.com/photo-1601203227133-14f42f67d03a?q=80&w=1200&auto=format&fit=crop",
	}
	motor.StockQty = 120
	motor.Tags = []string{"motor", "2207", "1950KV"}
	motor.Specs = map[string]string{"Shaft": "5mm", "Stator": "2207", "KV": "1950"}

	return []models.Product{raven, cinewhoop, motor}
}
