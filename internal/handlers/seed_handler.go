package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fpv247/storefront-backend/internal/service"
	"github.com/fpv247/storefront-backend/internal/store"
)

// SeedHandler exposes the idempotent demo-data seeding endpoint.
type SeedHandler struct {
	seed *service.SeedService
	log  *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seed *service.SeedService, log *slog.Logger) *SeedHandler {
	return &SeedHandler{seed: seed, log: log}
}

// Seed handles POST /seed
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seed.Seed(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			h.log.Error("store unavailable", "error", err)
			WriteError(w, http.StatusServiceUnavailable, "Database not configured", h.log)
			return
		}
		h.log.Error("failed to seed demo data", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	if result.AlreadySeeded {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "Products already seeded",
		}, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"inserted": result.Inserted,
	}, h.log)
	h.log.Info("demo data seeded", "inserted", result.Inserted)
}
