package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fpv247/storefront-backend/internal/service"
	"github.com/fpv247/storefront-backend/internal/store"
	"github.com/fpv247/storefront-backend/pkg/logger"
)

func TestHealthHandler_Root(t *testing.T) {
	handler := NewHealthHandler(store.NewMem(), logger.New("info"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.Root(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "FPV 24/7 backend running" {
		t.Errorf("message = %q, want liveness banner", body["message"])
	}
}

func TestHealthHandler_Diagnostics(t *testing.T) {
	mem := store.NewMem()
	if _, err := service.NewSeedService(mem).Seed(context.Background()); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	handler := NewHealthHandler(mem, logger.New("info"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.Diagnostics(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp DiagnosticsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Backend != "running" {
		t.Errorf("backend = %q, want running", resp.Backend)
	}
	if resp.ConnectionStatus != "connected" {
		t.Errorf("connection_status = %q, want connected", resp.ConnectionStatus)
	}
	if len(resp.Collections) != 2 {
		t.Errorf("collections = %v, want category and droneproduct", resp.Collections)
	}
}

func TestSeedHandler_Seed(t *testing.T) {
	mem := store.NewMem()
	handler := NewSeedHandler(service.NewSeedService(mem), logger.New("info"))

	// First call seeds
	w := httptest.NewRecorder()
	handler.Seed(w, httptest.NewRequest(http.MethodPost, "/seed", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var first map[string]any
	if err := json.NewDecoder(w.Body).Decode(&first); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if first["inserted"] != float64(3) {
		t.Errorf("inserted = %v, want 3", first["inserted"])
	}

	// Second call no-ops
	w = httptest.NewRecorder()
	handler.Seed(w, httptest.NewRequest(http.MethodPost, "/seed", nil))

	var second map[string]any
	if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if second["message"] != "Products already seeded" {
		t.Errorf("message = %v, want already-seeded notice", second["message"])
	}
}

func TestSeedHandler_SeedStoreUnavailable(t *testing.T) {
	handler := NewSeedHandler(service.NewSeedService(store.Unconfigured()), logger.New("info"))

	w := httptest.NewRecorder()
	handler.Seed(w, httptest.NewRequest(http.MethodPost, "/seed", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
