package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"os"
)

// StoreStatus is the slice of the store the diagnostics endpoint needs.
type StoreStatus interface {
	Configured() bool
	Name() string
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

// HealthHandler provides the liveness banner and store diagnostics.
type HealthHandler struct {
	store  StoreStatus
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store StoreStatus, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// Root handles GET / with a liveness banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "FPV 24/7 backend running",
	}, h.logger)
}

// DiagnosticsResponse reports whether the document store is reachable.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics handles GET /test: it checks that the store is configured
// and accessible, and lists up to 10 collection names.
func (h *HealthHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURLSet:   os.Getenv("DATABASE_URL") != "",
		DatabaseNameSet:  os.Getenv("DATABASE_NAME") != "",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store != nil && h.store.Configured() {
		response.Database = "available"
		response.DatabaseName = h.store.Name()

		if err := h.store.Ping(ctx); err != nil {
			h.logger.Warn("store ping failed", "error", err)
			response.Database = "available but unreachable"
		} else {
			response.ConnectionStatus = "connected"

			if collections, err := h.store.Collections(ctx); err != nil {
				h.logger.Warn("failed to list collections", "error", err)
				response.Database = "connected but errored"
			} else {
				if len(collections) > 10 {
					collections = collections[:10]
				}
				response.Database = "connected and working"
				response.Collections = collections
			}
		}
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
