package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fpv247/storefront-backend/internal/config"
	"github.com/fpv247/storefront-backend/internal/handlers"
	"github.com/fpv247/storefront-backend/internal/middleware"
	"github.com/fpv247/storefront-backend/internal/service"
	"github.com/fpv247/storefront-backend/internal/store"
	"github.com/fpv247/storefront-backend/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect the document store. Without DATABASE_URL the server runs
	// on the in-memory store so the demo endpoints still work.
	var docs service.DocumentStore
	var status handlers.StoreStatus

	if cfg.Database.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		st, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.Name)
		cancel()
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := st.Disconnect(context.Background()); err != nil {
				log.Error("failed to disconnect store", "error", err)
			}
		}()

		log.Info("connected to database", "database", cfg.Database.Name)
		docs, status = st, st
	} else {
		log.Warn("DATABASE_URL not set, using in-memory store")
		mem := store.NewMem()
		docs, status = mem, mem
	}

	// Initialize services
	catalogService := service.NewCatalogService(docs)
	orderService := service.NewOrderService(docs)
	seedService := service.NewSeedService(docs)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(status, log)
	productHandler := handlers.NewProductHandler(catalogService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	seedHandler := handlers.NewSeedHandler(seedService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration: the storefront frontend may be served from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/", healthHandler.Root)
	r.Get("/test", healthHandler.Diagnostics)
	r.Post("/seed", seedHandler.Seed)
	r.Get("/products", productHandler.ListProducts)
	r.Post("/orders", orderHandler.CreateOrder)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
