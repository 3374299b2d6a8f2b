package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Katoo2706/lunch-byte-buddies/docs"
	"github.com/Katoo2706/lunch-byte-buddies/internal/config"
	"github.com/Katoo2706/lunch-byte-buddies/internal/ledger/split"
	"github.com/Katoo2706/lunch-byte-buddies/internal/order"
	"github.com/Katoo2706/lunch-byte-buddies/internal/person"
	"github.com/Katoo2706/lunch-byte-buddies/internal/settlement"
	"github.com/Katoo2706/lunch-byte-buddies/internal/storage"
	"github.com/Katoo2706/lunch-byte-buddies/internal/transfer"
	"github.com/Katoo2706/lunch-byte-buddies/pkg/logging"
	mw "github.com/Katoo2706/lunch-byte-buddies/pkg/middleware"
)

// @title        Lunch Byte Buddies API
// @version      1.0
// @description  Team lunch-expense tracker: people, orders, settlements and derived balances.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// Open the local snapshot store
	if dir := filepath.Dir(cfg.StorePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("Failed to create data directory", "error", err)
			os.Exit(1)
		}
	}
	store, err := storage.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		slog.Error("Failed to open snapshot store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	keeper := storage.NewKeeper(context.Background(), store)
	slog.Info("Snapshot store ready", "path", cfg.StorePath)

	// Split strategy factory for team orders
	splitFactory := split.NewFactory()

	// Person feature
	personService := person.NewService(keeper)
	personHandler := person.NewHandler(personService)

	// Order feature (with split factory injected)
	orderService := order.NewService(keeper, splitFactory)
	orderHandler := order.NewHandler(orderService)

	// Settlement feature
	settlementService := settlement.NewService(keeper)
	settlementHandler := settlement.NewHandler(settlementService)

	// Import/export feature
	transferHandler := transfer.NewHandler(keeper)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(mw.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/people", personHandler.Routes())
		r.Mount("/orders", orderHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/transfer", transferHandler.Routes())
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
