package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/TuhinKundu/ai2thor-data-viewer/internal/api"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/dataset"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/infrastructure/config"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/service"
	"github.com/TuhinKundu/ai2thor-data-viewer/internal/store"

	_ "github.com/TuhinKundu/ai2thor-data-viewer/docs" // generated swagger docs
)

// @title           AI2Thor Dataset Viewer API
// @version         1.0
// @description     Session engine for human evaluation of AI2Thor VQA datasets: answer rows, track score and progress, resume across restarts.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	sessions, err := store.NewFileStore(cfg.SessionsDir, logger)
	if err != nil {
		logger.Error("failed to open sessions directory", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.RowCachePath), 0o755); err != nil {
		logger.Error("failed to create cache directory", "error", err)
		os.Exit(1)
	}
	cache, err := dataset.OpenCache(cfg.RowCachePath)
	if err != nil {
		logger.Error("failed to open row cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	lifecycle := service.NewSessionService(sessions, cache, logger)
	handler := api.NewHandler(lifecycle, cache, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "sessions_dir", cfg.SessionsDir)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
