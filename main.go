package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/config"
	"github.com/vendorops/vos-engine/pkg/database"
	"github.com/vendorops/vos-engine/pkg/handlers"
	"github.com/vendorops/vos-engine/pkg/middleware"
	"github.com/vendorops/vos-engine/pkg/repositories"
	"github.com/vendorops/vos-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("database", cfg.Database.Database),
		zap.String("dbServer", cfg.Database.Server))

	db := database.NewManager(&cfg.Database, logger)
	defer db.Close()

	// An unreachable database at boot is logged but not fatal; the pool
	// reconnects lazily and /api/db-test reports live status.
	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := db.Connect(startupCtx); err != nil {
		logger.Warn("Database unavailable at startup, continuing", zap.Error(err))
	}
	cancel()

	reportRepo := repositories.NewReportRepository(db, logger)
	vendorRepo := repositories.NewVendorRepository(db, logger)

	reportSvc := services.NewReportService(reportRepo, logger)
	authSvc := services.NewAuthService(vendorRepo, logger)

	dev := cfg.IsDevelopment()
	mux := http.NewServeMux()
	handlers.NewPendingOrdersHandler(reportSvc, logger, dev).RegisterRoutes(mux)
	handlers.NewPurchaseOrderDraftHandler(reportSvc, logger, dev).RegisterRoutes(mux)
	handlers.NewHealthHandler(cfg, db, logger).RegisterRoutes(mux)

	// Login sits behind its own tighter limiter; everything else shares the
	// blanket one.
	authLimiter := middleware.NewAuthRateLimiter(cfg.RateLimit, logger)
	authMux := http.NewServeMux()
	handlers.NewAuthHandler(authSvc, logger, dev).RegisterRoutes(authMux)
	authMux.HandleFunc("/", handlers.NotFound)
	mux.Handle("/api/users/", authLimiter.Middleware(authMux))

	globalLimiter := middleware.NewGlobalRateLimiter(cfg.RateLimit, logger)
	var handler http.Handler = mux
	handler = globalLimiter.Middleware(handler)
	handler = middleware.CORS(cfg.FrontendURL)(handler)
	handler = middleware.RequestLogger(logger)(handler)

	server := &http.Server{
		Addr:              cfg.BindAddr + ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting vos-engine",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", zap.Error(err))
			return 1
		}
	case sig := <-stop:
		logger.Info("Shutting down", zap.String("signal", sig.String()))

		grace := time.Duration(cfg.ShutdownGraceSeconds) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed, forcing exit", zap.Error(err))
			return 1
		}
	}

	logger.Info("Server stopped")
	return 0
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
