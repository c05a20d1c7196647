package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harentsoaR/fair-marriage-api/internal/config"
	"github.com/harentsoaR/fair-marriage-api/internal/handlers"
	"github.com/harentsoaR/fair-marriage-api/internal/middleware"
	"github.com/harentsoaR/fair-marriage-api/internal/routes"
	"github.com/harentsoaR/fair-marriage-api/internal/services"
	"github.com/harentsoaR/fair-marriage-api/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource, so its defers still run when the server fails.
func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log.Printf("STORE_BACKEND: %s", cfg.StoreBackend)
	log.Printf("MONGO_URI: %s", cfg.RedactedMongoURI())
	log.Printf("MONGO_DATABASE: %s", cfg.MongoDatabase)
	log.Printf("API_PORT: %s", cfg.Port)
	log.Printf("CORS_ORIGINS: %v", cfg.CORSOrigins)
	log.Printf("TRUSTED_PROXIES: %v", cfg.TrustedProxies)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// --- Database Connection ---
	db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}()

	// --- Services and handlers ---
	metrics := middleware.NewMetrics("fairmarriage")
	biodataSvc := services.NewBiodataService(db, metrics.BioIDsAllocated)
	statsSvc := services.NewStatsService(db)
	h := handlers.NewHandler(db, biodataSvc, statsSvc)

	// --- Router ---
	r := routes.SetupRouter(h, routes.Options{
		AllowOrigins:   cfg.CORSOrigins,
		Limiter:        newLimiter(cfg),
		Metrics:        metrics,
		TrustedProxies: cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	log.Printf("listening on port %s", cfg.Port)
	return serve(srv, quit, 15*time.Second)
}

// serve runs srv until it fails or a signal arrives on quit, then shuts it
// down within timeout. A clean shutdown returns nil.
func serve(srv *http.Server, quit <-chan os.Signal, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Printf("Received %s, shutting down server...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.StoreBackend == config.BackendMemory {
		log.Println("Using in-memory store; data is lost on restart.")
		return store.NewMemoryStore(), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}
	log.Println("Successfully connected to MongoDB!")
	return s, nil
}

// newLimiter prefers Redis so every instance shares one budget, and falls
// back to a per-process limiter when Redis is not configured or unreachable.
func newLimiter(cfg config.Config) middleware.Limiter {
	if cfg.RateLimitPerMinute == 0 {
		log.Println("Rate limiting disabled.")
		return nil
	}
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := middleware.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err == nil {
			return middleware.NewRedisRateLimiter(client, cfg.RateLimitPerMinute, time.Minute)
		}
		log.Printf("WARNING: %v; using in-process rate limiter", err)
	}
	return middleware.NewIPRateLimiter(cfg.RateLimitPerMinute, time.Minute)
}
