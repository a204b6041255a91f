package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/radiancespa/siteforms/internal/api/router"
	"github.com/radiancespa/siteforms/internal/booking"
	appconfig "github.com/radiancespa/siteforms/internal/config"
	"github.com/radiancespa/siteforms/internal/contact"
	"github.com/radiancespa/siteforms/internal/directory"
	"github.com/radiancespa/siteforms/internal/feedback"
	"github.com/radiancespa/siteforms/internal/observability/metrics"
	"github.com/radiancespa/siteforms/internal/session"
	"github.com/radiancespa/siteforms/internal/signup"
	"github.com/radiancespa/siteforms/pkg/logging"
)

func main() {
	// Load .env when present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting siteforms API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"session_backend", cfg.SessionBackend,
	)

	// Seed the user directory.
	seed := directory.DefaultSeed()
	if cfg.SeedUsersJSON != "" {
		parsed, err := directory.ParseSeed([]byte(cfg.SeedUsersJSON))
		if err != nil {
			logger.Error("invalid SEED_USERS_JSON", "error", err)
			os.Exit(1)
		}
		seed = parsed
	}
	dir := directory.NewInMemory(seed...)
	logger.Info("user directory seeded", "identities", dir.Len())

	// Session store.
	var sessions session.Store
	switch cfg.SessionBackend {
	case "redis":
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		client := redis.NewClient(opts)
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("failed to connect to redis", "error", err, "addr", cfg.RedisAddr)
			os.Exit(1)
		}
		sessions = session.NewRedis(client, cfg.SessionTTL)
	default:
		sessions = session.NewMemory(cfg.SessionTTL)
	}

	// Metrics and feedback collaborators.
	reg := prometheus.NewRegistry()
	formMetrics := metrics.NewFormMetrics(reg)
	presenter := feedback.NewLogPresenter(logger)

	// Handlers.
	signupHandler := signup.NewHandler(sessions, dir, formMetrics, presenter, logger)
	bookingHandler := booking.NewHandler(sessions, booking.NewInMemoryRepository(), formMetrics, presenter, logger)
	contactHandler := contact.NewHandler(contact.NewInMemoryRepository(), logger)

	r := router.New(&router.Config{
		Logger:             logger,
		SignupHandler:      signupHandler,
		BookingHandler:     bookingHandler,
		ContactHandler:     contactHandler,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
