package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/carespace/carespace-api/internal/api"
	"github.com/carespace/carespace-api/internal/api/handlers"
	"github.com/carespace/carespace-api/internal/api/middleware"
	"github.com/carespace/carespace-api/internal/cache"
	"github.com/carespace/carespace-api/internal/config"
	"github.com/carespace/carespace-api/internal/health"
	"github.com/carespace/carespace-api/internal/pkg/clock"
	repository "github.com/carespace/carespace-api/internal/repositories"
	redisRepo "github.com/carespace/carespace-api/internal/repositories/redis"
	service "github.com/carespace/carespace-api/internal/services"
	"github.com/carespace/carespace-api/internal/telemetry"
	"github.com/carespace/carespace-api/pkg/googleauth"
	"github.com/carespace/carespace-api/pkg/sendGrid"
)

const version = "1.0.0"

// @title           CareSpace API
// @version         1.0
// @description     Catalog and lead capture API for the CareSpace medical equipment rental storefront.
// @BasePath        /
// @securityDefinitions.apikey  SessionCookie
// @in                          cookie
// @name                        session
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	clk := clock.NewRealClock()

	// Redis is optional: without it products are read straight from postgres
	// and lead submissions are not rate limited.
	var (
		productCache cache.Cache
		leadLimiter  service.RateLimiter
	)

	if cfg.RedisConnect.Enabled {
		redisClient, err := redisRepo.NewClient(ctx, cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer redisClient.Close()

		productCache = cache.NewRedisCache(redisClient, cfg.Cache)
		leadLimiter = redisRepo.NewRateLimiter(redisClient, cfg.RateConfig, "lead_rate_limit", clk)
	} else {
		slog.Warn("Redis disabled: product cache and lead rate limiting are off")
	}

	var emailService sendGrid.EmailService
	if cfg.SendGrid.APIKey != "" && cfg.SendGrid.SalesInbox != "" {
		emailService = sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid not configured: lead notifications are off")
	}

	categoryService := service.NewCategoryService(repos.Category, productCache)
	productService := service.NewProductService(repos.Product, repos.Category, productCache)
	leadService := service.NewLeadService(repos.Lead, leadLimiter, emailService, clk, cfg.SendGrid.SalesInbox)
	authService := service.NewAuthService(repos.User, googleauth.NewVerifier(cfg.Security.GoogleClientID), cfg.Security, clk)

	healthChecker, err := health.NewHealthHandler(version, health.Checks(cfg)...)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	handler := api.NewRouter(api.Handlers{
		Category: handlers.NewCategoryHandler(categoryService),
		Product:  handlers.NewProductHandler(productService),
		Lead:     handlers.NewLeadHandler(leadService),
		Auth:     handlers.NewAuthHandler(authService, cfg.Security),
		Sitemap:  handlers.NewSitemapHandler(categoryService, productService, cfg.Site.BaseURL, clk),
		Health:   healthChecker.Handler(),
	}, authMiddleware)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
