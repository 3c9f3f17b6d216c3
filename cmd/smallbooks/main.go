package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/smallbooks/smallbooks/internal/adapters/assistant"
	portssvc "github.com/smallbooks/smallbooks/internal/core/ports/services"
	"github.com/smallbooks/smallbooks/internal/core/services"
	"github.com/smallbooks/smallbooks/internal/handlers"
	"github.com/smallbooks/smallbooks/internal/middleware"
	"github.com/smallbooks/smallbooks/internal/platform/config"
	"github.com/smallbooks/smallbooks/internal/repositories/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// In-memory repositories; the books live for the lifetime of the process.
	accountRepo := memory.NewAccountRepository()
	voucherRepo := memory.NewVoucherRepository()

	var suggester portssvc.SuggestionProvider
	var adviser portssvc.AdviceProvider
	if cfg.AssistantBaseURL != "" {
		client := assistant.NewClient(cfg.AssistantBaseURL, cfg.AssistantTimeout)
		suggester = client
		adviser = client
		logger.Info("Assistant providers configured", slog.String("base_url", cfg.AssistantBaseURL))
	} else {
		logger.Info("Assistant providers disabled")
	}

	serviceContainer := services.NewServiceContainer(accountRepo, voucherRepo, suggester, adviser, cfg.AssistantTimeout)

	if cfg.SeedStandardChart {
		if err := serviceContainer.Chart.SeedStandardChart(context.Background()); err != nil {
			logger.Error("Failed to seed standard chart of accounts", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit configuration", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	ipLimiter := limiter.New(limitermem.NewStore(), rate)
	r.Use(middleware.RateLimit(ipLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
