package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/personal_ledger_app/internal/adapters/database/memory"
	"github.com/SscSPs/personal_ledger_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/personal_ledger_app/internal/adapters/events/rabbitmq"
	"github.com/SscSPs/personal_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/core/services"
	"github.com/SscSPs/personal_ledger_app/internal/handlers"
	"github.com/SscSPs/personal_ledger_app/internal/middleware"
	"github.com/SscSPs/personal_ledger_app/internal/platform/config"
	"github.com/SscSPs/personal_ledger_app/internal/platform/ratelimit"
	"github.com/SscSPs/personal_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Personal Ledger API
// @version 1.0
// @description Records income and expense entries per owner and reports balances.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires and starts the server. Resources opened here are released by its defers
// whenever it returns.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	repos, closeStorage, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	var publisher events.EntryEventPublisher
	if cfg.AMQPURL != "" {
		rabbitPublisher, err := rabbitmq.NewEntryEventPublisher(cfg.AMQPURL, cfg.AMQPEntryEventsQueue)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
		logger.Info("Publishing entry events", slog.String("queue", cfg.AMQPEntryEventsQueue))
	}

	loginLimiter, closeLimiter, err := ratelimit.NewLoginLimiter(ctx, cfg.LoginRateLimit, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to set up login rate limiter: %w", err)
	}
	defer closeLimiter()

	handlers.RegisterValidators()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Location"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, publisher)
	handlers.RegisterRoutes(r, cfg, serviceContainer, middleware.RateLimit(loginLimiter))

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}

// setupStorage builds the repositories for the configured driver. The returned
// function releases whatever the driver holds open.
func setupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewRepositoryProvider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
