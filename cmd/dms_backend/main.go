package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/SscSPs/dealership_finance_app/internal/adapters/overridestore"
	"github.com/SscSPs/dealership_finance_app/internal/adapters/ratesapi"
	"github.com/SscSPs/dealership_finance_app/internal/adapters/regulatorytable"
	"github.com/SscSPs/dealership_finance_app/internal/core/services"
	"github.com/SscSPs/dealership_finance_app/internal/handlers"
	"github.com/SscSPs/dealership_finance_app/internal/middleware"
	"github.com/SscSPs/dealership_finance_app/internal/platform/config"
	"github.com/SscSPs/dealership_finance_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/SscSPs/dealership_finance_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Dealership Finance API
// @version 1.0
// @description Installment sales, exchange rates and import duty lookups for a vehicle dealership.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	var rateLimiter *limiter.Limiter
	if cfg.RedisURL != "" {
		redisClient, err := overridestore.ConnectRedis(ctx, cfg.RedisURL, logger)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		repos.OverrideStore = overridestore.NewRedisStore(redisClient)
		rateLimiter, err = middleware.NewRedisRateLimiter(redisClient, cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		logger.Warn("REDIS_URL not set, rate overrides are kept in memory and lost on restart")
		repos.OverrideStore = overridestore.NewMemoryStore()
		rateLimiter, err = middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.RateSource == config.RateSourceHTTP {
		repos.LiveRateSource = ratesapi.NewClient(cfg.RateAPIURL, cfg.RateAPITimeout)
		logger.Info("Using HTTP rate provider", slog.String("endpoint", cfg.RateAPIURL))
	} else {
		logger.Info("Using recorded exchange rates as the live rate source")
	}

	repos.RegulatorySource = regulatorytable.NewSource(cfg.RegulatoryTablePath)

	serviceContainer := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		RateLimiter: rateLimiter,
		Posthog:     posthogClient,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies every pending migration under ./migrations through a
// short-lived database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		return errors.Join(sourceErr, dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
