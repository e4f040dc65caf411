package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/core/services"
	"github.com/cefinvest/invest_backend/internal/handlers"
	"github.com/cefinvest/invest_backend/internal/middleware"
	"github.com/cefinvest/invest_backend/internal/platform/config"
	"github.com/cefinvest/invest_backend/internal/platform/metrics"
	"github.com/cefinvest/invest_backend/internal/platform/seed"
	"github.com/cefinvest/invest_backend/internal/repositories/cache"
	"github.com/cefinvest/invest_backend/internal/repositories/database/pgsql"
	"github.com/cefinvest/invest_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Investment Backend API
// @version 1.0
// @description Investment product simulation, recommendation and customer risk scoring API.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	// Optional redis catalog cache in front of the product repository.
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unreachable, product catalog cache disabled", slog.String("error", err.Error()))
		} else {
			repos.ProductRepo = cache.NewCachedProductRepository(repos.ProductRepo, redisClient, cfg.ProductCacheTTL)
			logger.Info("Product catalog cache enabled", slog.String("redis_addr", cfg.RedisAddr))
		}
	}

	if cfg.SeedOnStartup {
		if err := seed.NewSeeder(repos, logger).Run(context.Background()); err != nil {
			logger.Error("Failed to seed database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	metricsCollector := metrics.NewMetricsCollector()
	container := buildServices(repos, metricsCollector, cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.Default(),
		middleware.TelemetryMiddleware(container.Telemetry),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, metricsCollector.Handler())

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func buildServices(repos portsrepo.RepositoryProvider, metricsCollector *metrics.MetricsCollector, cfg *config.Config) *portssvc.ServiceContainer {
	classifier := services.NewRiskClassifier()
	scoring := services.NewRiskScoringService(repos.HistoryRepo, classifier)

	return &portssvc.ServiceContainer{
		Simulation: services.NewSimulationService(
			repos.ProductRepo,
			repos.CustomerRepo,
			repos.SimulationRepo,
			repos.HistoryRepo,
			scoring,
			repos.TxManager,
			metricsCollector,
			cfg.AutoCreateCustomers,
		),
		RiskProfile:    scoring,
		Recommendation: services.NewRecommendationService(repos.ProductRepo),
		Product:        services.NewProductService(repos.ProductRepo),
		Customer:       services.NewCustomerService(repos.CustomerRepo),
		History:        services.NewHistoryService(repos.HistoryRepo),
		Telemetry:      services.NewTelemetryService(repos.TelemetryRepo),
	}
}

// runMigrations applies every pending up migration from the migrations
// directory over a short-lived database/sql connection.
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

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
