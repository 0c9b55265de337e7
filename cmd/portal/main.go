package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bank_portal/internal/adapters/bankapi"
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
	"github.com/SscSPs/bank_portal/internal/core/services"
	"github.com/SscSPs/bank_portal/internal/handlers"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/SscSPs/bank_portal/internal/platform/config"
	"github.com/SscSPs/bank_portal/internal/repositories/database/pgsql"
	"github.com/SscSPs/bank_portal/internal/repositories/memory"
	redisrepo "github.com/SscSPs/bank_portal/internal/repositories/redis"
	"github.com/SscSPs/bank_portal/internal/utils"
	"github.com/SscSPs/bank_portal/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Banking Portal API
// @version 1.0
// @description Session-scoped portal over the core banking API: navigation, accounts, transfers, approvals, interest, groups and notifications.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the portal JWT.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Configuration loaded", slog.String("session_store", cfg.SessionStore), slog.String("bank_api", cfg.BankAPIBaseURL))

	sealer, err := utils.NewSealer(cfg.SessionSecret)
	if err != nil {
		logger.Error("Failed to create session sealer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openSessionStore(ctx, cfg, sealer, logger)
	if err != nil {
		logger.Error("Failed to open session store", slog.String("store", cfg.SessionStore), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	conn, err := bankapi.NewConnector(bankapi.Options{
		BaseURL:   cfg.BankAPIBaseURL,
		Timeout:   cfg.BankAPITimeout,
		RateLimit: cfg.BankAPIRateLimit,
		Burst:     cfg.BankAPIBurst,
	})
	if err != nil {
		logger.Error("Failed to configure bank API client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, conn.Factory(), logger)
	conn.OnSessionExpired(serviceContainer.Session.ExpireSession)

	scheduler := cron.New()
	if repos.SessionPurger != nil {
		if _, err := scheduler.AddFunc("@every 15m", func() { purgeExpiredSessions(ctx, repos.SessionPurger, logger) }); err != nil {
			logger.Error("Failed to schedule session purge", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	scheduler.Start()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Analytics(posthogClient))
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("Failed to reset trusted proxies", slog.String("error", err.Error()))
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to run server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	<-scheduler.Stop().Done()
	serviceContainer.Notification.Close(shutdownCtx)
	logger.Info("Server stopped")
}

// openSessionStore builds the repositories for the configured session store
// and returns a function releasing its connections.
func openSessionStore(ctx context.Context, cfg *config.Config, sealer *utils.Sealer, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		client, err := redisrepo.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Using Redis session store", slog.String("addr", cfg.RedisAddr))
		repos := portsrepo.RepositoryProvider{SessionRepo: redisrepo.NewSessionRepository(client, sealer)}
		return repos, func() { _ = client.Close() }, nil

	case config.SessionStorePostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := runMigrations(cfg, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool, sealer), func() { database.ClosePgxPool(dbPool) }, nil

	default:
		logger.Info("Using in-memory session store")
		return portsrepo.RepositoryProvider{SessionRepo: memory.NewSessionRepository()}, func() {}, nil
	}
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsURL, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("Failed to close migration source", slog.String("error", srcErr.Error()))
	}
	if dbErr != nil {
		logger.Warn("Failed to close migration database", slog.String("error", dbErr.Error()))
	}
	logger.Info("Database migrations applied successfully")
	return nil
}

func purgeExpiredSessions(ctx context.Context, purger portsrepo.SessionPurger, logger *slog.Logger) {
	n, err := purger.PurgeExpiredSessions(ctx)
	if err != nil {
		logger.Error("Failed to purge expired sessions", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		logger.Info("Purged expired sessions", slog.Int64("count", n))
	}
}
