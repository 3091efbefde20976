package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/client-registry/internal/api/http"
	"github.com/spec-kit/client-registry/internal/api/http/handlers"
	"github.com/spec-kit/client-registry/internal/config"
	"github.com/spec-kit/client-registry/internal/events"
	"github.com/spec-kit/client-registry/internal/observability"
	"github.com/spec-kit/client-registry/internal/persistence"
	"github.com/spec-kit/client-registry/internal/ratelimit"
	"github.com/spec-kit/client-registry/internal/repository"
	"github.com/spec-kit/client-registry/internal/service"
	"github.com/spec-kit/client-registry/internal/session"
	"github.com/spec-kit/client-registry/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	clientRepo := repository.NewClientRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	registrationService := service.NewRegistrationService(clientRepo, supplierRepo, dispatcher, cfg.Auth.BcryptCost)
	authService := service.NewAuthService(clientRepo, dispatcher)

	sessionStore := session.NewRedisStore(redis.Client)
	sessionManager := session.NewManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL(), sessionStore)
	sessionMiddleware := session.NewMiddleware(sessionManager)

	limiter := ratelimit.NewLimiter()
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Clients:   handlers.NewClientsHandler(registrationService),
		Suppliers: handlers.NewSuppliersHandler(registrationService),
		Auth:      handlers.NewAuthHandler(authService, sessionManager),
		Sessions:  sessionMiddleware,
		Limiter:   limiter,
		Limits:    cfg.RateLimit,
		StaticDir: cfg.Static.Dir,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
