package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httptransport "github.com/mentorverse/mentorverse-api/internal/api/http"
	"github.com/mentorverse/mentorverse-api/internal/api/http/handlers"
	"github.com/mentorverse/mentorverse-api/internal/auth"
	"github.com/mentorverse/mentorverse-api/internal/cache"
	"github.com/mentorverse/mentorverse-api/internal/config"
	"github.com/mentorverse/mentorverse-api/internal/events"
	"github.com/mentorverse/mentorverse-api/internal/observability"
	"github.com/mentorverse/mentorverse-api/internal/persistence"
	"github.com/mentorverse/mentorverse-api/internal/repository"
	"github.com/mentorverse/mentorverse-api/internal/service"
	"github.com/mentorverse/mentorverse-api/internal/storage"
	"github.com/mentorverse/mentorverse-api/internal/worker"
)

const (
	notificationWorkers = 2
	notificationBuffer  = 256
	shutdownTimeout     = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

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

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	internshipRepo := repository.NewInternshipRepository(pool)
	webinarRepo := repository.NewWebinarRepository(pool)
	certificateRepo := repository.NewCertificateRepository(pool)
	contentRepo := repository.NewContentRepository(pool)

	codec, err := auth.NewCodec(auth.CodecConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.App.Name,
	})
	if err != nil {
		logger.Fatal("failed to init token codec", zap.Error(err))
	}

	pipeline := auth.NewPipeline(auth.Authenticate(codec))
	if cfg.Auth.RefreshIdentity {
		pipeline = pipeline.With(auth.RefreshIdentity(userRepo))
	}
	gates := auth.NewMiddleware(pipeline, logger, metrics)

	catalogCache := cache.NewCatalog(cache.NewRedisStore(redis.Client), cfg.Redis.CacheTTL, logger, metrics)

	resumes, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to init resume storage", zap.Error(err))
	}

	notifier := worker.NewNotificationWorker(events.NewInMemoryDispatcher(), logger, notificationBuffer)
	worker.StartNotificationWorker(
		service.NewNotificationService(notifier, logger, cfg.Notification),
		notifier,
		notificationWorkers,
	)

	authService := service.NewAuthService(userRepo, codec, cfg.Auth.BcryptCost)
	profileService := service.NewProfileService(service.ProfileDependencies{
		UserRepo:        userRepo,
		CourseRepo:      courseRepo,
		InternshipRepo:  internshipRepo,
		WebinarRepo:     webinarRepo,
		CertificateRepo: certificateRepo,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		CourseRepo:     courseRepo,
		InternshipRepo: internshipRepo,
		WebinarRepo:    webinarRepo,
		ContentRepo:    contentRepo,
		Cache:          catalogCache,
		Resumes:        resumes,
		Dispatcher:     notifier,
	})
	certificateService := service.NewCertificateService(certificateRepo, userRepo, notifier)
	adminService := service.NewAdminService(service.AdminDependencies{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		InternshipRepo: internshipRepo,
		ContentRepo:    contentRepo,
		Cache:          catalogCache,
		Dispatcher:     notifier,
	})

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.App.BodyLimitBytes,
	})
	httptransport.RegisterMiddlewares(app, cfg, logger, metrics)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))
	app.Static("/uploads", cfg.Storage.LocalDir)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:         handlers.NewAuthHandler(authService),
		Profile:      handlers.NewProfileHandler(profileService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Certificates: handlers.NewCertificateHandler(certificateService),
		Admin:        handlers.NewAdminHandler(adminService),
		Gates:        gates,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	if err := notifier.Stop(shutdownCtx); err != nil {
		logger.Warn("notification worker did not drain", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
