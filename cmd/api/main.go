package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/leggettc18/devmarks/internal/api"
	"github.com/leggettc18/devmarks/internal/api/handlers"
	mw "github.com/leggettc18/devmarks/internal/api/middleware"
	"github.com/leggettc18/devmarks/internal/api/validators"
	"github.com/leggettc18/devmarks/internal/queue"
	"github.com/leggettc18/devmarks/internal/repository"
	"github.com/leggettc18/devmarks/internal/services"
	"github.com/leggettc18/devmarks/pkg/config"
	"github.com/leggettc18/devmarks/pkg/database"
	"github.com/leggettc18/devmarks/pkg/logger"
)

const devJWTSecret = "change-me-in-production-please"

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting devmarks api",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{
		Logger:   log,
		LogLevel: database.LogLevelFor(cfg.AppEnv),
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql db", zap.Error(err))
	}
	defer sqlDB.Close()
	log.Info("database connected")

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		if cfg.AppEnv == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = []byte(devJWTSecret)
	}

	checks := []handlers.HealthCheck{{Name: "database", Check: sqlDB.PingContext}}

	// Link checks are only scheduled when Redis is configured.
	var enqueuer services.TaskEnqueuer
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		checks = append(checks, handlers.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})

		client := asynq.NewClient(queue.RedisOpt(cfg.RedisAddr, cfg.RedisPassword))
		defer client.Close()
		enqueuer = client
		log.Info("task queue enabled", zap.String("redis", cfg.RedisAddr))
	} else {
		log.Warn("REDIS_ADDR not set, link checks disabled")
	}

	userRepo := repository.NewUserRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	folderRepo := repository.NewFolderRepository(db)

	authSvc := services.NewAuthService(userRepo, jwtSecret, cfg.TokenTTL)
	bookmarkSvc := services.NewBookmarkService(bookmarkRepo, enqueuer)
	folderSvc := services.NewFolderService(folderRepo, bookmarkRepo)

	v := validators.New()
	router := api.NewRouter(api.Dependencies{
		HMACSecret:       jwtSecret,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
		Metrics:          mw.NewMetrics(),
		HealthHandler:    handlers.NewHealthHandler(checks...),
		AuthHandler:      handlers.NewAuthHandler(authSvc, v),
		BookmarksHandler: handlers.NewBookmarksHandler(bookmarkSvc, v),
		FoldersHandler:   handlers.NewFoldersHandler(folderSvc, v),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
