package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/leggettc18/devmarks/internal/queue"
	"github.com/leggettc18/devmarks/internal/queue/tasks"
	"github.com/leggettc18/devmarks/internal/repository"
	"github.com/leggettc18/devmarks/internal/services"
	"github.com/leggettc18/devmarks/pkg/config"
	"github.com/leggettc18/devmarks/pkg/database"
	"github.com/leggettc18/devmarks/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR is required for the worker")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}
	_ = rdb.Close()

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{
		Logger:   log,
		LogLevel: database.LogLevelFor(cfg.AppEnv),
	})
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}

	bookmarkRepo := repository.NewBookmarkRepository(db)
	// The worker never schedules link checks itself.
	bookmarkSvc := services.NewBookmarkService(bookmarkRepo, nil)

	handler := tasks.NewLinkCheckTaskHandler(bookmarkRepo, bookmarkSvc, cfg.LinkCheckTimeout)
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeLinkCheck, handler.HandleLinkCheck)

	srv := asynq.NewServer(
		queue.RedisOpt(cfg.RedisAddr, cfg.RedisPassword),
		asynq.Config{
			Concurrency: cfg.AsynqConcurrency,
			Logger:      log.Sugar(),
		},
	)

	errCh := make(chan error, 1)
	go func() {
		log.Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		if err := srv.Run(mux); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("worker stopped with error", zap.Error(err))
	}

	srv.Shutdown()
}
