package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

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

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{
		Logger:   log,
		LogLevel: database.LogLevelFor(cfg.AppEnv),
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := runMigrations(ctx, db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
