package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leggettc18/devmarks/internal/cli"
	"github.com/leggettc18/devmarks/pkg/config"
	"github.com/leggettc18/devmarks/pkg/devmarks"
	"github.com/leggettc18/devmarks/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, zapcore.Lock(os.Stderr))
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	store, closeStore, err := cli.OpenStore(cfg, log)
	if err != nil {
		log.Error("token store", zap.Error(err))
		return 2
	}
	defer func() { _ = closeStore() }()

	client := devmarks.NewClient(devmarks.Configuration{
		BasePath:    cfg.APIURL,
		Timeout:     cfg.RequestTimeout,
		AccessToken: store,
		Logger:      log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = cli.NewApp(client, store, log).RootCommand().ExecuteContext(ctx)
	code := cli.ExitCode(err)
	if code == 2 {
		fmt.Fprintln(os.Stderr, "fatal:", err)
	}
	return code
}
