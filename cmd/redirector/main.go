package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Dorrrke/open-redirect/internal/config"
	"github.com/Dorrrke/open-redirect/internal/logger"
	"github.com/Dorrrke/open-redirect/internal/redirect"
	"github.com/Dorrrke/open-redirect/internal/server"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		return errors.Wrap(err, "config")
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, redirect.Default)
	logger.Log.Info("Starting server",
		zap.String("address", "http://"+cfg.ServerAddress.String()),
		zap.Strings("allowed_redirects", redirect.Default.Targets()))
	return srv.Run(ctx)
}
