package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/formvalid/internal/demo"
	"github.com/dmitrymomot/formvalid/pkg/clientip"
	"github.com/dmitrymomot/formvalid/pkg/httpserver"
	"github.com/dmitrymomot/formvalid/pkg/logger"
	"github.com/dmitrymomot/formvalid/pkg/requestid"
)

func main() {
	cfg, err := demo.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(opts...)
	slog.SetDefault(log)

	app, err := demo.New(demo.WithLogger(log), demo.WithTrustedHeaders(cfg.TrustedIPHeaders...))
	if err != nil {
		log.Error("failed to init app", logger.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, app.Router()); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		stop()
		os.Exit(1)
	}
}
