// Package httpserver runs an http.Server with graceful shutdown and slog
// lifecycle logging.
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Config carries `env` tags and is meant to be embedded in the application
// config loaded by package config. HealthCheckHandler provides liveness and
// readiness probes.
package httpserver
