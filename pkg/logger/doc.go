// Package logger builds log/slog loggers for the demo server and its
// middleware.
//
// New applies functional options over a JSON-on-stdout, info-level default:
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formvalid"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated", logger.Fields("card"))
//
// Context extractors run for every record and add request-scoped attributes
// such as the request id. WithFormat and WithLevelName panic on invalid input.
package logger
