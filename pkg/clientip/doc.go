// Package clientip resolves the client address of HTTP requests and carries
// it in the request context for logging.
//
//	r.Use(clientip.Middleware("CF-Connecting-IP", "X-Forwarded-For"))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// Headers are trusted in the order given; the remote address is the fallback.
// Invalid addresses are skipped and results are normalized through net.ParseIP.
package clientip
