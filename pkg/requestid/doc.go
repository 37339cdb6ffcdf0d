// Package requestid tags every HTTP request with a correlation id.
//
// Middleware keeps a well-formed incoming X-Request-ID header (at most 128
// letters, digits, hyphens or underscores) and otherwise generates a UUIDv7.
// The id is stored in the request context, echoed in the response header and
// added to log records by LoggerExtractor.
package requestid
