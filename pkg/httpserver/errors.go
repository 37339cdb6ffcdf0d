package httpserver

import "errors"

var (
	// ErrStart is returned when the listener cannot be opened or Serve fails.
	ErrStart = errors.New("httpserver: start")
	// ErrShutdown is returned when in-flight requests outlive the shutdown timeout.
	ErrShutdown = errors.New("httpserver: graceful shutdown")
)
