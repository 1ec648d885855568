// Package ports defines the core interfaces for the application.
package ports

import "io"

// Logger is the application-wide logging interface.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error, rendering wrapped causes hierarchically.
	Error(err error)
	// SetOutput redirects log output, primarily for tests.
	SetOutput(w io.Writer)
	// SetJSON switches between pretty and JSON output.
	SetJSON(enable bool)
}
