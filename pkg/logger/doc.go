// Package logger provides structured logging with configurable log levels.
// It wraps the standard log/slog package; the CLI points it at stderr so the
// report on stdout stays machine-readable.
package logger
