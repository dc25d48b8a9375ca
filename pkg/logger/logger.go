// Package logger provides a structured, levelled logger built on log/slog.
//
// Commands log through the package-level helpers; output format follows the
// environment: human-readable text in development, JSON in production so the
// lines stay machine-parseable:
//
//	logger.Info("car created", "id", id, "make", in.Make)
//	// → time=... level=INFO msg="car created" id=12 make=Toyota
//
// Diagnostic output goes to stderr so it never interleaves with the tables
// and spreadsheets the commands write to stdout.
package logger

import (
	"log/slog"
	"os"

	"github.com/carstock/carstock/config"
)

var L *slog.Logger

func init() {
	var level slog.Level
	var handler slog.Handler

	opts := &slog.HandlerOptions{Level: level}

	switch config.AppEnv() {
	case "production", "prod":
		level = slog.LevelInfo
		opts.Level = level
		handler = slog.NewJSONHandler(os.Stderr, opts) // structured JSON for log aggregators
	default:
		level = slog.LevelDebug
		opts.Level = level
		handler = slog.NewTextHandler(os.Stderr, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
