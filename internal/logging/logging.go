package logging

// Package logging configures the zerolog logger shared by the application.

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Environment variable read for the log level
const LevelEnv = "ORBVIEW_LOG"

// Console time format
const timeFormat = "15:04:05"

// New creates the application logger writing human-readable output to
// stderr. The level comes from the ORBVIEW_LOG environment variable and
// defaults to info when unset or unrecognized.
func New() zerolog.Logger {
	level := zerolog.InfoLevel
	if env := os.Getenv(LevelEnv); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// WithComponent returns a child logger tagged with a component name
func WithComponent(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// init keeps duration fields readable in console output
func init() {
	zerolog.DurationFieldUnit = time.Millisecond
}
