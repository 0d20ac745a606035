package keystone

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/keystone-gg/keystone/types"
)

type WorldOption func(*World)

// WithLogger replaces the world's logger. The default logger is disabled.
func WithLogger(logger zerolog.Logger) WorldOption {
	return func(w *World) {
		w.logger.Logger = &logger
	}
}

// WithPrettyLog routes world events through a console writer on stderr.
func WithPrettyLog() WorldOption {
	return func(w *World) {
		prettyLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		w.logger.Logger = &prettyLogger
	}
}

// WithInitialCapacity sizes the record map for an expected entity count.
func WithInitialCapacity(n int) WorldOption {
	return func(w *World) {
		w.records = make(map[types.EntityID]*record, n)
	}
}
