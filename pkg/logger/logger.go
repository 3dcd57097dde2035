package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "marketplace-wallet"

// New creates a configured zerolog.Logger.
// level: debug, info, warn, error. pretty: human-readable console output.
func New(level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout

	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Caller().
		Logger()
}

// NewWithWriter creates a logger writing to a custom writer (useful for testing).
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Component derives a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
