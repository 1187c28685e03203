package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging points the global logger at stderr. format "console" gives
// human-readable output; anything else is JSON.
func SetupLogging(level string, format string) {
	configureLogger(os.Stderr, level, format)
}

func configureLogger(out io.Writer, level string, format string) {
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(parsed)
}
