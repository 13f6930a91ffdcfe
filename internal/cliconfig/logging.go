package cliconfig

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(s)
}

// Logger builds the process logger writing to w. The configuration must
// already be validated.
func Logger(cfg Config, w io.Writer) zerolog.Logger {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}

	out := w
	if cfg.LogFormat != LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
