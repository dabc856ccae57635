package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates the application logger tagged with the app metadata.
func NewLogger(cfg LoggerConfig, app AppConfig) zerolog.Logger {
	return newLogger(os.Stdout, cfg, app)
}

func newLogger(out io.Writer, cfg LoggerConfig, app AppConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	logCtx := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("app", app.Name).
		Str("version", app.Version).
		Str("environment", app.Environment)

	// Caller locations are noisy in production logs.
	if app.Environment != EnvProduction {
		logCtx = logCtx.Caller()
	}

	return logCtx.Logger()
}
