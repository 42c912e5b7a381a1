// Package logger provides JSON structured logging using zerolog.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var baseLogger zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	baseLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configures the global logger level. Unknown level strings are an
// error so typos in config do not silently drop logs.
func Init(level string) error {
	lvl := zerolog.InfoLevel

	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(level)
		if err != nil {
			return err
		}
	}

	baseLogger = baseLogger.Level(lvl)
	log.Logger = baseLogger
	return nil
}

// Base returns the untagged global logger, for callers that attach their
// own context.
func Base() zerolog.Logger {
	return baseLogger
}

// Component returns a logger tagged with the originating component name.
func Component(name string) zerolog.Logger {
	return baseLogger.With().Str("component", name).Logger()
}
