// Package logging builds the loggers used by the command-line tools.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog with pretty console output
func SetupLogger(w io.Writer, debug bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// SetupStructuredLogger configures zerolog for structured (JSON) output
func SetupStructuredLogger(w io.Writer, debug bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(w).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// NewCLILogger returns a charmbracelet logger writing to w at the named
// level ("debug", "info", "warn" or "error"). debug forces debug level.
func NewCLILogger(w io.Writer, name string, debug bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", name, err)
	}
	if debug {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: debug,
		Prefix:          "holdem-odds",
	}), nil
}
