// Package logging provides the shared console logger for peektab.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return logger
}

// SetVerbose lowers the global level to Debug so per-file diagnostics
// (detected formats, sniffed delimiters, row counts) show up on stderr.
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
