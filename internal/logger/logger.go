package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// log is silent until a writer is configured, so that importing the library
// never writes anything.
var log = zerolog.Nop()

// Log returns the shared logger.
func Log() *zerolog.Logger {
	return &log
}

// SetLogger replaces the shared logger.
func SetLogger(logger zerolog.Logger) {
	log = logger
}

// SetWriter logs JSON lines at the level and above to w.
func SetWriter(w io.Writer, level zerolog.Level) {
	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetConsoleWriter logs human readable lines at the level and above to w.
func SetConsoleWriter(w io.Writer, level zerolog.Level) {
	log = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = true
		cw.TimeFormat = "15:04:05.000"
	})).Level(level).With().Timestamp().Logger()
}
