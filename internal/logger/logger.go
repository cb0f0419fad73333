package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Setup initializes the global zerolog level and returns the panel logger
// writing to stdout.
//   - level: trace, debug, info, warn, error (unknown → info)
//   - format: "json", "pretty", or "auto" (pretty on a terminal, JSON otherwise)
func Setup(level, format string) zerolog.Logger {
	if format == "auto" {
		format = "json"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "pretty"
		}
	}
	return New(os.Stdout, level, format)
}

// New builds the logger on an arbitrary writer. Call sites are only
// recorded at debug level and below.
func New(out io.Writer, level, format string) zerolog.Logger {
	writer := out
	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	ctx := zerolog.New(writer).With().
		Timestamp().
		Str("service", "garajhub-admin")
	if lvl <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}
