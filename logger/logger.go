package logger

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Log is the package level logger. The library core is a pure function
// and stays quiet; tools and binding adapters log through this.
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// enable pretty printing for interactive terminals and json for production.
func init() {
	// for tty terminal enable pretty logs
	if isatty.IsTerminal(os.Stdout.Fd()) && runtime.GOOS != "windows" {
		Log = Log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		// UNIX time keeps machine-read logs small
		zerolog.TimeFieldFormat = ""
	}
	// by default only log warnings and errors
	SetLogLevel(zerolog.WarnLevel)
}

func SetLogLevel(l zerolog.Level) {
	Log = Log.Level(l)
}

func SetLogOutput(w io.Writer) {
	Log = Log.Output(w)
}

// WithComponent returns a sublogger tagged with a component field.
func WithComponent(name string) zerolog.Logger {
	return Log.With().Str("component", name).Logger()
}
