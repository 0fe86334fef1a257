package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide logger: JSON to stdout by default,
// a console writer when APP_ENV is dev/development. Both binaries assign
// the result to the global log.Logger at startup.
func NewLogger(env string) zerolog.Logger {
	switch env {
	case "dev", "development":
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	default:
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
