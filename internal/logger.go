package internal

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the shared application logger. Commands call SetVerbose before
// doing any work; everything else logs through this value.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().
	Timestamp().
	Logger()

// SetVerbose enables debug-level logging.
func SetVerbose(verbose bool) {
	if verbose {
		Log = Log.Level(zerolog.DebugLevel)
	} else {
		Log = Log.Level(zerolog.InfoLevel)
	}
}
