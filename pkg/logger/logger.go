// Package logger owns the process-wide zerolog instance. Init wires it once
// from configuration; everything else reaches it through Get.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the output shape of the shared logger.
type Options struct {
	// Level names the minimum level to emit: trace, debug, info, warn or
	// error. Anything else falls back to info.
	Level string
	// Pretty switches to the coloured console writer. Leave false for the
	// JSON stream.
	Pretty bool
	// Output receives the log stream, os.Stdout when nil.
	Output io.Writer
}

var (
	mu       sync.Once
	shared   zerolog.Logger
	haveInit bool
)

// Init builds the shared logger. The first call wins; later calls return the
// logger built by the first.
func Init(opts Options) zerolog.Logger {
	mu.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		shared = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
		haveInit = true
	})
	return shared
}

// Get returns the shared logger and panics when Init has not run, which is
// always a wiring bug in the caller.
func Get() zerolog.Logger {
	if !haveInit {
		panic("logger: Get called before Init")
	}
	return shared
}

// Reset discards the shared logger so the next Init rebuilds it. Test use
// only.
func Reset() {
	mu = sync.Once{}
	shared = zerolog.Logger{}
	haveInit = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
