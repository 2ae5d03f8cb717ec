// Package logging configures the global zerolog logger and the crash log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sends the global logger to w in human readable form
func Setup(w io.Writer, debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// AppendFatal appends err as a single JSON line to the log file at path.
// The line carries the error's full description, including any stack
// attached to it by the caller.
func AppendFatal(path string, err error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, ferr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if ferr != nil {
		return fmt.Errorf("failed to open log file: %w", ferr)
	}
	defer f.Close()

	logger := zerolog.New(f).With().Timestamp().Logger()
	// WithLevel keeps zerolog from exiting the process the way Fatal() would
	logger.WithLevel(zerolog.FatalLevel).Err(err).Msg("game terminated")
	return nil
}
