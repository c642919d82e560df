// Package logger wraps zerolog for the mathio command.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the logger to write human-readable output to w at the given level.
func Init(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	log = zerolog.New(output).Level(lvl).With().Timestamp().Logger()
	return nil
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info logs an info message
func Info() *zerolog.Event {
	return log.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return log.Warn()
}

// ErrorWithCode logs err with its numeric code and symbolic name.
// Errors outside the taxonomy are logged with code 0.
func ErrorWithCode(err error) *zerolog.Event {
	code := errors.GetCode(err)
	event := log.Error().
		Int("error_code", int(code)).
		Str("error_name", code.String())

	var mathErr errors.Error
	if errors.As(err, &mathErr) {
		event = event.Str("error_message", mathErr.Message())
	}
	return event.AnErr("error", err)
}
