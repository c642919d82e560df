package logger

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_InvalidLevel(t *testing.T) {
	require.Error(t, Init(&bytes.Buffer{}, "verbose"))
}

func TestInit_Level(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "warn"))

	Info().Msg("hidden")
	Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestErrorWithCode(t *testing.T) {
	var buf bytes.Buffer
	log = zerolog.New(&buf)

	ErrorWithCode(fmt.Errorf("inspect: %w", errors.BadVector(4))).Msg("command failed")

	out := buf.String()
	assert.Contains(t, out, `"error_code":136`)
	assert.Contains(t, out, `"error_name":"BAD_VECTOR"`)
	assert.Contains(t, out, `"error_message":"Bad file (expected a vector, got a matrix with 4 columns)."`)
	assert.Contains(t, out, `"message":"command failed"`)
}

func TestErrorWithCode_PlainError(t *testing.T) {
	var buf bytes.Buffer
	log = zerolog.New(&buf)

	ErrorWithCode(fmt.Errorf("boom")).Send()

	assert.Contains(t, buf.String(), `"error_code":0`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.NotContains(t, buf.String(), "error_message")
}
