package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := BadHeader()
	wrapped := fmt.Errorf("reading lead field: %w", sentinel)

	require.True(t, Is(wrapped, sentinel))
	require.False(t, Is(wrapped, BadHeader()))
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("loading: %w", NoSuffix("model"))

	var mathErr Error
	require.True(t, As(err, &mathErr))
	require.Equal(t, CodeNoSuffix, mathErr.Code())
}

func TestAs_StandardLibraryCompatibility(t *testing.T) {
	err := BadData("text")

	var mathErr Error
	require.True(t, stderrors.As(err, &mathErr))
	require.True(t, As(err, &mathErr))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "math error",
			err:  BadVector(3),
			want: CodeBadVector,
		},
		{
			name: "wrapped math error",
			err:  fmt.Errorf("inspect: %w", UnknownFileSuffix("xyz")),
			want: CodeUnknownFileSuffix,
		},
		{
			name: "codec wrapping math error",
			err:  Codec(BadHeader()),
			want: CodeCodec,
		},
		{
			name: "standard error",
			err:  stderrors.New("standard error"),
			want: CodeNone,
		},
		{
			name: "nil error",
			err:  nil,
			want: CodeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("open: %w", BadFileOpening("a.bin", Read))

	require.True(t, HasCode(err, CodeBadFileOpening))
	require.False(t, HasCode(err, CodeNoIO))
	require.False(t, HasCode(nil, CodeNone))
	require.False(t, HasCode(stderrors.New("plain"), CodeNone))
}

func TestIsIO(t *testing.T) {
	require.True(t, IsIO(BadHeader()))
	require.True(t, IsIO(fmt.Errorf("x: %w", UnknownFileFormat(""))))
	require.False(t, IsIO(UnknownNamedFileFormat("a.mat")))
	require.False(t, IsIO(Unexpected("f", "g.go", 1)))
	require.False(t, IsIO(stderrors.New("plain")))
	require.False(t, IsIO(nil))
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"standard error", stderrors.New("boom"), ExitStatusFailure},
		{"math error", BadSymmMatrix(2, 3), 138},
		{"wrapped math error", fmt.Errorf("convert: %w", NoIO("a.mat", Write)), 140},
		{"generic branch", UnknownNamedFileFormat("a"), 145},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExitStatus(tt.err))
		})
	}
}
