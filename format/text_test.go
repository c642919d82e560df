package format

import (
	"strings"
	"testing"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/DanielMiklody/openmeeg/stream"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestText_Read(t *testing.T) {
	input := `# 2x3 lead field
1 2 3

4.5 -5e2 6
`
	r := stream.NewReader(strings.NewReader(input))

	m, err := Text{}.Read(r, "lead.txt")
	require.NoError(t, err)
	require.True(t, mat.Equal(mat.NewDense(2, 3, []float64{1, 2, 3, 4.5, -500, 6}), m))
	require.False(t, r.Failed())
}

func TestText_ReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    errors.Code
		message string
	}{
		{"empty", "", errors.CodeBadFile, "Unable to read the input as a text file."},
		{"comments only", "# nothing\n\n", errors.CodeBadFile, "Unable to read the input as a text file."},
		{"ragged rows", "1 2\n3\n", errors.CodeBadData, "Bad text file data."},
		{"not a number", "1 two\n", errors.CodeBadData, "Bad text file data."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := stream.NewReader(strings.NewReader(tt.input))

			_, err := Text{}.Read(r, "m.txt")
			require.Equal(t, tt.code, errors.GetCode(err))
			require.Equal(t, tt.message, err.(errors.Error).Message())
			require.True(t, r.Failed())
		})
	}
}

func TestText_Write(t *testing.T) {
	var sb strings.Builder
	w := stream.NewWriter(&sb)

	require.NoError(t, Text{}.Write(w, mat.NewDense(2, 2, []float64{1, 0.5, -2, 1e20})))
	require.NoError(t, w.Flush())
	require.Equal(t, "1 0.5\n-2 1e+20\n", sb.String())
}

func TestText_WriteFailedStream(t *testing.T) {
	var sb strings.Builder
	w := stream.NewWriter(&sb)
	w.SetFailed()

	err := Text{}.Write(w, mat.NewDense(1, 1, []float64{1}))
	require.Equal(t, errors.CodeIO, errors.GetCode(err))
	require.Contains(t, err.Error(), stream.ErrFailed.Error())
}

func TestText_Identify(t *testing.T) {
	require.True(t, Text{}.Identify([]byte("1 2 3")))
	require.True(t, Text{}.Identify([]byte("\n -1")))
	require.True(t, Text{}.Identify([]byte("# c")))
	require.False(t, Text{}.Identify([]byte("   ")))
	require.False(t, Text{}.Identify([]byte("OMBN")))
	require.False(t, Text{}.Identify([]byte{'1', 0x00}))
}

func TestText_IdentifyNonFinite(t *testing.T) {
	for _, header := range []string{"NaN 1 2", "Inf\n", "inf\t0", "Infinity", "infin", " nan"} {
		require.True(t, Text{}.Identify([]byte(header)), header)
	}
	for _, header := range []string{"in", "info 1", "nanny", "Name: x"} {
		require.False(t, Text{}.Identify([]byte(header)), header)
	}
}
