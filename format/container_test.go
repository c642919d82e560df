package format

import (
	"bytes"
	"testing"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/DanielMiklody/openmeeg/stream"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/mat"
)

func encodeDocument(t *testing.T, doc interface{}) []byte {
	t.Helper()
	data, err := msgpack.Marshal(doc)
	require.NoError(t, err)
	return data
}

func TestContainer_Read(t *testing.T) {
	data := encodeDocument(t, map[string]interface{}{
		"matrix": map[string]interface{}{
			"storage": "full",
			"rows":    2,
			"cols":    1,
			"data":    []float64{7, 8},
		},
	})
	r := stream.NewReader(bytes.NewReader(data))

	m, err := Container{}.Read(r, "v.mpk")
	require.NoError(t, err)
	require.True(t, mat.Equal(mat.NewDense(2, 1, []float64{7, 8}), m))

	v, err := AsVector(m)
	require.NoError(t, err)
	require.Equal(t, 8.0, v.AtVec(1))
}

func TestContainer_ReadErrors(t *testing.T) {
	object := func(storage string, rows, cols int, data []float64) map[string]interface{} {
		return map[string]interface{}{
			"matrix": map[string]interface{}{"storage": storage, "rows": rows, "cols": cols, "data": data},
		}
	}

	tests := []struct {
		name    string
		input   []byte
		code    errors.Code
		message string
	}{
		{
			name:    "missing object",
			input:   encodeDocument(t, map[string]interface{}{"mesh": map[string]interface{}{}}),
			code:    errors.CodeBadContent,
			message: "This container file does not contain a matrix as expected.",
		},
		{
			name:    "bad storage",
			input:   encodeDocument(t, object("banded", 2, 2, []float64{1, 2, 3, 4})),
			code:    errors.CodeBadStorageType,
			message: "Bad storage type in file head.mpk.",
		},
		{
			name:    "rectangular symmetric",
			input:   encodeDocument(t, object("symmetric", 3, 5, nil)),
			code:    errors.CodeBadSymmMatrix,
			message: "Symmetric matrix is expected to be square (got an 3x5 matrix instead).",
		},
		{
			name:    "length mismatch",
			input:   encodeDocument(t, object("full", 2, 2, []float64{1})),
			code:    errors.CodeBadData,
			message: "Bad container file data.",
		},
		{
			name:    "negative shape",
			input:   encodeDocument(t, object("full", -1, 2, nil)),
			code:    errors.CodeBadData,
			message: "Bad container file data.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := stream.NewReader(bytes.NewReader(tt.input))

			_, err := Container{}.Read(r, "head.mpk")

			var mathErr errors.Error
			require.True(t, errors.As(err, &mathErr))
			require.Equal(t, tt.code, mathErr.Code())
			require.Equal(t, tt.message, mathErr.Message())
			require.True(t, r.Failed())
		})
	}
}

func TestContainer_ReadCodecError(t *testing.T) {
	inputs := map[string][]byte{
		"array document": encodeDocument(t, []int{1, 2}),
		"truncated":      {0x81, 0xa6, 'm', 'a'},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			r := stream.NewReader(bytes.NewReader(input))

			_, err := Container{}.Read(r, "head.mpk")
			require.Equal(t, errors.CodeCodec, errors.GetCode(err))
			require.True(t, r.Failed())

			var mathErr errors.Error
			require.True(t, errors.As(err, &mathErr))
			require.NotNil(t, mathErr.Unwrap())
			require.Equal(t, mathErr.Unwrap().Error(), mathErr.Message())
		})
	}
}

func TestContainer_WriteSymmetric(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriter(&buf)

	require.NoError(t, Container{}.Write(w, mat.NewSymDense(2, []float64{1, 2, 2, 3})))
	require.NoError(t, w.Flush())

	var doc map[string]*matrixObject
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, &matrixObject{Storage: "symmetric", Rows: 2, Cols: 2, Data: []float64{1, 2, 3}}, doc["matrix"])
}

func TestContainer_WriteFailedStream(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriter(&buf)
	w.SetFailed()

	err := Container{}.Write(w, mat.NewDense(1, 1, []float64{1}))
	require.Equal(t, errors.CodeCodec, errors.GetCode(err))
}

func TestContainer_Identify(t *testing.T) {
	require.True(t, Container{}.Identify([]byte{0x80}))
	require.True(t, Container{}.Identify([]byte{0xde, 0x00, 0x10}))
	require.False(t, Container{}.Identify([]byte{0x91}))
	require.False(t, Container{}.Identify(nil))
}
