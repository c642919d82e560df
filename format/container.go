package format

import (
	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/DanielMiklody/openmeeg/stream"
	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/mat"
)

const (
	containerName   = "container"
	containerObject = "matrix"

	storageFull      = "full"
	storageSymmetric = "symmetric"
)

// matrixObject is the encoded form of a matrix inside a container document.
type matrixObject struct {
	Storage string    `msgpack:"storage"`
	Rows    int       `msgpack:"rows"`
	Cols    int       `msgpack:"cols"`
	Data    []float64 `msgpack:"data"`
}

// Container is the MessagePack container format. A document is a map from
// object names to objects; matrices live under the "matrix" key.
//
// Errors reported by the MessagePack codec are passed through unchanged as
// CodeCodec errors.
type Container struct{}

// Name implements Format.
func (Container) Name() string { return containerName }

// Suffixes implements Format.
func (Container) Suffixes() []string { return []string{"mpk", "msgpack"} }

// Identify implements Format. Documents start with a MessagePack map.
func (Container) Identify(header []byte) bool {
	if len(header) == 0 {
		return false
	}
	b := header[0]
	return (b >= 0x80 && b <= 0x8f) || b == 0xde || b == 0xdf
}

// Read implements Reader.
func (Container) Read(r *stream.Reader, name string) (*mat.Dense, error) {
	var doc map[string]*matrixObject
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.CodecOn(r, err)
	}

	obj, ok := doc[containerObject]
	if !ok || obj == nil {
		return nil, errors.BadContentOn(r, containerName, containerObject)
	}
	if obj.Rows <= 0 || obj.Cols <= 0 || obj.Rows > maxElements || obj.Cols > maxElements {
		return nil, errors.BadDataOn(r, containerName)
	}

	switch obj.Storage {
	case storageFull:
		if len(obj.Data) != obj.Rows*obj.Cols {
			return nil, errors.BadDataOn(r, containerName)
		}
		return mat.NewDense(obj.Rows, obj.Cols, obj.Data), nil
	case storageSymmetric:
		if obj.Rows != obj.Cols {
			return nil, errors.BadSymmMatrixOn(r, obj.Rows, obj.Cols)
		}
		if len(obj.Data) != obj.Rows*(obj.Rows+1)/2 {
			return nil, errors.BadDataOn(r, containerName)
		}
		return unpack(obj.Data, obj.Rows), nil
	default:
		return nil, errors.BadStorageTypeOn(r, name)
	}
}

// Write implements Writer. Symmetric matrices are written with symmetric storage.
func (Container) Write(w *stream.Writer, m mat.Matrix) error {
	rows, cols := m.Dims()
	obj := &matrixObject{Storage: storageFull, Rows: rows, Cols: cols}

	if s, ok := m.(*mat.SymDense); ok {
		obj.Storage = storageSymmetric
		obj.Data = upper(s, rows)
	} else {
		obj.Data = make([]float64, 0, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				obj.Data = append(obj.Data, m.At(i, j))
			}
		}
	}

	if err := msgpack.NewEncoder(w).Encode(map[string]*matrixObject{containerObject: obj}); err != nil {
		return errors.CodecOn(w, err)
	}
	return nil
}
