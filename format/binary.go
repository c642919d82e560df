package format

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/DanielMiklody/openmeeg/stream"
	"gonum.org/v1/gonum/mat"
)

const (
	binaryName  = "binary"
	binaryMagic = "OMBN"

	// magic, storage byte, rows, cols
	binaryHeaderLen = 4 + 1 + 4 + 4

	// maxElements bounds the payload announced by a header.
	maxElements = 1 << 28

	// binaryChunk is the number of values decoded per read. The payload
	// buffer grows with the bytes actually present, not with the header.
	binaryChunk = 1 << 12
)

// Storage identifies how matrix values are laid out in a file.
type Storage uint8

const (
	// StorageFull stores every value, row by row.
	StorageFull Storage = 0

	// StorageSymmetric stores the upper triangle of a square matrix, row by row.
	StorageSymmetric Storage = 1
)

// Binary is the raw binary format.
//
// Layout: the "OMBN" magic, one storage byte, rows and columns as
// little-endian uint32, then little-endian float64 values.
type Binary struct{}

// Name implements Format.
func (Binary) Name() string { return binaryName }

// Suffixes implements Format.
func (Binary) Suffixes() []string { return []string{"bin"} }

// Identify implements Format.
func (Binary) Identify(header []byte) bool {
	return bytes.HasPrefix(header, []byte(binaryMagic))
}

// Read implements Reader.
func (Binary) Read(r *stream.Reader, name string) (*mat.Dense, error) {
	header := make([]byte, binaryHeaderLen)
	if err := r.ReadFull(header); err != nil {
		return nil, errors.BadFileOn(r, binaryName)
	}
	if string(header[:4]) != binaryMagic {
		return nil, errors.BadHeaderOn(r)
	}

	storage := Storage(header[4])
	rows := int(binary.LittleEndian.Uint32(header[5:9]))
	cols := int(binary.LittleEndian.Uint32(header[9:13]))
	if rows == 0 || cols == 0 || rows > maxElements || cols > maxElements {
		return nil, errors.BadDataOn(r, binaryName)
	}

	var count int
	switch storage {
	case StorageFull:
		count = rows * cols
	case StorageSymmetric:
		if rows != cols {
			return nil, errors.BadSymmMatrixOn(r, rows, cols)
		}
		count = rows * (rows + 1) / 2
	default:
		return nil, errors.BadStorageTypeOn(r, name)
	}
	if count > maxElements {
		return nil, errors.BadDataOn(r, binaryName)
	}

	data := make([]float64, 0, min(count, binaryChunk))
	chunk := make([]byte, 8*min(count, binaryChunk))
	for len(data) < count {
		n := min(count-len(data), binaryChunk)
		if err := r.ReadFull(chunk[:8*n]); err != nil {
			return nil, errors.BadDataOn(r, binaryName)
		}
		for i := 0; i < n; i++ {
			data = append(data, math.Float64frombits(binary.LittleEndian.Uint64(chunk[8*i:])))
		}
	}

	if storage == StorageSymmetric {
		return unpack(data, rows), nil
	}
	return mat.NewDense(rows, cols, data), nil
}

// Write implements Writer. Symmetric matrices are written with symmetric storage.
func (Binary) Write(w *stream.Writer, m mat.Matrix) error {
	rows, cols := m.Dims()

	storage := StorageFull
	var data []float64
	if s, ok := m.(*mat.SymDense); ok {
		storage = StorageSymmetric
		data = upper(s, rows)
	} else {
		data = make([]float64, 0, rows*cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				data = append(data, m.At(i, j))
			}
		}
	}

	buf := make([]byte, binaryHeaderLen, binaryHeaderLen+8*len(data))
	copy(buf, binaryMagic)
	buf[4] = byte(storage)
	binary.LittleEndian.PutUint32(buf[5:9], uint32(rows))
	binary.LittleEndian.PutUint32(buf[9:13], uint32(cols))
	for _, v := range data {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	if _, err := w.Write(buf); err != nil {
		return errors.IOOn(w, "Unable to write binary data: "+err.Error())
	}
	return nil
}
