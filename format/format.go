package format

import (
	"github.com/DanielMiklody/openmeeg/stream"
	"gonum.org/v1/gonum/mat"
)

// sniffLen is the number of bytes peeked for content identification.
const sniffLen = 8

// Format describes a file format known to a Registry.
type Format interface {
	// Name returns the unique format name, e.g. "binary".
	Name() string

	// Suffixes returns the file extensions claimed by the format, without the dot.
	Suffixes() []string

	// Identify reports whether header, the first bytes of a file, belongs to the format.
	// header may be shorter than sniffLen for short files.
	Identify(header []byte) bool
}

// Reader is a Format able to decode matrices.
type Reader interface {
	Format

	// Read decodes a matrix from r. name is the file name used in error messages.
	Read(r *stream.Reader, name string) (*mat.Dense, error)
}

// Writer is a Format able to encode matrices.
type Writer interface {
	Format

	// Write encodes m to w. The caller flushes w.
	Write(w *stream.Writer, m mat.Matrix) error
}
