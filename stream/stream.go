// Package stream provides readers and writers with a sticky failure flag.
//
// A Reader or Writer satisfies errors.Channel: once marked failed, every
// further operation returns ErrFailed. Format readers pass them to the
// attached error constructors so callers that only check Failed() still
// observe a failure.
package stream

import (
	"bufio"
	stderrors "errors"
	"io"
)

// ErrFailed is returned by operations on a stream that has been marked failed.
var ErrFailed = stderrors.New("stream: operation on failed stream")

// Reader is a buffered reader with a failure flag.
// A Reader is not safe for concurrent use.
type Reader struct {
	br     *bufio.Reader
	failed bool
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// SetFailed marks the reader failed.
func (r *Reader) SetFailed() {
	r.failed = true
}

// Failed reports whether the reader has been marked failed.
func (r *Reader) Failed() bool {
	return r.failed
}

// Read implements io.Reader. Errors other than io.EOF mark the reader failed.
func (r *Reader) Read(p []byte) (int, error) {
	if r.failed {
		return 0, ErrFailed
	}
	n, err := r.br.Read(p)
	r.check(err)
	return n, err
}

// Peek returns the next n bytes without advancing the reader.
// Fewer than n bytes are returned with io.EOF when the input is shorter;
// this does not mark the reader failed.
func (r *Reader) Peek(n int) ([]byte, error) {
	if r.failed {
		return nil, ErrFailed
	}
	b, err := r.br.Peek(n)
	r.check(err)
	return b, err
}

// ReadFull reads exactly len(p) bytes.
// A short read marks the reader failed and returns io.ErrUnexpectedEOF, or io.EOF
// when nothing was read.
func (r *Reader) ReadFull(p []byte) error {
	if r.failed {
		return ErrFailed
	}
	_, err := io.ReadFull(r.br, p)
	if err != nil {
		r.failed = true
	}
	return err
}

func (r *Reader) check(err error) {
	if err != nil && err != io.EOF {
		r.failed = true
	}
}

// Writer is a buffered writer with a failure flag.
// A Writer is not safe for concurrent use.
type Writer struct {
	bw     *bufio.Writer
	failed bool
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// SetFailed marks the writer failed.
func (w *Writer) SetFailed() {
	w.failed = true
}

// Failed reports whether the writer has been marked failed.
func (w *Writer) Failed() bool {
	return w.failed
}

// Write implements io.Writer. Any error marks the writer failed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.failed {
		return 0, ErrFailed
	}
	n, err := w.bw.Write(p)
	if err != nil {
		w.failed = true
	}
	return n, err
}

// WriteString writes s.
func (w *Writer) WriteString(s string) (int, error) {
	if w.failed {
		return 0, ErrFailed
	}
	n, err := w.bw.WriteString(s)
	if err != nil {
		w.failed = true
	}
	return n, err
}

// Flush writes buffered data to the underlying writer.
// Nothing is flushed once the writer has failed.
func (w *Writer) Flush() error {
	if w.failed {
		return ErrFailed
	}
	if err := w.bw.Flush(); err != nil {
		w.failed = true
		return err
	}
	return nil
}
