package errors

// Error is the capability shared by every failure kind.
//
// An Error is immutable: its message is fully formed when the constructor
// returns and its code never changes. It is compatible with the standard
// library error helpers (errors.Is, errors.As, errors.Unwrap).
type Error interface {
	error

	// Code returns the stable numeric code identifying the kind of failure.
	Code() Code

	// Message returns the human-readable description of the failure.
	Message() string

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Only codec failures wrap another error; all other kinds return nil.
	Unwrap() error
}

// Channel is an I/O resource with a settable failure flag.
// Attached constructors call SetFailed exactly once before returning.
// A nil Channel leaves the error detached. A Channel holding a typed nil
// pointer, such as a nil *stream.Reader, is not nil and panics in SetFailed.
type Channel interface {
	SetFailed()
}

// ChannelFunc adapts a callback to the Channel interface.
type ChannelFunc func()

// SetFailed calls f.
func (f ChannelFunc) SetFailed() {
	f()
}

// Mode tells whether a file was being read or written.
type Mode int

const (
	// Read is the reading mode.
	Read Mode = iota

	// Write is the writing mode.
	Write
)

// String returns "reading" or "writing".
func (m Mode) String() string {
	if m == Write {
		return "writing"
	}
	return "reading"
}

// Handler returns the name of the component serving the mode: "reader" or "writer".
func (m Mode) Handler() string {
	if m == Write {
		return "writer"
	}
	return "reader"
}
