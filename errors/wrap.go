package errors

// Codec wraps an error reported by the container codec library.
// The message is the codec's own message, unchanged, and the codec error stays
// reachable through Unwrap so errors.Is and errors.As see the codec's types.
//
// Returns nil if cause is nil.
//
// Example:
//
//	if err := dec.Decode(&doc); err != nil {
//	    return errors.CodecOn(r, err)
//	}
func Codec(cause error) Error {
	if cause == nil {
		return nil
	}
	return &mathError{code: CodeCodec, message: cause.Error(), cause: cause}
}

// CodecOn is Codec with channel attachment. The channel is left untouched when cause is nil.
func CodecOn(ch Channel, cause error) Error {
	if cause == nil {
		return nil
	}
	return attach(ch, &mathError{code: CodeCodec, message: cause.Error(), cause: cause})
}
