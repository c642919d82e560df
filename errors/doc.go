// Package errors provides the error taxonomy of the matrix I/O layer.
//
// Every failure is an Error: an immutable value with a human-readable message
// and a stable numeric Code. Format readers and writers construct the kind
// matching the condition they detect and return it; this package never
// recovers from, retries or rewrites a failure. It maintains full
// compatibility with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// # Code Space
//
// Codes start at 128, above the conventional 0-127 process exit statuses,
// so a command can exit with the code of the error that stopped it:
//
//	os.Exit(errors.ExitStatus(err))
//
// The space is append-only. New kinds get new codes at the end; a released
// code is never renumbered. Two codes (CodeUnknownDimension, CodeNoFileFormat)
// are reserved and have no constructor.
//
// Codes belong to one of two branches:
//
//   - Generic: internal invariant violations (Unexpected) and failed lookups
//     of an explicitly named format (UnknownNamedFileFormat)
//   - I/O: failures tied to a file or channel operation
//
// # Channel Attachment
//
// Each I/O kind has two constructors. The detached one builds the error from
// its parameters. The attached one, suffixed On, additionally marks a Channel
// failed before returning:
//
//	// Detached
//	err := errors.BadHeader()
//
//	// Attached: r.Failed() is now true
//	err := errors.BadHeaderOn(r)
//
// The message is byte-identical between both forms, so message formatting
// can be tested without any channel. Code that only inspects channel state
// still observes the failure. Callers must not attach the same channel from
// several goroutines at once.
//
// # Codec Errors
//
// Errors from the container codec library are wrapped with Codec. The
// message is the codec's message unchanged and the codec error remains
// reachable through Unwrap:
//
//	if err := dec.Decode(&doc); err != nil {
//	    return errors.CodecOn(r, err)
//	}
//
// # Inspecting Errors
//
//	switch errors.GetCode(err) {
//	case errors.CodeUnknownFileSuffix:
//	    // try content sniffing
//	case errors.CodeNoIO:
//	    // no handler registered
//	}
//
// Dispatch on codes, not on message text: UnknownFileFormat and
// UnknownNamedFileFormat have similar wording but distinct codes.
package errors
