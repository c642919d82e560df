package errors

import (
	stderrors "errors"
)

// ExitStatusFailure is the exit status for errors that carry no code.
const ExitStatusFailure = 1

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var mathErr errors.Error
//	if errors.As(err, &mathErr) {
//	    code := mathErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the Code from an error.
// Returns CodeNone if the error is nil or has no Error in its chain.
//
// The code of the outermost Error in the chain wins.
func GetCode(err error) Code {
	if err == nil {
		return CodeNone
	}

	var mathErr Error
	if stderrors.As(err, &mathErr) {
		return mathErr.Code()
	}

	return CodeNone
}

// HasCode reports whether the outermost Error in err's chain has the given code.
//
// Example:
//
//	if errors.HasCode(err, errors.CodeUnknownFileSuffix) {
//	    // fall back to content sniffing
//	}
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// IsIO reports whether the outermost Error in err's chain belongs to the I/O branch.
func IsIO(err error) bool {
	code := GetCode(err)
	return code != CodeNone && code.Branch() == BranchIO
}

// ExitStatus maps an error to a process exit status.
// Returns 0 for nil, the numeric code for an Error in the chain, and
// ExitStatusFailure otherwise.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if code := GetCode(err); code != CodeNone {
		return int(code)
	}
	return ExitStatusFailure
}
