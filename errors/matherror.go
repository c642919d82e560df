package errors

import "fmt"

// mathError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type mathError struct {
	code    Code
	message string
	cause   error
}

// Error returns the string representation of the error.
// Format: "[NAME] message".
func (e *mathError) Error() string {
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *mathError) Code() Code {
	return e.code
}

// Message returns the error message.
func (e *mathError) Message() string {
	return e.message
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *mathError) Unwrap() error {
	return e.cause
}

func newError(code Code, message string) *mathError {
	return &mathError{code: code, message: message}
}

// attach marks ch failed once the error is fully built.
func attach(ch Channel, e *mathError) Error {
	if ch != nil {
		ch.SetFailed()
	}
	return e
}
