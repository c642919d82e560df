package errors_test

import (
	"fmt"

	"github.com/DanielMiklody/openmeeg/errors"
)

type stream struct {
	failed bool
}

func (s *stream) SetFailed() { s.failed = true }

func ExampleBadVector() {
	err := errors.BadVector(7)
	fmt.Println(err.Message())
	fmt.Println(int(err.Code()))
	// Output:
	// Bad file (expected a vector, got a matrix with 7 columns).
	// 136
}

func ExampleBadHeaderOn() {
	s := &stream{}
	err := errors.BadHeaderOn(s)
	fmt.Println(err)
	fmt.Println("failed:", s.failed)
	// Output:
	// [BAD_HEADER] Bad file header.
	// failed: true
}

func ExampleNoIO() {
	err := errors.NoIO("model.mat", errors.Read)
	fmt.Println(err.Message())
	// Output: Unable to find reader for file model.mat.
}

func ExampleCodec() {
	err := errors.Codec(fmt.Errorf("msgpack: invalid code=c1 decoding map length"))
	fmt.Println(err.Message())
	// Output: msgpack: invalid code=c1 decoding map length
}

func ExampleExitStatus() {
	err := fmt.Errorf("inspect: %w", errors.UnknownFileSuffix("xyz"))
	fmt.Println(errors.ExitStatus(err))
	fmt.Println(errors.ExitStatus(nil))
	// Output:
	// 143
	// 0
}

func ExampleGetCode() {
	err := errors.UnknownNamedFileFormat("model.mat")

	switch errors.GetCode(err) {
	case errors.CodeUnknownFileFormat:
		fmt.Println("negotiation failed")
	case errors.CodeUnknownNamedFileFormat:
		fmt.Println("named lookup failed")
	}
	// Output: named lookup failed
}
