package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

// Each I/O kind has a detached constructor and an attached one with the On suffix.
// Both build the same message; the attached form also marks the channel failed.
// A nil channel makes the attached form behave like the detached one.

// Unexpected reports an internal invariant violation at the given source location.
//
// Example:
//
//	err := errors.Unexpected("Matrix.Resize", "matrix.go", 42)
//	// Unexpected error in Matrix.Resize at matrix.go:42.
func Unexpected(function, file string, line int) Error {
	return newError(CodeUnexpected, fmt.Sprintf("Unexpected error in %s at %s:%d.", function, file, line))
}

// Unreachable reports an internal invariant violation at the caller's location.
func Unreachable() Error {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return Unexpected("unknown", "unknown", 0)
	}
	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return Unexpected(function, filepath.Base(file), line)
}

// UnknownNamedFileFormat reports that the format named for a file could not be found.
// It belongs to the generic branch and has no attached form.
func UnknownNamedFileFormat(name string) Error {
	return newError(CodeUnknownNamedFileFormat, "Unknown format for file "+name+".")
}

// IO reports an I/O failure with a free-form message.
func IO(message string) Error {
	return newError(CodeIO, message)
}

// IOOn is IO with channel attachment.
func IOOn(ch Channel, message string) Error {
	return attach(ch, newError(CodeIO, message))
}

// IOf reports an I/O failure with a formatted message.
func IOf(format string, args ...interface{}) Error {
	return newError(CodeIO, fmt.Sprintf(format, args...))
}

// BadFile reports that the input cannot be read as a file of the given format.
func BadFile(format string) Error {
	return newError(CodeBadFile, badFileMessage(format))
}

// BadFileOn is BadFile with channel attachment.
func BadFileOn(ch Channel, format string) Error {
	return attach(ch, newError(CodeBadFile, badFileMessage(format)))
}

func badFileMessage(format string) string {
	return "Unable to read the input as a " + format + " file."
}

// BadFileOpening reports that path could not be opened in the given mode.
//
// Example:
//
//	err := errors.BadFileOpening("/tmp/x.dat", errors.Write)
//	// Unable to open the file /tmp/x.dat for writing
func BadFileOpening(path string, mode Mode) Error {
	return newError(CodeBadFileOpening, badFileOpeningMessage(path, mode))
}

// BadFileOpeningOn is BadFileOpening with channel attachment.
func BadFileOpeningOn(ch Channel, path string, mode Mode) Error {
	return attach(ch, newError(CodeBadFileOpening, badFileOpeningMessage(path, mode)))
}

func badFileOpeningMessage(path string, mode Mode) string {
	return "Unable to open the file " + path + " for " + mode.String()
}

// BadContent reports that a file of the given format lacks an expected object.
func BadContent(format, object string) Error {
	return newError(CodeBadContent, badContentMessage(format, object))
}

// BadContentOn is BadContent with channel attachment.
func BadContentOn(ch Channel, format, object string) Error {
	return attach(ch, newError(CodeBadContent, badContentMessage(format, object)))
}

func badContentMessage(format, object string) string {
	return "This " + format + " file does not contain a " + object + " as expected."
}

// NoSuffix reports a file name without an identifiable extension.
func NoSuffix(name string) Error {
	return newError(CodeNoSuffix, noSuffixMessage(name))
}

// NoSuffixOn is NoSuffix with channel attachment.
func NoSuffixOn(ch Channel, name string) Error {
	return attach(ch, newError(CodeNoSuffix, noSuffixMessage(name)))
}

func noSuffixMessage(name string) string {
	return "No identifiable suffix in name " + name
}

const badHeaderMessage = "Bad file header."

// BadHeader reports a malformed file header.
func BadHeader() Error {
	return newError(CodeBadHeader, badHeaderMessage)
}

// BadHeaderOn is BadHeader with channel attachment.
func BadHeaderOn(ch Channel) Error {
	return attach(ch, newError(CodeBadHeader, badHeaderMessage))
}

// ImpossibleObjectIdentification reports that the content of name matched no single object type.
func ImpossibleObjectIdentification(name string) Error {
	return newError(CodeImpossibleObjectIdentification, impossibleIdentificationMessage(name))
}

// ImpossibleObjectIdentificationOn is ImpossibleObjectIdentification with channel attachment.
func ImpossibleObjectIdentificationOn(ch Channel, name string) Error {
	return attach(ch, newError(CodeImpossibleObjectIdentification, impossibleIdentificationMessage(name)))
}

func impossibleIdentificationMessage(name string) string {
	return "Impossible to identify the object in this file: " + name
}

// BadStorageType reports an invalid storage-type tag in name.
func BadStorageType(name string) Error {
	return newError(CodeBadStorageType, badStorageTypeMessage(name))
}

// BadStorageTypeOn is BadStorageType with channel attachment.
func BadStorageTypeOn(ch Channel, name string) Error {
	return attach(ch, newError(CodeBadStorageType, badStorageTypeMessage(name)))
}

func badStorageTypeMessage(name string) string {
	return "Bad storage type in file " + name + "."
}

// BadData reports a payload that fails the structural checks of the format.
func BadData(format string) Error {
	return newError(CodeBadData, badDataMessage(format))
}

// BadDataOn is BadData with channel attachment.
func BadDataOn(ch Channel, format string) Error {
	return attach(ch, newError(CodeBadData, badDataMessage(format)))
}

func badDataMessage(format string) string {
	return "Bad " + format + " file data."
}

// BadVector reports a matrix with the given number of columns where a vector was expected.
func BadVector(columns int) Error {
	return newError(CodeBadVector, badVectorMessage(columns))
}

// BadVectorOn is BadVector with channel attachment.
func BadVectorOn(ch Channel, columns int) Error {
	return attach(ch, newError(CodeBadVector, badVectorMessage(columns)))
}

func badVectorMessage(columns int) string {
	return "Bad file (expected a vector, got a matrix with " + strconv.Itoa(columns) + " columns)."
}

// BadSymmMatrix reports a rows x cols matrix where a square symmetric one was expected.
func BadSymmMatrix(rows, cols int) Error {
	return newError(CodeBadSymmMatrix, badSymmMatrixMessage(rows, cols))
}

// BadSymmMatrixOn is BadSymmMatrix with channel attachment.
func BadSymmMatrixOn(ch Channel, rows, cols int) Error {
	return attach(ch, newError(CodeBadSymmMatrix, badSymmMatrixMessage(rows, cols)))
}

func badSymmMatrixMessage(rows, cols int) string {
	return fmt.Sprintf("Symmetric matrix is expected to be square (got an %dx%d matrix instead).", rows, cols)
}

// NoIO reports that no reader or writer, depending on mode, handles name.
//
// Example:
//
//	err := errors.NoIO("model.mat", errors.Read)
//	// Unable to find reader for file model.mat.
func NoIO(name string, mode Mode) Error {
	return newError(CodeNoIO, noIOMessage(name, mode))
}

// NoIOOn is NoIO with channel attachment.
func NoIOOn(ch Channel, name string, mode Mode) Error {
	return attach(ch, newError(CodeNoIO, noIOMessage(name, mode)))
}

func noIOMessage(name string, mode Mode) string {
	return "Unable to find " + mode.Handler() + " for file " + name + "."
}

// UnknownFileFormat reports a format token that content negotiation does not recognize.
// An empty format gives the generic "Unknown file format." message.
func UnknownFileFormat(format string) Error {
	return newError(CodeUnknownFileFormat, unknownFileFormatMessage(format))
}

// UnknownFileFormatOn is UnknownFileFormat with channel attachment.
func UnknownFileFormatOn(ch Channel, format string) Error {
	return attach(ch, newError(CodeUnknownFileFormat, unknownFileFormatMessage(format)))
}

func unknownFileFormatMessage(format string) string {
	if format == "" {
		return "Unknown file format."
	}
	return "Unknown " + format + " format."
}

// UnknownFileSuffix reports a suffix the dispatch registry does not know.
func UnknownFileSuffix(suffix string) Error {
	return newError(CodeUnknownFileSuffix, unknownFileSuffixMessage(suffix))
}

// UnknownFileSuffixOn is UnknownFileSuffix with channel attachment.
func UnknownFileSuffixOn(ch Channel, suffix string) Error {
	return attach(ch, newError(CodeUnknownFileSuffix, unknownFileSuffixMessage(suffix)))
}

func unknownFileSuffixMessage(suffix string) string {
	return "Unknown " + suffix + " suffix."
}
