package errors

import "strconv"

// Code identifies a kind of failure.
// Codes start above the conventional 0-127 exit statuses so they can double as a
// process exit status. Values are append-only: a released code is never renumbered
// or reused.
type Code int

// CodeNone is returned by GetCode when no Error is present in an error chain.
// It is not part of the code space.
const CodeNone Code = 0

const (
	// Generic failures.

	// CodeUnexpected indicates an internal invariant violation.
	CodeUnexpected Code = 128

	// I/O failures.

	// CodeIO indicates an I/O failure without a more specific kind.
	CodeIO Code = 129

	// CodeBadFile indicates the input cannot be read as the claimed format.
	CodeBadFile Code = 130

	// CodeBadFileOpening indicates a file could not be opened.
	CodeBadFileOpening Code = 131

	// CodeBadContent indicates a required object is missing from a file.
	CodeBadContent Code = 132

	// CodeNoSuffix indicates a file name has no extension.
	CodeNoSuffix Code = 133

	// CodeBadHeader indicates a malformed file header.
	CodeBadHeader Code = 134

	// CodeBadData indicates the payload fails a structural check.
	CodeBadData Code = 135

	// CodeBadVector indicates a matrix was found where a vector was expected.
	CodeBadVector Code = 136

	// CodeUnknownDimension is reserved. No constructor produces it.
	CodeUnknownDimension Code = 137

	// CodeBadSymmMatrix indicates a rectangular matrix where a symmetric one was expected.
	CodeBadSymmMatrix Code = 138

	// CodeBadStorageType indicates an invalid storage-type tag.
	CodeBadStorageType Code = 139

	// CodeNoIO indicates no reader or writer is registered for a file.
	CodeNoIO Code = 140

	// CodeCodec indicates a failure reported by the container codec library.
	CodeCodec Code = 141

	// CodeUnknownFileFormat indicates content negotiation found no matching format.
	CodeUnknownFileFormat Code = 142

	// CodeUnknownFileSuffix indicates the dispatch registry does not know a suffix.
	CodeUnknownFileSuffix Code = 143

	// CodeNoFileFormat is reserved. No constructor produces it.
	CodeNoFileFormat Code = 144

	// CodeUnknownNamedFileFormat indicates an explicitly named format could not be found.
	// It belongs to the generic branch.
	CodeUnknownNamedFileFormat Code = 145

	// CodeImpossibleObjectIdentification indicates content sniffing was inconclusive.
	CodeImpossibleObjectIdentification Code = 146
)

// Branch partitions the code space into generic and I/O failures.
type Branch int

const (
	// BranchGeneric covers internal failures unrelated to a channel.
	BranchGeneric Branch = iota

	// BranchIO covers failures tied to a file or channel operation.
	BranchIO
)

// String returns the branch name.
func (b Branch) String() string {
	if b == BranchIO {
		return "io"
	}
	return "generic"
}

type codeInfo struct {
	name   string
	branch Branch
}

// registry holds every code of the space. New kinds are appended here and in
// the constant block above; existing entries never change.
var registry = map[Code]codeInfo{
	CodeUnexpected:                     {"UNEXPECTED", BranchGeneric},
	CodeIO:                             {"IO_ERROR", BranchIO},
	CodeBadFile:                        {"BAD_FILE", BranchIO},
	CodeBadFileOpening:                 {"BAD_FILE_OPENING", BranchIO},
	CodeBadContent:                     {"BAD_CONTENT", BranchIO},
	CodeNoSuffix:                       {"NO_SUFFIX", BranchIO},
	CodeBadHeader:                      {"BAD_HEADER", BranchIO},
	CodeBadData:                        {"BAD_DATA", BranchIO},
	CodeBadVector:                      {"BAD_VECTOR", BranchIO},
	CodeUnknownDimension:               {"UNKNOWN_DIMENSION", BranchIO},
	CodeBadSymmMatrix:                  {"BAD_SYMM_MATRIX", BranchIO},
	CodeBadStorageType:                 {"BAD_STORAGE_TYPE", BranchIO},
	CodeNoIO:                           {"NO_IO", BranchIO},
	CodeCodec:                          {"CODEC_ERROR", BranchIO},
	CodeUnknownFileFormat:              {"UNKNOWN_FILE_FORMAT", BranchIO},
	CodeUnknownFileSuffix:              {"UNKNOWN_FILE_SUFFIX", BranchIO},
	CodeNoFileFormat:                   {"NO_FILE_FORMAT", BranchIO},
	CodeUnknownNamedFileFormat:         {"UNKNOWN_NAMED_FILE_FORMAT", BranchGeneric},
	CodeImpossibleObjectIdentification: {"IMPOSSIBLE_OBJECT_IDENTIFICATION", BranchIO},
}

const (
	firstCode = CodeUnexpected
	lastCode  = CodeImpossibleObjectIdentification
)

// String returns the symbolic name of the code, e.g. "BAD_FILE".
// Codes outside the space render as "CODE(n)".
func (c Code) String() string {
	if info, ok := registry[c]; ok {
		return info.name
	}
	return "CODE(" + strconv.Itoa(int(c)) + ")"
}

// Branch returns the branch the code belongs to.
// Codes outside the space are reported as generic.
func (c Code) Branch() Branch {
	return registry[c].branch
}

// Valid reports whether c belongs to the code space.
func (c Code) Valid() bool {
	_, ok := registry[c]
	return ok
}

// Codes returns every code of the space in ascending order, reserved codes included.
func Codes() []Code {
	codes := make([]Code, 0, len(registry))
	for c := firstCode; c <= lastCode; c++ {
		if _, ok := registry[c]; ok {
			codes = append(codes, c)
		}
	}
	return codes
}
