// Package format reads and writes matrices in the supported file formats.
//
// A Registry maps format names and file suffixes to formats. Resolution
// failures are reported with the kinds of the errors package:
//
//   - a path without extension: CodeNoSuffix
//   - an extension no format claims: CodeUnknownFileSuffix
//   - an explicit format name that is not registered: CodeUnknownNamedFileFormat
//   - a format that cannot read (or write) files: CodeNoIO
//   - content that no format recognizes: CodeUnknownFileFormat
//   - content that several formats recognize: CodeImpossibleObjectIdentification
//
// Three formats are registered by Default:
//
//   - text (.txt): whitespace-separated rows, '#' starts a comment line
//   - binary (.bin): "OMBN" magic, storage byte, uint32 rows and columns, little-endian float64 data
//   - container (.mpk, .msgpack): a MessagePack map holding a "matrix" object
//
// Format readers and writers run on stream.Reader and stream.Writer values and
// construct attached errors, so a failed read or write leaves its stream
// marked failed.
package format
