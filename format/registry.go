package format

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/DanielMiklody/openmeeg/stream"
)

// Registry maps format names and suffixes to formats.
// A Registry is not safe for concurrent registration; lookups may run
// concurrently once registration is done.
type Registry struct {
	formats  map[string]Format
	order    []Format
	suffixes map[string]Format
}

// NewRegistry returns a registry holding the given formats.
// It panics if two formats share a name, as Register would fail.
func NewRegistry(formats ...Format) *Registry {
	reg := &Registry{
		formats:  make(map[string]Format),
		suffixes: make(map[string]Format),
	}
	for _, f := range formats {
		if err := reg.Register(f); err != nil {
			panic(err)
		}
	}
	return reg
}

// Default returns a registry with the text, binary and container formats.
func Default() *Registry {
	return NewRegistry(Text{}, Binary{}, Container{})
}

// Register adds f to the registry. Its suffixes replace any previous claim.
func (reg *Registry) Register(f Format) error {
	if _, ok := reg.formats[f.Name()]; ok {
		return fmt.Errorf("format %q already registered", f.Name())
	}
	reg.formats[f.Name()] = f
	reg.order = append(reg.order, f)
	for _, s := range f.Suffixes() {
		reg.suffixes[normalizeSuffix(s)] = f
	}
	return nil
}

// Alias makes suffix resolve to the format called name.
func (reg *Registry) Alias(suffix, name string) error {
	f, err := reg.Lookup(name)
	if err != nil {
		return err
	}
	reg.suffixes[normalizeSuffix(suffix)] = f
	return nil
}

// Suffix returns the format claiming suffix, if any.
func (reg *Registry) Suffix(suffix string) (Format, bool) {
	f, ok := reg.suffixes[normalizeSuffix(suffix)]
	return f, ok
}

// Formats returns the registered formats in registration order.
func (reg *Registry) Formats() []Format {
	out := make([]Format, len(reg.order))
	copy(out, reg.order)
	return out
}

// Lookup returns the format called name.
func (reg *Registry) Lookup(name string) (Format, error) {
	f, ok := reg.formats[name]
	if !ok {
		return nil, errors.UnknownFileFormat(name)
	}
	return f, nil
}

// ForFile returns the format handling path in the given mode, based on its extension.
func (reg *Registry) ForFile(path string, mode errors.Mode) (Format, error) {
	suffix := normalizeSuffix(filepath.Ext(path))
	if suffix == "" {
		return nil, errors.NoSuffix(path)
	}
	f, ok := reg.suffixes[suffix]
	if !ok {
		return nil, errors.UnknownFileSuffix(suffix)
	}
	if !supports(f, mode) {
		return nil, errors.NoIO(path, mode)
	}
	return f, nil
}

// Resolve returns the format for path. A non-empty name selects the format
// explicitly; otherwise the extension decides.
func (reg *Registry) Resolve(path, name string, mode errors.Mode) (Format, error) {
	if name == "" {
		return reg.ForFile(path, mode)
	}
	f, ok := reg.formats[name]
	if !ok {
		return nil, errors.UnknownNamedFileFormat(path)
	}
	if !supports(f, mode) {
		return nil, errors.NoIO(path, mode)
	}
	return f, nil
}

// Identify picks the format of the content waiting in r without consuming it.
// Failures are attached to r.
func (reg *Registry) Identify(r *stream.Reader, name string) (Format, error) {
	header, err := r.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, errors.IOOn(r, "Unable to read the header of "+name+": "+err.Error())
	}

	var matches []Format
	for _, f := range reg.order {
		if f.Identify(header) {
			matches = append(matches, f)
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.UnknownFileFormatOn(r, "")
	case 1:
		return matches[0], nil
	default:
		return nil, errors.ImpossibleObjectIdentificationOn(r, name)
	}
}

func supports(f Format, mode errors.Mode) bool {
	switch mode {
	case errors.Read:
		_, ok := f.(Reader)
		return ok
	case errors.Write:
		_, ok := f.(Writer)
		return ok
	}
	return false
}

func normalizeSuffix(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "."))
}
