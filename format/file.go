package format

import (
	"path/filepath"

	"github.com/DanielMiklody/openmeeg/errors"
	"github.com/DanielMiklody/openmeeg/stream"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"gonum.org/v1/gonum/mat"
)

// Local returns a go-billy filesystem over the local disk, rooted at "/".
func Local() billy.Filesystem {
	return osfs.New("/")
}

// Memory returns an empty in-memory go-billy filesystem.
func Memory() billy.Filesystem {
	return memfs.New()
}

// ReadFile reads the matrix stored at path.
//
// A non-empty name selects the format explicitly. Otherwise the extension
// decides, and a path without extension is identified from its content.
func ReadFile(fsys billy.Filesystem, reg *Registry, path, name string) (*mat.Dense, Format, error) {
	path = normalize(path)

	var f Format
	if name != "" || filepath.Ext(path) != "" {
		var err error
		if f, err = reg.Resolve(path, name, errors.Read); err != nil {
			return nil, nil, err
		}
	}

	file, err := fsys.Open(path)
	if err != nil {
		return nil, nil, errors.BadFileOpening(path, errors.Read)
	}
	defer func() { _ = file.Close() }()

	r := stream.NewReader(file)
	if f == nil {
		if f, err = reg.Identify(r, path); err != nil {
			return nil, nil, err
		}
	}

	reader, ok := f.(Reader)
	if !ok {
		return nil, nil, errors.NoIOOn(r, path, errors.Read)
	}

	m, err := reader.Read(r, path)
	if err != nil {
		return nil, nil, err
	}
	return m, f, nil
}

// WriteFile writes m to path, creating or truncating the file.
// A non-empty name selects the format explicitly; otherwise the extension decides.
func WriteFile(fsys billy.Filesystem, reg *Registry, path, name string, m mat.Matrix) (Format, error) {
	path = normalize(path)

	f, err := reg.Resolve(path, name, errors.Write)
	if err != nil {
		return nil, err
	}

	file, err := fsys.Create(path)
	if err != nil {
		return nil, errors.BadFileOpening(path, errors.Write)
	}

	w := stream.NewWriter(file)
	if err := f.(Writer).Write(w, m); err != nil {
		_ = file.Close()
		return nil, err
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return nil, errors.IOOn(w, "Unable to write the file "+path+": "+err.Error())
	}
	if err := file.Close(); err != nil {
		return nil, errors.IO("Unable to close the file " + path + ": " + err.Error())
	}
	return f, nil
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
