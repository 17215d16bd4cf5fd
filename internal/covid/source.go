package covid

import (
	"bytes"
	"io"
	"io/fs"
	"os"
)

// Source is a named, re-openable location of CSV data.
// Each Open must return a fresh reader positioned at the start.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource reads from a path on the local filesystem.
type FileSource string

// Name returns the path.
func (s FileSource) Name() string { return string(s) }

// Open opens the file at the path.
func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(s))
}

// fsSource reads a named resource from an fs.FS.
type fsSource struct {
	fsys fs.FS
	name string
}

// FSSource returns a Source for the resource name inside fsys.
// It is used for the dataset bundled into the binary.
func FSSource(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

func (s fsSource) Name() string { return s.name }

func (s fsSource) Open() (io.ReadCloser, error) {
	return s.fsys.Open(s.name)
}

// memorySource serves a fixed byte slice.
type memorySource struct {
	name string
	data []byte
}

// MemorySource returns a Source backed by data. The slice is not copied,
// callers must not modify it afterwards.
func MemorySource(name string, data []byte) Source {
	return memorySource{name: name, data: data}
}

func (s memorySource) Name() string { return s.name }

func (s memorySource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}
