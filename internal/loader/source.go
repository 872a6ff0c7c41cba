package loader

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// Source is one named character stream of CSV trade data.
// Open returns a fresh reader each call, so a source can be sniffed and
// then parsed independently. The caller of Open owns the returned closer.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource wraps a file path as a source.
func FileSource(path string) Source {
	return Source{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// BytesSource wraps in-memory data as a source, such as an uploaded file.
func BytesSource(name string, data []byte) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
