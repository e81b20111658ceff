// Package jar provides read access to mod jar archives.
package jar

import (
	"archive/zip"
	"fmt"
	"io"
)

// Open opens the jar at path as a zip archive. The caller must close it.
func Open(path string) (*zip.ReadCloser, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open jar %s: %w", path, err)
	}
	return r, nil
}

// HasEntry reports whether the archive contains a file with the given name.
func HasEntry(r *zip.Reader, name string) bool {
	for _, f := range r.File {
		if f.Name == name {
			return true
		}
	}
	return false
}

// ReadEntry returns the contents of the named archive entry.
func ReadEntry(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}
