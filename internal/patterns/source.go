// Package patterns loads the pattern library from configuration sources and
// projects it into the subset relevant to a page configuration.
package patterns

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Source reads named configuration documents. Read reports the document as
// absent (present=false, nil error) rather than failing when the backing
// file does not exist, so missing sources degrade instead of erroring.
type Source interface {
	Read(name string) (data []byte, present bool, err error)
}

// DirSource reads documents from a directory on disk.
type DirSource struct {
	dir string
}

// NewDirSource returns a Source backed by the given directory. A directory
// that does not exist behaves as a source with no documents.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Read implements Source.
func (s *DirSource) Read(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Exists reports whether the backing directory is present at all. The swipe
// directory is only consulted when it exists.
func (s *DirSource) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// FSSource reads documents from an fs.FS, typically an embedded filesystem.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource returns a Source backed by fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Read implements Source.
func (s *FSSource) Read(name string) ([]byte, bool, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
