// Package fs provides the file system adapter used by the planner and the cleaner.
package fs

import (
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

var _ ports.FileSystem = (*OSFS)(nil)

// OSFS implements ports.FileSystem on top of the os package.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Exists reports whether path exists. Errors other than "not exist" count as existing
// so that callers attempt the operation and surface the real error.
func (f *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// Mkdir creates a single directory.
func (f *OSFS) Mkdir(path string) error {
	return os.Mkdir(path, domain.DirPerm)
}

// Remove deletes a file or an empty directory.
func (f *OSFS) Remove(path string) error {
	return os.Remove(path)
}

// ReadDir lists the names of the entries in path.
func (f *OSFS) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
