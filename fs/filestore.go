package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/feedtab"
)

// FileStore writes a single file with atomic replace semantics.
// Content is written to path.tmp, then renamed over path on Commit, so a
// reader never sees a partially written file.
type FileStore struct {
	path string
}

// NewFileStore creates a new FileStore for the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the final path of the file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) tempPath() string {
	return s.path + ".tmp"
}

// Write stores data in the temporary file, creating parent directories.
// A directory already at the final path is a conflict.
func (s *FileStore) Write(data []byte) error {
	if fi, err := os.Stat(s.path); err == nil && fi.IsDir() {
		return feedtab.Errorf(feedtab.ECONFLICT, "output path %s is a directory", s.path)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.tempPath(), data, 0644)
}

// Commit moves the temporary file to the final path, replacing any
// existing file.
func (s *FileStore) Commit() error {
	return os.Rename(s.tempPath(), s.path)
}

// Abort removes the temporary file. The final path is left untouched.
func (s *FileStore) Abort() error {
	err := os.Remove(s.tempPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
