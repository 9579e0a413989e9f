package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileStore writes images to the local file system.
// Relative paths are resolved against Root when it is set.
type LocalFileStore struct {
	Root string
}

func NewLocalFileStore(root string) *LocalFileStore {
	return &LocalFileStore{Root: root}
}

func (s *LocalFileStore) filePath(path string) string {
	if s.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Root, path)
}

// WriteImage writes data to path, creating parent directories and
// truncating any existing file.
func (s *LocalFileStore) WriteImage(path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("write image: path must be non-empty")
	}

	fullPath := s.filePath(path)

	if dir := filepath.Dir(fullPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write image: create directory %q: %w", dir, err)
		}
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return fmt.Errorf("write image %q: %w", fullPath, err)
	}

	return nil
}
