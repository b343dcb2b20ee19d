package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// PathStore persists the operator-managed search root list as a flat JSON
// string array. Writes are not guarded against concurrent writers.
type PathStore struct {
	path string
}

// NewPathStore creates a store backed by the given file.
func NewPathStore(path string) *PathStore {
	return &PathStore{path: path}
}

// DefaultPathStore returns the store at ~/.skillserve/paths.json.
func DefaultPathStore() (*PathStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user home directory")
	}
	return NewPathStore(filepath.Join(homeDir, configDirName, "paths.json")), nil
}

// Load reads the stored path list. A missing file is an empty list, not an
// error.
func (s *PathStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrap(err, "failed to read paths file")
	}
	return ParsePathsFile(data)
}

// Save writes the path list, creating the parent directory when needed.
func (s *PathStore) Save(paths []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode paths")
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write paths file")
	}
	return nil
}

// Add appends a path to the stored list. It reports false when the path was
// already present, in which case nothing is written.
func (s *PathStore) Add(path string) (bool, error) {
	paths, err := s.Load()
	if err != nil {
		return false, err
	}

	for _, existing := range paths {
		if existing == path {
			return false, nil
		}
	}

	paths = append(paths, path)
	if err := s.Save(paths); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a path from the stored list. It reports false when the path
// was not present.
func (s *PathStore) Remove(path string) (bool, error) {
	paths, err := s.Load()
	if err != nil {
		return false, err
	}

	kept := paths[:0]
	removed := false
	for _, existing := range paths {
		if existing == path {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}

	if !removed {
		return false, nil
	}

	if err := s.Save(kept); err != nil {
		return false, err
	}
	return true, nil
}
