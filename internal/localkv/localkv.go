// Package localkv is a flat key-value namespace of JSON blobs persisted one
// file per key under a data directory. It is the storefront's stand-in for
// browser local storage: init-on-first-use, no versioning, no teardown.
package localkv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store reads and writes raw blobs keyed by namespace key. The filesystem is
// abstracted behind afero so tests can run against an in-memory fs.
type Store struct {
	fs  afero.Fs
	dir string
}

// New returns a Store over the given filesystem and directory. The directory
// is created on first use.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Open returns a Store backed by the OS filesystem at dir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("localkv: empty data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localkv: create data directory: %w", err)
	}
	return New(afero.NewOsFs(), dir), nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the blob stored under key. A missing key is not an error; it is
// reported through the second return value.
func (s *Store) Get(key string) ([]byte, bool, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("localkv: read %q: %w", key, err)
	}
	return data, true, nil
}

// Put overwrites the blob stored under key.
func (s *Store) Put(key string, data []byte) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("localkv: create data directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("localkv: write %q: %w", key, err)
	}
	return nil
}
