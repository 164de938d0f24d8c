// Package cache stores downloaded patch artifacts on disk. Artifacts are
// content-addressed by their hash reference, so cached entries never go
// stale and can be reused across runs.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// Store is a directory of cached blob contents, one file per hash reference.
type Store struct {
	dir string
}

func defaultDir() string {
	if base := os.Getenv("XDG_CACHE_HOME"); base != "" {
		return filepath.Join(base, "socket", "blobs")
	}
	home, _ := os.UserHomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".cache", "socket", "blobs")
}

// NewStore returns a Store rooted at dir, or at the XDG cache location when
// dir is empty.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = defaultDir()
	}
	return &Store{dir: dir}
}

// fileName maps a hash reference to a filename-safe key. SSRI references
// carry base64, which can contain '/', so the reference is rehashed rather
// than used directly.
func (s *Store) fileName(hash string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x", xxhash.Sum64String(hash)))
}

// Get returns the cached content for hash, if present.
func (s *Store) Get(hash string) (string, bool) {
	if s.dir == "" {
		return "", false
	}
	b, err := os.ReadFile(s.fileName(hash))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Put stores content for hash, creating the cache directory as needed.
func (s *Store) Put(hash, content string) error {
	if s.dir == "" {
		return fmt.Errorf("no cache directory available")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.fileName(hash), []byte(content), 0o644)
}
