// Package cache implements the two-tier content-addressed cache: a
// process-lifetime memory tier and a persisted file tier with TTL and grace
// window semantics.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/statline/statline/internal/core/domain"
	"github.com/statline/statline/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*FileStore)(nil)

// FileStore is the persisted cache tier: one file per key under a fixed
// directory. The file modification time is the entry creation time, so no
// metadata envelope is needed and the contents stay directly consumable by
// the emitted script.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: filepath.Clean(dir)}
}

// Dir returns the cache directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get retrieves the entry for a key. Returns nil, nil when absent.
func (s *FileStore) Get(dom domain.CacheDomain, key string) (*domain.CacheEntry, error) {
	path := filepath.Join(s.dir, domain.CacheFileName(dom, key))

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat cache entry"), "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from a hashed key
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache entry"), "path", path)
	}

	return &domain.CacheEntry{
		Key:       key,
		Value:     string(data),
		CreatedAt: info.ModTime(),
		Domain:    dom,
	}, nil
}

// Put stores an entry. The write goes through a temp file and a rename so a
// concurrent reader always sees either the old or the new contents, never a
// partial file; racing writers are harmless because entries are
// content-addressed and idempotent.
func (s *FileStore) Put(entry domain.CacheEntry) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	path := filepath.Join(s.dir, domain.CacheFileName(entry.Domain, entry.Key))

	tmp, err := os.CreateTemp(s.dir, domain.CacheFileName(entry.Domain, entry.Key)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp cache file")
	}

	if _, err := tmp.WriteString(entry.Value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write cache entry")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to close temp cache file")
	}

	// The emitted script reads these files, so they need regular permissions.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil { //nolint:gosec // Cache files must stay readable by the emitted script
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to chmod cache entry")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to publish cache entry"), "path", path)
	}
	return nil
}

// Purge removes every entry of every domain.
func (s *FileStore) Purge() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to purge cache directory"), "dir", s.dir)
	}
	return nil
}
