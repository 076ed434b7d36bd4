package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	m "github.com/mbarton/javasphinx/internal/model"
	"github.com/mbarton/javasphinx/pkg"
)

// Cache backend names accepted by OpenCacheStore.
const (
	CacheBackendFS     = "fs"
	CacheBackendSQLite = "sqlite"
	CacheBackendMemory = "memory"
)

const cacheKeySuffix = "-CACHE"

// CacheStore persists the documents compiled from one source file so that an
// unchanged file can be resolved without parsing it again.
type CacheStore interface {
	// Key derives the record key for a source path.
	Key(source m.Path) string

	// Stat reports the modification time of the record stored under key.
	// ok is false when no record exists.
	Stat(ctx context.Context, key string) (modTime time.Time, ok bool, err error)

	// Get loads the documents stored under key.
	Get(ctx context.Context, key string) (m.Documents, error)

	// Put stores docs under key, replacing any previous record.
	Put(ctx context.Context, key string, docs m.Documents) error

	Close() error
}

// ErrUnknownCacheBackend is returned by OpenCacheStore for unsupported backends.
var ErrUnknownCacheBackend = errors.New("unknown cache backend")

// CacheKey flattens a source path into a single file name by replacing every
// path separator with ':' and appending "-CACHE".
func CacheKey(source m.Path) string {
	return strings.ReplaceAll(string(source), string(filepath.Separator), ":") + cacheKeySuffix
}

// OpenCacheStore creates the cache directory if needed and opens the requested
// backend inside it. An empty backend selects the file backend.
func OpenCacheStore(backend string, dir m.Path) (CacheStore, error) {
	if backend == CacheBackendMemory {
		return NewMemoryCacheStore(time.Now), nil
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("failed to create cache directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	switch backend {
	case "", CacheBackendFS:
		return NewFSCacheStore(dir), nil
	case CacheBackendSQLite:
		return NewSQLiteCacheStore(filepath.Join(string(dir), sqliteCacheFile))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCacheBackend, backend)
	}
}

// FSCacheStore keeps one gob record file per source file in a directory.
type FSCacheStore struct {
	dir m.Path
}

// NewFSCacheStore creates a file-per-record store rooted at dir.
func NewFSCacheStore(dir m.Path) *FSCacheStore {
	return &FSCacheStore{dir: dir}
}

// Key implements CacheStore.
func (s *FSCacheStore) Key(source m.Path) string {
	return CacheKey(source)
}

// Stat implements CacheStore.
func (s *FSCacheStore) Stat(_ context.Context, key string) (time.Time, bool, error) {
	info, err := os.Stat(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, false, nil
	}

	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to stat cache record %s: %w", key, err)
	}

	return info.ModTime(), true, nil
}

// Get implements CacheStore.
func (s *FSCacheStore) Get(_ context.Context, key string) (m.Documents, error) {
	return pkg.NewRecordFile[m.Documents](s.path(key)).Load()
}

// Put implements CacheStore.
func (s *FSCacheStore) Put(_ context.Context, key string, docs m.Documents) error {
	return pkg.NewRecordFile[m.Documents](s.path(key)).Save(docs)
}

// Close implements CacheStore.
func (s *FSCacheStore) Close() error {
	return nil
}

func (s *FSCacheStore) path(key string) string {
	return filepath.Join(string(s.dir), key)
}
