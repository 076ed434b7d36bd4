package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	m "github.com/mbarton/javasphinx/internal/model"
	"github.com/mbarton/javasphinx/pkg"

	_ "modernc.org/sqlite"
)

const sqliteCacheFile = "cache.db"

// SQLiteCacheStore keeps every cache record in a single SQLite database.
type SQLiteCacheStore struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// NewSQLiteCacheStore opens (or creates) the database at dbPath.
// Use ":memory:" for a throwaway database.
func NewSQLiteCacheStore(dbPath string) (*SQLiteCacheStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	store := &SQLiteCacheStore{db: db, now: time.Now}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteCacheStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		mod_time INTEGER NOT NULL,
		payload BLOB NOT NULL
	);
	`
	_, err := s.db.Exec(schema)

	return err
}

// Key implements CacheStore.
func (s *SQLiteCacheStore) Key(source m.Path) string {
	return CacheKey(source)
}

// Stat implements CacheStore.
func (s *SQLiteCacheStore) Stat(ctx context.Context, key string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var modTime int64

	err := s.db.QueryRowContext(ctx, "SELECT mod_time FROM records WHERE key = ?", key).Scan(&modTime)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}

	if err != nil {
		return time.Time{}, false, fmt.Errorf("query record %s: %w", key, err)
	}

	return time.Unix(0, modTime), true, nil
}

// Get implements CacheStore.
func (s *SQLiteCacheStore) Get(ctx context.Context, key string) (m.Documents, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload []byte

	err := s.db.QueryRowContext(ctx, "SELECT payload FROM records WHERE key = ?", key).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("query record %s: %w", key, err)
	}

	return pkg.DecodeRecord[m.Documents](payload)
}

// Put implements CacheStore.
func (s *SQLiteCacheStore) Put(ctx context.Context, key string, docs m.Documents) error {
	payload, err := pkg.EncodeRecord(docs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO records (key, mod_time, payload) VALUES (?, ?, ?) "+
			"ON CONFLICT(key) DO UPDATE SET mod_time = excluded.mod_time, payload = excluded.payload",
		key, s.now().UnixNano(), payload,
	)
	if err != nil {
		slog.Error("failed to store cache record", "key", key, "error", err)
		return fmt.Errorf("upsert record %s: %w", key, err)
	}

	return nil
}

// Close implements CacheStore.
func (s *SQLiteCacheStore) Close() error {
	return s.db.Close()
}
