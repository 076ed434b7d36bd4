package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	m "github.com/mbarton/javasphinx/internal/model"
	"github.com/mbarton/javasphinx/pkg"
)

type memoryRecord struct {
	modTime time.Time
	payload []byte
}

// MemoryCacheStore is a process-local CacheStore. Records are stored encoded
// so that callers never share maps with the store.
type MemoryCacheStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
	now     func() time.Time
}

// NewMemoryCacheStore creates an empty store stamping records with now.
func NewMemoryCacheStore(now func() time.Time) *MemoryCacheStore {
	return &MemoryCacheStore{
		records: make(map[string]memoryRecord),
		now:     now,
	}
}

// Key implements CacheStore.
func (s *MemoryCacheStore) Key(source m.Path) string {
	return CacheKey(source)
}

// Stat implements CacheStore.
func (s *MemoryCacheStore) Stat(_ context.Context, key string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[key]

	return rec.modTime, ok, nil
}

// Get implements CacheStore.
func (s *MemoryCacheStore) Get(_ context.Context, key string) (m.Documents, error) {
	s.mu.RLock()
	rec, ok := s.records[key]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no cache record for %s", key)
	}

	return pkg.DecodeRecord[m.Documents](rec.payload)
}

// Put implements CacheStore.
func (s *MemoryCacheStore) Put(_ context.Context, key string, docs m.Documents) error {
	payload, err := pkg.EncodeRecord(docs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = memoryRecord{modTime: s.now(), payload: payload}

	return nil
}

// Len returns the number of stored records.
func (s *MemoryCacheStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// Close implements CacheStore.
func (s *MemoryCacheStore) Close() error {
	return nil
}
