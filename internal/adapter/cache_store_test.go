package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mbarton/javasphinx/internal/model"
)

func sampleDocuments() m.Documents {
	return m.Documents{
		"a.b.Bar": {Package: "a.b", Name: "Bar", Text: "Bar\n===\n"},
		"a.b.Bar.Inner": {
			Package: "a.b",
			Name:    "Bar.Inner",
			Text:    "Bar.Inner\n=========\n",
		},
	}
}

func TestCacheKey(t *testing.T) {
	sep := string(filepath.Separator)
	source := m.Path(sep + filepath.Join("src", "a", "Foo.java"))

	assert.Equal(t, ":src:a:Foo.java-CACHE", CacheKey(source))
}

func TestOpenCacheStore(t *testing.T) {
	t.Run("fs backend creates directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "cache")

		store, err := OpenCacheStore(CacheBackendFS, m.Path(dir))
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &FSCacheStore{}, store)
		assert.DirExists(t, dir)
	})

	t.Run("empty backend defaults to fs", func(t *testing.T) {
		store, err := OpenCacheStore("", m.Path(t.TempDir()))
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &FSCacheStore{}, store)
	})

	t.Run("sqlite backend", func(t *testing.T) {
		dir := t.TempDir()

		store, err := OpenCacheStore(CacheBackendSQLite, m.Path(dir))
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &SQLiteCacheStore{}, store)
		assert.FileExists(t, filepath.Join(dir, sqliteCacheFile))
	})

	t.Run("memory backend", func(t *testing.T) {
		store, err := OpenCacheStore(CacheBackendMemory, "")
		require.NoError(t, err)

		assert.IsType(t, &MemoryCacheStore{}, store)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := OpenCacheStore("redis", m.Path(t.TempDir()))

		assert.ErrorIs(t, err, ErrUnknownCacheBackend)
	})
}

func TestCacheStores_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		open func(t *testing.T) CacheStore
	}{
		{
			name: "fs",
			open: func(t *testing.T) CacheStore {
				return NewFSCacheStore(m.Path(t.TempDir()))
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) CacheStore {
				store, err := NewSQLiteCacheStore(":memory:")
				require.NoError(t, err)
				return store
			},
		},
		{
			name: "memory",
			open: func(*testing.T) CacheStore {
				return NewMemoryCacheStore(time.Now)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := tt.open(t)
			defer store.Close()

			key := store.Key(m.Path(filepath.Join("src", "a", "b", "Bar.java")))

			_, ok, err := store.Stat(ctx, key)
			require.NoError(t, err)
			assert.False(t, ok, "record should not exist before Put")

			before := time.Now().Add(-2 * time.Second)

			require.NoError(t, store.Put(ctx, key, sampleDocuments()))

			modTime, ok, err := store.Stat(ctx, key)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.True(t, modTime.After(before), "mod time %v should be recent", modTime)

			got, err := store.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, sampleDocuments(), got)

			replacement := m.Documents{"a.b.Bar": {Package: "a.b", Name: "Bar", Text: "changed"}}
			require.NoError(t, store.Put(ctx, key, replacement))

			got, err = store.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, replacement, got)
		})
	}
}

func TestFSCacheStore_Layout(t *testing.T) {
	dir := t.TempDir()
	store := NewFSCacheStore(m.Path(dir))

	source := m.Path(string(filepath.Separator) + filepath.Join("src", "a", "Foo.java"))
	require.NoError(t, store.Put(context.Background(), store.Key(source), sampleDocuments()))

	assert.FileExists(t, filepath.Join(dir, ":src:a:Foo.java-CACHE"))
}

func TestFSCacheStore_CorruptRecord(t *testing.T) {
	dir := t.TempDir()
	store := NewFSCacheStore(m.Path(dir))

	key := "broken-CACHE"
	require.NoError(t, os.WriteFile(filepath.Join(dir, key), []byte("garbage"), 0o600))

	_, ok, err := store.Stat(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.Get(context.Background(), key)
	assert.Error(t, err)
}

func TestMemoryCacheStore_Clock(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryCacheStore(func() time.Time { return stamp })

	require.NoError(t, store.Put(context.Background(), "k", sampleDocuments()))

	modTime, ok, err := store.Stat(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, stamp, modTime)
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(context.Background(), "missing")
	assert.Error(t, err)
}
