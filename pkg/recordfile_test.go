package pkg

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	Name  string
	Items map[string]int
}

func TestRecordFile(t *testing.T) {
	t.Run("Save and Load round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "record")
		rf := NewRecordFile[sampleRecord](path)

		require.NoFileExists(t, path)

		want := sampleRecord{Name: "docs", Items: map[string]int{"a": 1, "b": 2}}
		require.NoError(t, rf.Save(want))
		require.FileExists(t, path)

		got, err := rf.Load()
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("Save creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "record")
		rf := NewRecordFile[string](path)

		require.NoError(t, rf.Save("value"))

		got, err := rf.Load()
		require.NoError(t, err)
		require.Equal(t, "value", got)
	})

	t.Run("Save overwrites and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		rf := NewRecordFile[int](filepath.Join(dir, "record"))

		require.NoError(t, rf.Save(1))
		require.NoError(t, rf.Save(2))

		got, err := rf.Load()
		require.NoError(t, err)
		require.Equal(t, 2, got)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("concurrent saves through separate handles stay whole", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "record")

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)

			go func() {
				defer wg.Done()
				assert.NoError(t, NewRecordFile[int](path).Save(i))
			}()
		}

		wg.Wait()

		got, err := NewRecordFile[int](path).Load()
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, 0)
		require.Less(t, got, 16)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("Load missing file fails", func(t *testing.T) {
		rf := NewRecordFile[int](filepath.Join(t.TempDir(), "absent"))

		got, err := rf.Load()
		require.Error(t, err)
		require.Equal(t, 0, got)
	})

	t.Run("Load corrupt file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corrupt")
		require.NoError(t, os.WriteFile(path, []byte("not gob"), 0o600))

		_, err := NewRecordFile[sampleRecord](path).Load()
		require.Error(t, err)
	})
}

func TestEncodeDecodeRecord(t *testing.T) {
	data, err := EncodeRecord(map[string]string{"k": "v"})
	require.NoError(t, err)

	got, err := DecodeRecord[map[string]string](data)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"k": "v"}, got)

	_, err = DecodeRecord[map[string]string]([]byte{0xff, 0x00})
	require.Error(t, err)
}
