// Package pkg is a package that provides utilities for javasphinx.
package pkg

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// RecordFile is a generic interface for persisting a single item of type T to disk.
// Handles keep only the path, and Save replaces the file atomically, so any
// number of handles may share one file.
type RecordFile[T any] interface {
	Save(item T) error
	Load() (T, error)
}

type recordFileImpl[T any] struct {
	path string
}

// NewRecordFile creates a RecordFile backed by the file at path. The file is
// not touched until Save or Load is called.
func NewRecordFile[T any](path string) RecordFile[T] {
	return &recordFileImpl[T]{path: path}
}

// Save implements RecordFile. The record is written to a temporary file in the
// same directory and renamed into place, so readers never see a partial record.
func (f *recordFileImpl[T]) Save(item T) error {
	data, err := EncodeRecord(item)
	if err != nil {
		slog.Error("failed to encode record", "path", f.path, "error", err)
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create record directory", "path", dir, "error", err)
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".record-*")
	if err != nil {
		slog.Error("failed to create temp file", "path", dir, "error", err)
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		slog.Error("failed to write record", "path", tmpName, "error", err)

		return fmt.Errorf("failed to write record: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close record: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)

		slog.Error("failed to move record into place", "path", f.path, "error", err)

		return fmt.Errorf("failed to move record into place: %w", err)
	}

	slog.Debug("saved record", "path", f.path, "bytes", len(data))

	return nil
}

// Load implements RecordFile.
func (f *recordFileImpl[T]) Load() (T, error) {
	var zero T

	// #nosec G304 - path is derived from the configured cache directory
	data, err := os.ReadFile(f.path)
	if err != nil {
		slog.Error("failed to read record", "path", f.path, "error", err)
		return zero, fmt.Errorf("failed to read record: %w", err)
	}

	item, err := DecodeRecord[T](data)
	if err != nil {
		slog.Warn("failed to decode record", "path", f.path, "error", err)
		return zero, err
	}

	slog.Debug("loaded record", "path", f.path)

	return item, nil
}

// EncodeRecord gob-encodes item.
func EncodeRecord[T any](item T) ([]byte, error) {
	var buf bytes.Buffer

	if err := gob.NewEncoder(&buf).Encode(item); err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeRecord decodes a gob-encoded item.
func DecodeRecord[T any](data []byte) (T, error) {
	var item T

	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&item); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode item: %w", err)
	}

	return item, nil
}
