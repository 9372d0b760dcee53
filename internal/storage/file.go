package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"kubyshka/internal/common"
)

// FileKV stores each key as a JSON file under a data directory. This is the
// default backend: one document per key, rewritten wholesale on every Set.
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed and returns a file-backed
// repository.
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key Key) string {
	return filepath.Join(f.dir, string(key)+".json")
}

// Get reads the document for key, or common.ErrNotFound when it has never
// been written.
func (f *FileKV) Get(_ context.Context, key Key) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the document for key. The write goes through a temp file and a
// rename so a crash mid-write cannot leave a truncated document behind.
func (f *FileKV) Set(_ context.Context, key Key, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, string(key)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileKV) Close() error {
	return nil
}
