package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend persists keys to a single JSON file. Every write marshals the
// full map to a temporary file in the same directory and renames it over the
// target, so readers never observe a partially written file.
//
// An unreadable or unparsable file at open time is treated as empty rather
// than fatal: losing a cached session is recoverable, failing startup is not.
type FileBackend struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// NewFileBackend opens (or lazily creates) the store file at path.
func NewFileBackend(path string) (*FileBackend, error) {
	b := &FileBackend{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return b, nil
	}
	if err != nil {
		return nil, err
	}

	if unmarshalErr := json.Unmarshal(data, &b.values); unmarshalErr != nil {
		b.values = make(map[string]string)
	}
	return b, nil
}

// Get returns the value stored under key.
func (b *FileBackend) Get(_ context.Context, key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	value, ok := b.values[key]
	return value, ok, nil
}

// Set writes value under key and flushes the file.
func (b *FileBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	return b.flushLocked()
}

// Delete removes the given keys and flushes the file.
func (b *FileBackend) Delete(_ context.Context, keys ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, key := range keys {
		delete(b.values, key)
	}
	return b.flushLocked()
}

func (b *FileBackend) flushLocked() error {
	data, err := json.Marshal(b.values)
	if err != nil {
		return err
	}

	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".gvero-store-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
