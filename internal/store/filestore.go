package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a KV store backed by one JSON file per profile, for local
// single-user use. Writes go through a temp file and rename so a crash
// mid-write never leaves a torn profile file.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the store directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get returns the value for a key, or ErrNotFound.
func (f *FileStore) Get(_ context.Context, profile, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read(profile)
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Put stores a value under a key.
func (f *FileStore) Put(_ context.Context, profile, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read(profile)
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	path := f.path(profile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace profile file: %w", err)
	}
	return nil
}

func (f *FileStore) read(profile string) (map[string]string, error) {
	data, err := os.ReadFile(f.path(profile))
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}
	return values, nil
}

func (f *FileStore) path(profile string) string {
	// Profile names become file names; keep them flat.
	return filepath.Join(f.dir, filepath.Base(profile)+".json")
}
