package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// FileKV is the default backend: one file per key under a data directory,
// written synchronously so every set is durable before it returns.
type FileKV struct {
	dir string
	mu  sync.Mutex
}

// NewFileKV ensures the data directory exists and returns the store.
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// GetItem reads the file backing the key.
func (s *FileKV) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read item %s: %w", key, err)
	}
	return string(raw), true, nil
}

// SetItem writes the value through a temp file plus rename so a crash never
// leaves a half-written entry behind.
func (s *FileKV) SetItem(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("stage item %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write item %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("sync item %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close item %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store item %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes the file backing the key if present.
func (s *FileKV) RemoveItem(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove item %s: %w", key, err)
	}
	return nil
}

func (s *FileKV) path(key string) string {
	// Keys are collection names, but escape anyway so an odd key can never
	// traverse out of the data directory.
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
