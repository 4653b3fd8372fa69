// Package file implements kv.Surface with one file per key.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/chris-regnier/sunspot/internal/kv"
)

// Store implements kv.Surface on the local filesystem.
type Store struct {
	baseDir  string // e.g. ~/.sunspot/kv/
	maxBytes int64
}

// New creates a file-backed store under dataDir/kv.
func New(dataDir string, maxBytes int64) (*Store, error) {
	baseDir := filepath.Join(dataDir, "kv")
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating kv directory: %v", kv.ErrStorage, err)
	}
	return &Store{baseDir: baseDir, maxBytes: maxBytes}, nil
}

// Close is a no-op for the file backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

// Get reads the file for key.
func (s *Store) Get(key string) (string, bool, error) {
	if err := kv.ValidateKey(key); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: reading %s: %v", kv.ErrStorage, key, err)
	}
	return string(data), true, nil
}

// Set atomically replaces the file for key.
func (s *Store) Set(key string, value string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	if err := kv.CheckQuota(len(value), s.maxBytes); err != nil {
		return err
	}
	return s.atomicWrite(s.path(key), []byte(value))
}

// atomicWrite writes data to a temp file then renames it to the target path.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", kv.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", kv.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		if errors.Is(err, syscall.ENOSPC) {
			return fmt.Errorf("%w: %v", kv.ErrQuota, err)
		}
		return fmt.Errorf("%w: writing temp file: %v", kv.ErrStorage, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: syncing temp file: %v", kv.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", kv.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", kv.ErrStorage, err)
	}

	return nil
}
