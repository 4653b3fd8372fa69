// Package memory provides an in-process kv.Surface.
package memory

import (
	"fmt"
	"sync"

	"github.com/chris-regnier/sunspot/internal/kv"
)

// Store implements kv.Surface with a map.
type Store struct {
	mu       sync.Mutex
	data     map[string]string
	maxBytes int64
	setErr   error
	sets     int
}

// New creates an empty in-memory store. maxBytes of zero disables the quota.
func New(maxBytes int64) *Store {
	return &Store{data: make(map[string]string), maxBytes: maxBytes}
}

// Get returns the value under key.
func (s *Store) Get(key string) (string, bool, error) {
	if err := kv.ValidateKey(key); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key, or returns the injected failure if one is set.
func (s *Store) Set(key string, value string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	if err := kv.CheckQuota(len(value), s.maxBytes); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return fmt.Errorf("%w: %v", kv.ErrStorage, s.setErr)
	}
	s.data[key] = value
	s.sets++
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// FailWrites makes every subsequent Set fail with err. Pass nil to recover.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

// Writes reports how many Set calls succeeded.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}
