// Package kv defines the string key-value persistence surface that the
// mood ledger is stored on.
package kv

import (
	"errors"
	"fmt"
	"regexp"
)

// Sentinel errors for persistence operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrQuota      = errors.New("storage quota exceeded")
	ErrValidation = errors.New("validation error")
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Surface is a synchronous get/set store over string keys and values.
type Surface interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set replaces the value under key. The write either fully replaces the
	// stored value or fails; a partial write is never observable.
	Set(key string, value string) error

	// Close releases any resources held by the backend.
	Close() error
}

// ValidateKey checks that a key is safe to use as a file name or row key.
func ValidateKey(key string) error {
	if len(key) > 128 || !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: invalid key %q", ErrValidation, key)
	}
	return nil
}

// CheckQuota returns ErrQuota when a value of size n would exceed maxBytes.
// A maxBytes of zero disables the check.
func CheckQuota(n int, maxBytes int64) error {
	if maxBytes > 0 && int64(n) > maxBytes {
		return fmt.Errorf("%w: value is %d bytes, limit is %d", ErrQuota, n, maxBytes)
	}
	return nil
}
