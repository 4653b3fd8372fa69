package shell

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/sunspot/internal/mood"
)

const cacheFileName = ".prompt-cache"

// PromptCache holds the last computed prompt status.
type PromptCache struct {
	Today     bool      `json:"today"`
	Mood      mood.Type `json:"mood,omitempty"`
	TodayDate string    `json:"today_date"`
	Backend   string    `json:"backend"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachePath returns the full path to the prompt cache file.
func CachePath(dataDir string) string {
	return filepath.Join(dataDir, cacheFileName)
}

// ReadCache reads the prompt cache from disk. Returns nil if the cache
// does not exist or cannot be parsed.
func ReadCache(dataDir string) *PromptCache {
	data, err := os.ReadFile(CachePath(dataDir))
	if err != nil {
		return nil
	}
	var c PromptCache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

// WriteCache writes the prompt cache to disk.
func WriteCache(dataDir string, c *PromptCache) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(CachePath(dataDir), data, 0600)
}

// IsFresh reports whether the cache can still be used for today at now.
// A cache from another day is always stale.
func (c *PromptCache) IsFresh(today string, now time.Time, ttl time.Duration) bool {
	if c == nil || c.TodayDate != today {
		return false
	}
	return now.Sub(c.UpdatedAt) <= ttl
}

// InvalidateCache removes the prompt cache file.
func InvalidateCache(dataDir string) error {
	if err := os.Remove(CachePath(dataDir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
