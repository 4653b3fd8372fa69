package shell

import (
	"github.com/chris-regnier/sunspot/internal/mood"
)

// TodayLoader is the part of the record store the prompt needs.
type TodayLoader interface {
	LoadToday(today string) (mood.Record, bool, error)
}

// ComputeStatus reports whether today has a record and, if so, its mood.
func ComputeStatus(store TodayLoader, today string) (mood.Type, bool, error) {
	rec, ok, err := store.LoadToday(today)
	if err != nil || !ok {
		return "", false, err
	}
	return rec.Mood, true, nil
}

// Icon returns the prompt glyph for a cache: the mood icon, or noToday
// when nothing is recorded.
func (c *PromptCache) Icon(noToday string) string {
	if c == nil || !c.Today {
		return noToday
	}
	return c.Mood.Icon()
}
