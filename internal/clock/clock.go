// Package clock supplies the current calendar day and instant.
package clock

import (
	"time"

	"github.com/chris-regnier/sunspot/internal/mood"
)

// Clock is the date source consumed by the session controller.
type Clock interface {
	// Today returns the local calendar day as YYYY-MM-DD.
	Today() string
	// NowMillis returns milliseconds since the Unix epoch.
	NowMillis() int64
}

type funcClock struct {
	now func() time.Time // injectable for testing
}

// System returns a Clock backed by the local wall clock.
func System() Clock {
	return funcClock{now: time.Now}
}

// Func returns a Clock that asks now for the current time.
func Func(now func() time.Time) Clock {
	return funcClock{now: now}
}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return funcClock{now: func() time.Time { return t }}
}

func (c funcClock) Today() string    { return mood.DateKey(c.now()) }
func (c funcClock) NowMillis() int64 { return c.now().UnixMilli() }
