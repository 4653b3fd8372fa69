// Package session holds the editable state for today's mood and reconciles
// it with the record store.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/chris-regnier/sunspot/internal/clock"
	"github.com/chris-regnier/sunspot/internal/mood"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultConfirmDelay is how long the confirmation stays up after a submit.
const DefaultConfirmDelay = 2000 * time.Millisecond

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// Sentinel errors returned by Controller operations.
var (
	ErrNoMood      = errors.New("no mood selected")
	ErrInvalidMood = errors.New("invalid mood")
	ErrConfirming  = errors.New("submission already confirmed")
	ErrClosed      = errors.New("session closed")
)

// RecordStore is the persistence the controller reads on start and writes on submit.
type RecordStore interface {
	LoadToday(today string) (mood.Record, bool, error)
	Upsert(r mood.Record) error
}

// Phase is the controller's logical state.
type Phase int

const (
	Empty Phase = iota
	Editing
	Confirmed
)

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case Editing:
		return "editing"
	case Confirmed:
		return "confirmed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State is what the presentation layer renders.
type State struct {
	Phase        Phase
	SelectedMood mood.Type // empty when unset
	Note         string
	IsSubmitted  bool
	LastSaved    *mood.Record
	// Err is the most recent non-fatal persistence failure, cleared by the
	// next successful submit.
	Err error
}

// Controller is the session state machine for one page/TUI instance.
type Controller struct {
	mu        sync.Mutex
	store     RecordStore
	clock     clock.Clock
	scheduler Scheduler
	delay     time.Duration
	onReset   func()
	logger    *slog.Logger
	id        string

	state  State
	timer  Timer
	gen    uint64
	closed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the timer source used for the confirmation reset.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithConfirmDelay overrides DefaultConfirmDelay.
func WithConfirmDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithOnReset registers a hook called after the confirmation reset fires.
func WithOnReset(f func()) Option {
	return func(c *Controller) { c.onReset = f }
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewID generates a session identifier for log correlation.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// New creates a controller and loads today's record. A load failure is not
// fatal: the controller starts Empty and reports the failure in State.Err.
func New(store RecordStore, clk clock.Clock, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		clock:     clk,
		scheduler: RealScheduler(),
		delay:     DefaultConfirmDelay,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	id, err := NewID()
	if err != nil {
		id = "unknown"
	}
	c.id = id
	c.logger = c.logger.With("component", "session", "session", id)

	today := clk.Today()
	rec, ok, err := store.LoadToday(today)
	switch {
	case err != nil:
		c.logger.Warn("loading today's record failed", "date", today, "error", err)
		c.state.Err = err
	case ok:
		c.state.Phase = Editing
		c.state.SelectedMood = rec.Mood
		c.state.Note = rec.Note
		c.state.LastSaved = &rec
		c.logger.Debug("resumed today's record", "date", today, "mood", string(rec.Mood))
	}
	return c
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.id }

// ConfirmDelay returns the delay before the confirmation resets.
func (c *Controller) ConfirmDelay() time.Duration { return c.delay }

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	if s.LastSaved != nil {
		saved := *s.LastSaved
		s.LastSaved = &saved
	}
	return s
}

// settle recomputes the phase after an in-memory edit. Confirmed is only
// left by the reset.
func (c *Controller) settle() {
	if c.state.Phase == Confirmed {
		return
	}
	if c.state.SelectedMood != "" {
		c.state.Phase = Editing
	} else {
		c.state.Phase = Empty
	}
}

// SelectMood sets the selected mood. Selecting the current mood is a no-op.
func (c *Controller) SelectMood(m mood.Type) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMood, m)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.state.SelectedMood == m {
		return nil
	}
	c.state.SelectedMood = m
	c.settle()
	return nil
}

// EditNote replaces the note text.
func (c *Controller) EditNote(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.state.Note = text
	c.settle()
	return nil
}

// Submit persists today's record and enters Confirmed. Without a selected
// mood it does nothing and returns ErrNoMood. On a write failure the
// selection and note are kept and the error is returned.
func (c *Controller) Submit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.state.SelectedMood == "" {
		return ErrNoMood
	}
	if c.state.Phase == Confirmed {
		return ErrConfirming
	}

	rec := mood.Record{
		Date:      c.clock.Today(),
		Mood:      c.state.SelectedMood,
		Note:      c.state.Note,
		Timestamp: c.clock.NowMillis(),
	}
	if err := c.store.Upsert(rec); err != nil {
		c.state.Err = err
		c.logger.Warn("saving record failed", "date", rec.Date, "error", err)
		return err
	}

	c.state.LastSaved = &rec
	c.state.IsSubmitted = true
	c.state.Phase = Confirmed
	c.state.Err = nil
	c.logger.Info("record saved", "date", rec.Date, "mood", string(rec.Mood))

	c.gen++
	gen := c.gen
	c.timer = c.scheduler.AfterFunc(c.delay, func() { c.reset(gen) })
	return nil
}

// reset clears the editable state after the confirmation delay. LastSaved
// is kept.
func (c *Controller) reset(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.state.SelectedMood = ""
	c.state.Note = ""
	c.state.IsSubmitted = false
	c.state.Phase = Empty
	c.timer = nil
	hook := c.onReset
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// Close cancels a pending confirmation reset. After Close no scheduled
// callback mutates the controller.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
