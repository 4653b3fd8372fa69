package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chris-regnier/sunspot/internal/clock"
	"github.com/chris-regnier/sunspot/internal/kv"
	"github.com/chris-regnier/sunspot/internal/kv/memory"
	"github.com/chris-regnier/sunspot/internal/ledger"
	"github.com/chris-regnier/sunspot/internal/mood"
)

// fakeTimer is a pending callback held by fakeScheduler.
type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

// fakeScheduler records callbacks so tests decide when time passes.
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance fires every timer that has not been stopped, ignoring Stop the
// way a real timer whose callback is already running would.
func (s *fakeScheduler) Advance(ignoreStop bool) {
	for _, t := range s.timers {
		if t.fired || (t.stopped && !ignoreStop) {
			continue
		}
		t.fired = true
		t.f()
	}
}

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)

const testToday = "2026-10-15"

func newTestController(t *testing.T, surface kv.Surface, opts ...Option) (*Controller, *ledger.Store, *fakeScheduler) {
	t.Helper()
	store := ledger.New(surface)
	sched := &fakeScheduler{}
	opts = append([]Option{WithScheduler(sched)}, opts...)
	c := New(store, clock.Fixed(testNow), opts...)
	t.Cleanup(c.Close)
	return c, store, sched
}

func TestNewEmptyStore(t *testing.T) {
	c, _, _ := newTestController(t, memory.New(0))
	s := c.Snapshot()
	if s.Phase != Empty {
		t.Errorf("phase = %v, want empty", s.Phase)
	}
	if s.SelectedMood != "" || s.Note != "" || s.LastSaved != nil || s.IsSubmitted {
		t.Errorf("unexpected initial state %+v", s)
	}
	if c.ID() == "" {
		t.Error("expected a session ID")
	}
}

// Scenario A
func TestSubmitPersistsRecord(t *testing.T) {
	c, store, _ := newTestController(t, memory.New(0))

	if err := c.SelectMood(mood.Sunny); err != nil {
		t.Fatalf("SelectMood: %v", err)
	}
	if err := c.EditNote("good day"); err != nil {
		t.Fatalf("EditNote: %v", err)
	}
	if err := c.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	got, ok, err := store.LoadToday(testToday)
	if err != nil || !ok {
		t.Fatalf("LoadToday: ok=%v err=%v", ok, err)
	}
	if got.Date != testToday || got.Mood != mood.Sunny || got.Note != "good day" {
		t.Errorf("got %+v", got)
	}
	if got.Timestamp != testNow.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", got.Timestamp, testNow.UnixMilli())
	}

	s := c.Snapshot()
	if s.Phase != Confirmed || !s.IsSubmitted {
		t.Errorf("expected confirmed, got %+v", s)
	}
	if s.LastSaved == nil || *s.LastSaved != got {
		t.Errorf("LastSaved = %+v, want %+v", s.LastSaved, got)
	}
}

// Scenario B
func TestNewResumesTodaysRecord(t *testing.T) {
	surface := memory.New(0)
	existing := mood.Record{Date: testToday, Mood: mood.Rainy, Note: "meh", Timestamp: 12345}
	if err := ledger.New(surface).Upsert(existing); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, _, _ := newTestController(t, surface)
	s := c.Snapshot()
	if s.Phase != Editing {
		t.Errorf("phase = %v, want editing", s.Phase)
	}
	if s.SelectedMood != mood.Rainy || s.Note != "meh" {
		t.Errorf("pre-fill = %q/%q, want rainy/meh", s.SelectedMood, s.Note)
	}
	if s.LastSaved == nil || *s.LastSaved != existing {
		t.Errorf("LastSaved = %+v", s.LastSaved)
	}
}

func TestNewIgnoresOtherDays(t *testing.T) {
	surface := memory.New(0)
	ledger.New(surface).Upsert(mood.Record{Date: "2026-10-14", Mood: mood.Stormy, Timestamp: 1})

	c, _, _ := newTestController(t, surface)
	if s := c.Snapshot(); s.Phase != Empty || s.LastSaved != nil {
		t.Errorf("yesterday's record leaked into today: %+v", s)
	}
}

func TestNewIgnoresRecordWithoutMood(t *testing.T) {
	surface := memory.New(0)
	surface.Set(ledger.DefaultKey, `[{"date":"2026-10-14","note":"x","timestamp":1},{"date":"2026-10-15","note":"y","timestamp":2}]`)

	c, store, _ := newTestController(t, surface)
	if s := c.Snapshot(); s.Phase != Empty || s.SelectedMood != "" || s.LastSaved != nil {
		t.Fatalf("moodless record should not be resumed: %+v", s)
	}

	if err := store.Upsert(mood.Record{Date: "2026-10-16", Mood: mood.Sunny, Timestamp: 3}); err != nil {
		t.Fatal(err)
	}
	records, _ := store.Records()
	for _, r := range records {
		if !r.Mood.Valid() {
			t.Errorf("persisted record with invalid mood: %+v", r)
		}
	}
	if len(records) != 1 {
		t.Errorf("expected only the new record, got %+v", records)
	}
}

// Scenario C
func TestResubmitAfterResetReplacesRecord(t *testing.T) {
	c, store, sched := newTestController(t, memory.New(0))

	c.SelectMood(mood.Cloudy)
	c.EditNote("first")
	if err := c.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	sched.Advance(false)

	c.SelectMood(mood.Rainbow)
	c.EditNote("second")
	if err := c.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	got, _, _ := store.LoadToday(testToday)
	if got.Mood != mood.Rainbow || got.Note != "second" {
		t.Errorf("got %+v, want rainbow/second", got)
	}
	records, _ := store.Records()
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

// Scenario D
func TestConfirmationResetKeepsLastSaved(t *testing.T) {
	var resets int
	c, _, sched := newTestController(t, memory.New(0), WithOnReset(func() { resets++ }))

	c.SelectMood(mood.Stormy)
	c.EditNote("thunder")
	if err := c.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(sched.timers) != 1 || sched.timers[0].d != DefaultConfirmDelay {
		t.Fatalf("expected one %v timer, got %+v", DefaultConfirmDelay, sched.timers)
	}

	sched.Advance(false)

	s := c.Snapshot()
	if s.Phase != Empty || s.IsSubmitted {
		t.Errorf("expected empty after reset, got %+v", s)
	}
	if s.SelectedMood != "" || s.Note != "" {
		t.Errorf("editable state not cleared: %q/%q", s.SelectedMood, s.Note)
	}
	if s.LastSaved == nil || s.LastSaved.Mood != mood.Stormy || s.LastSaved.Note != "thunder" {
		t.Errorf("LastSaved = %+v", s.LastSaved)
	}
	if resets != 1 {
		t.Errorf("onReset called %d times, want 1", resets)
	}
}

func TestResetClearsInputMadeDuringConfirmation(t *testing.T) {
	c, _, sched := newTestController(t, memory.New(0))
	c.SelectMood(mood.Sunny)
	c.Submit()

	c.SelectMood(mood.Cloudy)
	c.EditNote("typed during banner")
	if s := c.Snapshot(); s.Phase != Confirmed {
		t.Fatalf("phase = %v, want confirmed", s.Phase)
	}

	sched.Advance(false)
	if s := c.Snapshot(); s.SelectedMood != "" || s.Note != "" {
		t.Errorf("reset kept input: %+v", s)
	}
}

func TestSelectMoodIdempotent(t *testing.T) {
	c, _, _ := newTestController(t, memory.New(0))
	c.SelectMood(mood.Rainy)
	once := c.Snapshot()
	c.SelectMood(mood.Rainy)
	twice := c.Snapshot()
	if once.Phase != twice.Phase || once.SelectedMood != twice.SelectedMood || once.Note != twice.Note {
		t.Errorf("state changed on repeated select: %+v vs %+v", once, twice)
	}
}

func TestSelectMoodRejectsUnknown(t *testing.T) {
	c, _, _ := newTestController(t, memory.New(0))
	if err := c.SelectMood("gloomy"); !errors.Is(err, ErrInvalidMood) {
		t.Errorf("expected ErrInvalidMood, got %v", err)
	}
	if s := c.Snapshot(); s.SelectedMood != "" {
		t.Errorf("invalid mood was selected: %q", s.SelectedMood)
	}
}

func TestEditNoteWithoutMoodStaysEmpty(t *testing.T) {
	c, _, _ := newTestController(t, memory.New(0))
	c.EditNote("just words")
	s := c.Snapshot()
	if s.Phase != Empty || s.Note != "just words" {
		t.Errorf("got %+v", s)
	}
}

func TestSubmitWithoutMoodIsNoop(t *testing.T) {
	surface := memory.New(0)
	c, _, sched := newTestController(t, surface)
	c.EditNote("no mood yet")

	if err := c.Submit(); !errors.Is(err, ErrNoMood) {
		t.Fatalf("expected ErrNoMood, got %v", err)
	}
	if surface.Writes() != 0 {
		t.Errorf("guarded submit reached the store")
	}
	if len(sched.timers) != 0 {
		t.Errorf("guarded submit scheduled a reset")
	}
	if s := c.Snapshot(); s.Note != "no mood yet" || s.Phase != Empty {
		t.Errorf("state changed: %+v", s)
	}
}

func TestSubmitWhileConfirmedIsNoop(t *testing.T) {
	surface := memory.New(0)
	c, _, sched := newTestController(t, surface)
	c.SelectMood(mood.Sunny)
	c.Submit()

	if err := c.Submit(); !errors.Is(err, ErrConfirming) {
		t.Fatalf("expected ErrConfirming, got %v", err)
	}
	if surface.Writes() != 1 {
		t.Errorf("writes = %d, want 1", surface.Writes())
	}
	if len(sched.timers) != 1 {
		t.Errorf("timers = %d, want 1", len(sched.timers))
	}
}

func TestSubmitWriteFailureKeepsInput(t *testing.T) {
	surface := memory.New(0)
	c, store, sched := newTestController(t, surface)
	c.SelectMood(mood.Rainbow)
	c.EditNote("keep me")

	surface.FailWrites(errors.New("quota"))
	err := c.Submit()
	if !errors.Is(err, kv.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	s := c.Snapshot()
	if s.Phase != Editing || s.IsSubmitted {
		t.Errorf("expected editing after failure, got %+v", s)
	}
	if s.SelectedMood != mood.Rainbow || s.Note != "keep me" {
		t.Errorf("input lost: %+v", s)
	}
	if s.Err == nil {
		t.Error("expected State.Err to report the failure")
	}
	if len(sched.timers) != 0 {
		t.Error("failed submit scheduled a reset")
	}
	if _, ok, _ := store.LoadToday(testToday); ok {
		t.Error("failed submit persisted a record")
	}

	// Retry succeeds and clears the notice.
	surface.FailWrites(nil)
	if err := c.Submit(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if s := c.Snapshot(); s.Err != nil || s.Phase != Confirmed {
		t.Errorf("after retry %+v", s)
	}
}

// failingStore fails every read.
type failingStore struct{ err error }

func (f failingStore) LoadToday(string) (mood.Record, bool, error) { return mood.Record{}, false, f.err }
func (f failingStore) Upsert(mood.Record) error                     { return f.err }

func TestNewLoadFailureIsNotFatal(t *testing.T) {
	c := New(failingStore{err: kv.ErrStorage}, clock.Fixed(testNow), WithScheduler(&fakeScheduler{}))
	defer c.Close()
	s := c.Snapshot()
	if s.Phase != Empty || !errors.Is(s.Err, kv.ErrStorage) {
		t.Errorf("got %+v", s)
	}
}

func TestCloseCancelsPendingReset(t *testing.T) {
	var resets int
	c, _, sched := newTestController(t, memory.New(0), WithOnReset(func() { resets++ }))
	c.SelectMood(mood.Sunny)
	c.Submit()

	c.Close()
	if !sched.timers[0].stopped {
		t.Error("Close did not stop the timer")
	}

	// Even if the callback races past Stop, it must not mutate.
	sched.Advance(true)
	s := c.Snapshot()
	if s.Phase != Confirmed || s.SelectedMood != mood.Sunny {
		t.Errorf("reset mutated a closed controller: %+v", s)
	}
	if resets != 0 {
		t.Errorf("onReset called after Close")
	}
	if err := c.SelectMood(mood.Rainy); !errors.Is(err, ErrClosed) {
		t.Errorf("SelectMood after Close = %v, want ErrClosed", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c, _, _ := newTestController(t, memory.New(0))
	c.SelectMood(mood.Sunny)
	c.Submit()
	s := c.Snapshot()
	s.LastSaved.Note = "tampered"
	if c.Snapshot().LastSaved.Note == "tampered" {
		t.Error("Snapshot exposed internal LastSaved")
	}
}

func TestWithConfirmDelay(t *testing.T) {
	c, _, sched := newTestController(t, memory.New(0), WithConfirmDelay(5*time.Second))
	c.SelectMood(mood.Sunny)
	c.Submit()
	if sched.timers[0].d != 5*time.Second {
		t.Errorf("delay = %v, want 5s", sched.timers[0].d)
	}
	if c.ConfirmDelay() != 5*time.Second {
		t.Errorf("ConfirmDelay() = %v", c.ConfirmDelay())
	}
}

func TestRealSchedulerResets(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	store := ledger.New(memory.New(0))
	c := New(store, clock.Fixed(testNow),
		WithConfirmDelay(10*time.Millisecond),
		WithOnReset(wg.Done),
	)
	defer c.Close()

	c.SelectMood(mood.Cloudy)
	if err := c.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reset did not fire")
	}
	if s := c.Snapshot(); s.Phase != Empty || s.LastSaved == nil {
		t.Errorf("after real reset %+v", s)
	}
}

func TestPhaseString(t *testing.T) {
	if Empty.String() != "empty" || Editing.String() != "editing" || Confirmed.String() != "confirmed" {
		t.Error("unexpected phase names")
	}
}
