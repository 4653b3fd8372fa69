package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/chris-regnier/sunspot/internal/kv"
	"github.com/chris-regnier/sunspot/internal/mood"
)

func TestRecordNew(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := recordRun(&buf, []string{"Sunny", "walked", "to", "work"}, recordOptions{}); err != nil {
		t.Fatalf("recordRun: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Recorded ☀️ sunny for 2026-05-03") {
		t.Errorf("got %q", buf.String())
	}

	rec, ok, err := store.LoadToday(testToday)
	if err != nil || !ok {
		t.Fatalf("LoadToday: %v %v", ok, err)
	}
	if rec.Mood != mood.Sunny || rec.Note != "walked to work" || rec.Timestamp != testNow.UnixMilli() {
		t.Errorf("stored %+v", rec)
	}
}

func TestRecordReplacesAndKeepsNote(t *testing.T) {
	setupTestEnv(t)
	store.Upsert(mood.Record{Date: testToday, Mood: mood.Cloudy, Note: "keep me", Timestamp: 1})
	store.Upsert(mood.Record{Date: "2026-05-02", Mood: mood.Rainy, Timestamp: 1})

	var buf bytes.Buffer
	if err := recordRun(&buf, []string{"stormy"}, recordOptions{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "Updated") {
		t.Errorf("got %q", buf.String())
	}

	records, _ := store.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %+v", records)
	}
	rec, _, _ := store.LoadToday(testToday)
	if rec.Mood != mood.Stormy || rec.Note != "keep me" {
		t.Errorf("got %+v", rec)
	}
}

func TestRecordInvalidMood(t *testing.T) {
	mem := setupTestEnv(t)
	if err := recordRun(&bytes.Buffer{}, []string{"ecstatic"}, recordOptions{}); err == nil {
		t.Fatal("expected error")
	}
	if mem.Writes() != 0 {
		t.Error("nothing should be written")
	}
}

func TestRecordConfirmDeclined(t *testing.T) {
	setupTestEnv(t)
	store.Upsert(mood.Record{Date: testToday, Mood: mood.Cloudy, Timestamp: 1})

	var asked string
	opts := recordOptions{confirm: func(prompt string) (bool, error) {
		asked = prompt
		return false, nil
	}}
	var buf bytes.Buffer
	if err := recordRun(&buf, []string{"sunny"}, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(asked, "cloudy") {
		t.Errorf("prompt = %q", asked)
	}
	rec, _, _ := store.LoadToday(testToday)
	if rec.Mood != mood.Cloudy {
		t.Errorf("record should be unchanged, got %+v", rec)
	}
}

func TestRecordConfirmNotAskedForFirstRecord(t *testing.T) {
	setupTestEnv(t)
	opts := recordOptions{confirm: func(string) (bool, error) {
		t.Error("confirm should not be called without an existing record")
		return false, nil
	}}
	if err := recordRun(&bytes.Buffer{}, []string{"rainbow"}, opts); err != nil {
		t.Fatal(err)
	}
}

func TestRecordEditNote(t *testing.T) {
	setupTestEnv(t)
	store.Upsert(mood.Record{Date: testToday, Mood: mood.Cloudy, Note: "draft", Timestamp: 1})

	var initial string
	opts := recordOptions{editNote: func(s string) (string, error) {
		initial = s
		return "final", nil
	}}
	if err := recordRun(&bytes.Buffer{}, []string{"cloudy"}, opts); err != nil {
		t.Fatal(err)
	}
	if initial != "draft" {
		t.Errorf("editor should start from today's note, got %q", initial)
	}
	rec, _, _ := store.LoadToday(testToday)
	if rec.Note != "final" {
		t.Errorf("note = %q", rec.Note)
	}
}

func TestRecordWriteFailure(t *testing.T) {
	mem := setupTestEnv(t)
	mem.FailWrites(errors.New("disk gone"))

	err := recordRun(&bytes.Buffer{}, []string{"sunny"}, recordOptions{})
	if !errors.Is(err, kv.ErrStorage) {
		t.Errorf("expected kv.ErrStorage, got %v", err)
	}
}

func TestRecordJSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true

	var buf bytes.Buffer
	if err := recordRun(&buf, []string{"rainy", "wet"}, recordOptions{}); err != nil {
		t.Fatal(err)
	}
	var rec mood.Record
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rec.Date != testToday || rec.Mood != mood.Rainy || rec.Note != "wet" {
		t.Errorf("got %+v", rec)
	}
}
