package diary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chris-regnier/sunspot/internal/mood"
)

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestParse(t *testing.T) {
	src := `---
title: Walk by the river
date: 2026-03-14
mood: rainbow
tags:
  - walk
  - spring
excerpt: It cleared up.
---

The rain stopped around noon.
`
	p, err := Parse("river", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Title != "Walk by the river" || p.Mood != mood.Rainbow {
		t.Errorf("got %+v", p)
	}
	if p.Date.Format("2006-01-02") != "2026-03-14" {
		t.Errorf("date = %v", p.Date)
	}
	if len(p.Tags) != 2 || p.Tags[1] != "spring" {
		t.Errorf("tags = %v", p.Tags)
	}
	if p.Body != "The rain stopped around noon." {
		t.Errorf("body = %q", p.Body)
	}
}

func TestParseDefaultsMoodToSunny(t *testing.T) {
	src := "---\ntitle: Plain\ndate: \"2026-01-02\"\n---\nbody\n"
	p, err := Parse("plain", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Mood != mood.Sunny {
		t.Errorf("mood = %q, want sunny", p.Mood)
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown mood": "---\ntitle: x\ndate: 2026-01-02\nmood: ecstatic\n---\n",
		"missing title": "---\ndate: 2026-01-02\n---\n",
		"bad date":      "---\ntitle: x\ndate: yesterday\n---\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(name, strings.NewReader(src))
			if !errors.Is(err, ErrInvalidPost) {
				t.Errorf("expected ErrInvalidPost, got %v", err)
			}
		})
	}
}

func TestLoadSortsAndSkips(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "old.md", "---\ntitle: Old\ndate: 2025-12-01\nmood: cloudy\n---\nold\n")
	writePost(t, dir, "2026/new.md", "---\ntitle: New\ndate: 2026-02-01\nmood: stormy\n---\nnew\n")
	writePost(t, dir, "broken.md", "---\ntitle: Broken\ndate: 2026-01-01\nmood: meh\n---\n")
	writePost(t, dir, "notes.txt", "ignored")

	posts, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d: %+v", len(posts), posts)
	}
	if posts[0].Slug != "2026/new" || posts[1].Slug != "old" {
		t.Errorf("order = %s, %s", posts[0].Slug, posts[1].Slug)
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), nil)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoadEmptyDir(t *testing.T) {
	posts, err := Load(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("expected empty slice, got %#v", posts)
	}
}
