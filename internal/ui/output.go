package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/chris-regnier/sunspot/internal/diary"
	"github.com/chris-regnier/sunspot/internal/mood"
	"github.com/chris-regnier/sunspot/internal/weather"
)

const timeLayout = "2006-01-02 15:04"

// FormatRecord writes a record with its label and time. The note is
// rendered as markdown using markdownStyle; pass "notty" for plain text.
func FormatRecord(w io.Writer, r mood.Record, markdownStyle string) {
	fmt.Fprintf(w, "%s  %s  %s\n", r.Mood.Icon(), r.Mood.Label(), r.Date)
	fmt.Fprintf(w, "Recorded: %s\n", r.Time().Local().Format(timeLayout))
	if r.Note != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderMarkdown(r.Note, 72, markdownStyle))
	}
}

// FormatNoRecord writes the message shown when today has no record.
func FormatNoRecord(w io.Writer, date string) {
	fmt.Fprintf(w, "No mood recorded for %s.\n", date)
}

// FormatSaved writes a save confirmation.
func FormatSaved(w io.Writer, r mood.Record, replaced bool) {
	verb := "Recorded"
	if replaced {
		verb = "Updated"
	}
	fmt.Fprintf(w, "%s %s %s for %s\n", verb, r.Mood.Icon(), r.Mood, r.Date)
}

// FormatMoodList writes the palette, one mood per line.
func FormatMoodList(w io.Writer, opts []mood.Option) {
	for i, o := range opts {
		fmt.Fprintf(w, "%d  %s  %-8s %s\n", i+1, o.Icon, o.Type, o.Label)
	}
}

// FormatWeather writes current conditions and the theme they select.
func FormatWeather(w io.Writer, wx weather.Weather) {
	fmt.Fprintf(w, "%s  %d°C  %s\n", wx.Icon, wx.Temperature, wx.Description)
	fmt.Fprintf(w, "Theme: %s\n", weather.ThemeFor(wx.Type))
	if wx.Fallback {
		fmt.Fprintln(w, "(weather unavailable, showing default)")
	}
}

// FormatRecordList writes records one per line in the given order.
func FormatRecordList(w io.Writer, records []mood.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No moods recorded.")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "%s  %s  %-8s %s\n", r.Date, r.Mood.Icon(), r.Mood, preview(r.Note, 50))
	}
}

// FormatPostList writes diary posts newest first.
func FormatPostList(w io.Writer, posts []diary.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No diary posts found.")
		return
	}
	for _, p := range posts {
		fmt.Fprintf(w, "%s  %s  %s  %s\n", p.Date.Format("2006-01-02"), p.Mood.Icon(), p.Slug, p.Title)
	}
}

// FormatPost writes a diary post header and rendered body.
func FormatPost(w io.Writer, p diary.Post, markdownStyle string) {
	fmt.Fprintf(w, "%s %s\n", p.Mood.Icon(), p.Title)
	fmt.Fprintf(w, "Date: %s\n", p.Date.Format("2006-01-02"))
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderMarkdown(p.Body, 80, markdownStyle))
}

// FormatJSON writes any value as indented JSON.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// TodayJSON is the JSON shape of the today command.
type TodayJSON struct {
	Date     string       `json:"date"`
	Recorded bool         `json:"recorded"`
	Record   *mood.Record `json:"record,omitempty"`
}

func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
