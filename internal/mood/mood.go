// Package mood defines the mood palette and the daily mood record.
package mood

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical calendar day form used as a record key.
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Type is one value of the closed mood enumeration.
type Type string

const (
	Sunny   Type = "sunny"
	Cloudy  Type = "cloudy"
	Rainy   Type = "rainy"
	Stormy  Type = "stormy"
	Rainbow Type = "rainbow"
)

// Option carries the display metadata for a mood.
type Option struct {
	Type  Type
	Icon  string
	Label string
}

var options = []Option{
	{Type: Sunny, Icon: "☀️", Label: "Bright and sunny"},
	{Type: Cloudy, Icon: "⛅", Label: "A little overcast"},
	{Type: Rainy, Icon: "🌧️", Label: "Light rain inside"},
	{Type: Stormy, Icon: "⛈️", Label: "Stormy weather"},
	{Type: Rainbow, Icon: "🌈", Label: "Rainbow after rain"},
}

// All returns the palette in display order.
func All() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Types returns the enumeration values in display order.
func Types() []Type {
	out := make([]Type, len(options))
	for i, o := range options {
		out[i] = o.Type
	}
	return out
}

// Parse converts a string into a Type, rejecting anything outside the palette.
func Parse(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid mood %q: must be one of %s", s, strings.Join(typeNames(), ", "))
	}
	return t, nil
}

// Valid reports whether t is a member of the enumeration.
func (t Type) Valid() bool {
	for _, o := range options {
		if o.Type == t {
			return true
		}
	}
	return false
}

// Option returns the display metadata for t.
func (t Type) Option() (Option, bool) {
	for _, o := range options {
		if o.Type == t {
			return o, true
		}
	}
	return Option{}, false
}

// Index returns the palette position of t, or -1.
func (t Type) Index() int {
	for i, o := range options {
		if o.Type == t {
			return i
		}
	}
	return -1
}

// Icon returns the emoji for t, or an empty string for unknown values.
func (t Type) Icon() string {
	o, _ := t.Option()
	return o.Icon
}

// Label returns the human label for t.
func (t Type) Label() string {
	o, _ := t.Option()
	return o.Label
}

// UnmarshalJSON rejects values outside the enumeration so that an invalid
// mood can never be decoded into a Record.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func typeNames() []string {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = string(o.Type)
	}
	return names
}

// Record is the single mood entry for one calendar day.
type Record struct {
	Date      string `json:"date"`
	Mood      Type   `json:"mood"`
	Note      string `json:"note"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch
}

// DateKey formats t as a local calendar day.
func DateKey(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// ValidateDate checks that s is a real YYYY-MM-DD calendar day.
func ValidateDate(s string) error {
	if !datePattern.MatchString(s) {
		return fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	if _, err := time.ParseInLocation(DateLayout, s, time.Local); err != nil {
		return fmt.Errorf("invalid date %q: %v", s, err)
	}
	return nil
}

// Validate checks the record's date form and mood membership.
func (r Record) Validate() error {
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	if !r.Mood.Valid() {
		return fmt.Errorf("invalid mood %q", r.Mood)
	}
	return nil
}

// Time returns the record's creation instant.
func (r Record) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}
