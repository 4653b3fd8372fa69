package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/sunspot/internal/mood"
	"github.com/chris-regnier/sunspot/internal/weather"
)

// Variant selects the frame drawn around the recorder.
type Variant string

const (
	VariantPlain Variant = "plain"
	VariantCard  Variant = "card"
	VariantGlass Variant = "glass"
)

const (
	titleText       = "Today's inner weather"
	submitText      = "Record mood"
	submittedText   = "✓ Recorded"
	recordedTodayAt = "Recorded today"
)

// ParseVariant returns the named variant, or card for anything unknown.
func ParseVariant(s string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantPlain:
		return VariantPlain
	case VariantGlass:
		return VariantGlass
	default:
		return VariantCard
	}
}

// Renderer draws the recorder pieces for one theme and variant.
type Renderer struct {
	theme   Theme
	variant Variant
	width   int
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithVariant sets the frame variant.
func WithVariant(v Variant) RenderOption {
	return func(r *Renderer) { r.variant = v }
}

// WithWidth sets the content width in cells. Values below 20 are ignored.
func WithWidth(w int) RenderOption {
	return func(r *Renderer) {
		if w >= 20 {
			r.width = w
		}
	}
}

// NewRenderer returns a card-variant renderer 60 cells wide unless overridden.
func NewRenderer(theme Theme, opts ...RenderOption) *Renderer {
	r := &Renderer{theme: theme, variant: VariantCard, width: 60}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() Theme { return r.theme }

// Variant returns the renderer's frame variant.
func (r *Renderer) Variant() Variant { return r.variant }

// Width returns the content width.
func (r *Renderer) Width() int { return r.width }

// Frame wraps content in the variant's border.
func (r *Renderer) Frame(content string) string {
	switch r.variant {
	case VariantPlain:
		return content
	case VariantGlass:
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(r.theme.Muted).
			Background(r.theme.Background).
			Foreground(r.theme.Primary).
			Padding(1, 3).
			Width(r.width).
			Render(content)
	default:
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(r.theme.Secondary).
			Padding(1, 2).
			Width(r.width).
			Render(content)
	}
}

// Title renders the recorder heading.
func (r *Renderer) Title() string {
	return r.theme.HeaderStyle().Render(titleText)
}

// Palette renders the five mood buttons, marking the selected one.
func (r *Renderer) Palette(selected mood.Type) string {
	buttons := make([]string, 0, len(mood.All()))
	for i, opt := range mood.All() {
		label := fmt.Sprintf("%d %s", i+1, opt.Icon)
		if opt.Type == selected {
			buttons = append(buttons, r.theme.AccentStyle().Render("["+label+"]"))
		} else {
			buttons = append(buttons, r.theme.HelpStyle().Render(" "+label+" "))
		}
	}
	row := strings.Join(buttons, " ")

	caption := "pick a mood"
	if selected.Valid() {
		caption = selected.Label()
	}
	return row + "\n" + r.theme.HelpStyle().Render(caption)
}

// SubmitButton renders the submit control for the given readiness.
func (r *Renderer) SubmitButton(hasMood, submitted bool) string {
	switch {
	case submitted:
		return r.theme.AccentStyle().Render(submittedText)
	case hasMood:
		return r.theme.HeaderStyle().Render("ctrl+s " + submitText)
	default:
		return r.theme.HelpStyle().Render("ctrl+s " + submitText)
	}
}

// Summary renders the persistent "recorded today" card for a saved record.
func (r *Renderer) Summary(rec mood.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", rec.Mood.Icon(), r.theme.HeaderStyle().Render(rec.Mood.Label()))
	b.WriteString(r.theme.HelpStyle().Render(recordedTodayAt))
	if rec.Note != "" {
		fmt.Fprintf(&b, "\n“%s”", rec.Note)
	}
	return b.String()
}

// Weather renders a one-line ambient conditions strip.
func (r *Renderer) Weather(w weather.Weather) string {
	return r.theme.HelpStyle().Render(fmt.Sprintf("%s %d°C %s", w.Icon, w.Temperature, w.Description))
}

// Error renders a non-fatal error notice.
func (r *Renderer) Error(err error) string {
	return r.theme.DangerStyle().Render("could not save: " + err.Error())
}
