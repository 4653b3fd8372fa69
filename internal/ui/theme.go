package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/sunspot/internal/config"
)

// WeatherPreset is the preset name that defers to current conditions.
const WeatherPreset = "weather"

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

// Built-in presets. sunny, cloudy and rainy follow the weather theme names.
var presets = map[string]Theme{
	"sunny": {
		Primary:       lipgloss.Color("#3B2F0B"),
		Secondary:     lipgloss.Color("#B7791F"),
		Accent:        lipgloss.Color("#F6AD55"),
		Muted:         lipgloss.Color("#A0845C"),
		Danger:        lipgloss.Color("#C53030"),
		Background:    lipgloss.Color("#FFF8E1"),
		MarkdownStyle: "light",
	},
	"cloudy": {
		Primary:       lipgloss.Color("#E2E8F0"),
		Secondary:     lipgloss.Color("#718096"),
		Accent:        lipgloss.Color("#A0AEC0"),
		Muted:         lipgloss.Color("#4A5568"),
		Danger:        lipgloss.Color("#FC8181"),
		Background:    lipgloss.Color("#2D3748"),
		MarkdownStyle: "dark",
	},
	"rainy": {
		Primary:       lipgloss.Color("#CBD5E0"),
		Secondary:     lipgloss.Color("#2C5282"),
		Accent:        lipgloss.Color("#63B3ED"),
		Muted:         lipgloss.Color("#4A6FA5"),
		Danger:        lipgloss.Color("#FEB2B2"),
		Background:    lipgloss.Color("#1A202C"),
		MarkdownStyle: "dark",
	},
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("214"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("166"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
}

// PresetNames lists the built-in presets.
func PresetNames() []string {
	return []string{"sunny", "cloudy", "rainy", "default-dark", "default-light"}
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides. weatherTheme is used when the
// preset is "weather"; pass "" when no conditions are known.
func ResolveTheme(cfg config.ThemeConfig, weatherTheme string) Theme {
	name := cfg.Preset
	if name == "" || name == WeatherPreset {
		name = weatherTheme
	}

	theme, ok := presets[name]
	if !ok {
		name = "default-dark"
		theme = presets[name]
	}
	theme.Name = name

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Secondary != "" {
		theme.Secondary = lipgloss.Color(cfg.Secondary)
	}
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Danger != "" {
		theme.Danger = lipgloss.Color(cfg.Danger)
	}
	if cfg.Background != "" {
		theme.Background = lipgloss.Color(cfg.Background)
	}
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}

	return theme
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

// AccentStyle returns a lipgloss style for the selected mood and banners.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

// DangerStyle returns a lipgloss style for errors and prompts.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger)
}
