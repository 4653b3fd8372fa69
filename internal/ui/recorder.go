package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/sunspot/internal/clock"
	"github.com/chris-regnier/sunspot/internal/mood"
	"github.com/chris-regnier/sunspot/internal/session"
	"github.com/chris-regnier/sunspot/internal/weather"
)

const (
	notePlaceholder = "How does today feel..."
	maxNoteLength   = 2000
)

type recorderFocus int

const (
	focusPalette recorderFocus = iota
	focusNote
)

// resetMsg is sent from the controller's reset hook.
type resetMsg struct{}

// submitDoneMsg carries the result of a submit.
type submitDoneMsg struct{ err error }

type recorderKeys struct {
	Prev   key.Binding
	Next   key.Binding
	Pick   key.Binding
	Focus  key.Binding
	Back   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func (k recorderKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pick, k.Focus, k.Submit, k.Quit}
}

func (k recorderKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newRecorderKeys() recorderKeys {
	return recorderKeys{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "pick")),
		Focus:  key.NewBinding(key.WithKeys("tab", "enter"), key.WithHelp("tab", "note")),
		Back:   key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "palette")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "record")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// RecorderConfig holds what RunRecorder needs to build a session.
type RecorderConfig struct {
	Store    session.RecordStore
	Clock    clock.Clock
	Renderer *Renderer
	// Weather is shown above the palette when non-nil.
	Weather *weather.Weather
	// Options are passed to session.New. RunRecorder adds its own reset hook.
	Options []session.Option
}

type recorderModel struct {
	ctrl    *session.Controller
	render  *Renderer
	weather *weather.Weather
	keys    recorderKeys
	help    help.Model
	note    textarea.Model
	focus   recorderFocus
	state   session.State
	hint    string
}

func newRecorderModel(ctrl *session.Controller, r *Renderer, w *weather.Weather) recorderModel {
	ta := textarea.New()
	ta.Placeholder = notePlaceholder
	ta.CharLimit = maxNoteLength
	ta.ShowLineNumbers = false
	ta.Cursor.SetMode(cursor.CursorStatic)
	ta.SetWidth(r.Width() - 4)
	ta.SetHeight(3)

	state := ctrl.Snapshot()
	ta.SetValue(state.Note)
	ta.Blur()

	return recorderModel{
		ctrl:    ctrl,
		render:  r,
		weather: w,
		keys:    newRecorderKeys(),
		help:    help.New(),
		note:    ta,
		focus:   focusPalette,
		state:   state,
	}
}

func (m recorderModel) Init() tea.Cmd {
	return nil
}

func (m recorderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetMsg:
		m.state = m.ctrl.Snapshot()
		m.note.Reset()
		m.note.Blur()
		m.focus = focusPalette
		m.hint = ""
		return m, nil

	case submitDoneMsg:
		m.state = m.ctrl.Snapshot()
		m.hint = ""
		if errors.Is(msg.err, session.ErrNoMood) {
			m.hint = "pick a mood first"
		}
		if m.state.Phase == session.Confirmed {
			m.note.Blur()
			m.focus = focusPalette
		}
		return m, nil

	case tea.WindowSizeMsg:
		w := min(msg.Width-8, m.render.Width()-4)
		if w > 10 {
			m.note.SetWidth(w)
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Submit) {
			return m, m.submitCmd()
		}
		if m.focus == focusNote {
			return m.updateNote(msg)
		}
		return m.updatePalette(msg)
	}
	return m, nil
}

func (m recorderModel) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.selectAt(m.selectedIndex() - 1)
	case key.Matches(msg, m.keys.Next):
		m.selectAt(m.selectedIndex() + 1)
	case key.Matches(msg, m.keys.Pick):
		m.selectAt(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusNote
		return m, m.note.Focus()
	}
	return m, nil
}

func (m recorderModel) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.note.Blur()
		m.focus = focusPalette
		return m, nil
	}

	var cmd tea.Cmd
	before := m.note.Value()
	m.note, cmd = m.note.Update(msg)
	if after := m.note.Value(); after != before {
		if err := m.ctrl.EditNote(after); err == nil {
			m.state = m.ctrl.Snapshot()
		}
	}
	return m, cmd
}

// selectedIndex returns the palette index of the selection, or -1.
func (m *recorderModel) selectedIndex() int {
	return m.state.SelectedMood.Index()
}

// selectAt selects the mood at palette index i, wrapping around.
func (m *recorderModel) selectAt(i int) {
	types := mood.Types()
	n := len(types)
	i = ((i % n) + n) % n
	if err := m.ctrl.SelectMood(types[i]); err == nil {
		m.state = m.ctrl.Snapshot()
		m.hint = ""
	}
}

func (m recorderModel) submitCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return submitDoneMsg{err: ctrl.Submit()}
	}
}

func (m recorderModel) View() string {
	r := m.render
	var b strings.Builder

	b.WriteString(r.Title())
	b.WriteString("\n\n")
	if m.weather != nil {
		b.WriteString(r.Weather(*m.weather))
		b.WriteString("\n\n")
	}
	b.WriteString(r.Palette(m.state.SelectedMood))
	b.WriteString("\n\n")
	b.WriteString(m.note.View())
	b.WriteString("\n\n")
	b.WriteString(r.SubmitButton(m.state.SelectedMood != "", m.state.IsSubmitted))
	if m.state.Err != nil {
		b.WriteString("\n")
		b.WriteString(r.Error(m.state.Err))
	}
	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(r.Theme().HelpStyle().Render(m.hint))
	}

	out := r.Frame(b.String())
	if m.state.LastSaved != nil {
		out += "\n" + r.Frame(r.Summary(*m.state.LastSaved))
	}
	return out + "\n" + m.help.View(m.keys) + "\n"
}

// RunRecorder opens the interactive recorder until the user quits.
func RunRecorder(cfg RecorderConfig) error {
	var p *tea.Program
	opts := append([]session.Option{}, cfg.Options...)
	opts = append(opts, session.WithOnReset(func() {
		if p != nil {
			p.Send(resetMsg{})
		}
	}))

	ctrl := session.New(cfg.Store, cfg.Clock, opts...)
	defer ctrl.Close()

	p = tea.NewProgram(newRecorderModel(ctrl, cfg.Renderer, cfg.Weather))
	_, err := p.Run()
	return err
}
