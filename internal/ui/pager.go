package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type pagerModel struct {
	viewport viewport.Model
	title    string
	content  string
	theme    Theme
	ready    bool
	maxWidth int // 0 = no limit
	width    int
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		h := max(msg.Height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), h)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = h
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := m.theme.HeaderStyle().Render(m.title)
	footer := m.theme.HelpStyle().Render(fmt.Sprintf("↑/↓ scroll • q quit • %d%%", int(m.viewport.ScrollPercent()*100)))
	return header + "\n" + m.viewport.View() + "\n" + footer
}

// Page writes content to w, opening a scrollable pager instead when w is a
// terminal and the content is taller than it.
func Page(w io.Writer, title, content string, theme Theme, maxWidth int) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := fmt.Fprintln(w, content)
		return err
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || strings.Count(content, "\n")+1 <= height-2 {
		_, err := fmt.Fprintln(w, content)
		return err
	}

	p := tea.NewProgram(pagerModel{title: title, content: content, theme: theme, maxWidth: maxWidth}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
