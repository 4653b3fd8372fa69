package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type rendererKey struct {
	width int
	style string
}

var (
	markdownMu        sync.Mutex
	markdownRenderers = map[rendererKey]*glamour.TermRenderer{}
)

// markdownRenderer returns a cached glamour renderer for width and style.
func markdownRenderer(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	k := rendererKey{width: width, style: style}

	markdownMu.Lock()
	defer markdownMu.Unlock()
	if r, ok := markdownRenderers[k]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdownRenderers[k] = r
	return r, nil
}

// RenderMarkdown renders note or post text as terminal markdown. On any
// rendering failure the input is returned unchanged.
func RenderMarkdown(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	r, err := markdownRenderer(width, style)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
