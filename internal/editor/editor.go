// Package editor opens a note in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// EditNote opens note in editorCmd and returns the trimmed result. changed
// is false when the saved text matches the original after trimming. An
// emptied file clears the note.
func EditNote(editorCmd string, note string) (result string, changed bool, err error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return "", false, fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "sunspot-note-*.md")
	if err != nil {
		return "", false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(note); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("writing temp file: %w", err)
	}
	tmp.Close()

	cmd := exec.Command(parts[0], append(parts[1:], tmpName)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}

	result = strings.TrimSpace(string(data))
	return result, result != strings.TrimSpace(note), nil
}
