package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderHeader renders the application header.
func (m *Model) renderHeader() string {
	title := TitleStyle.Render("taskbot")
	version := ""
	if m.version != "" {
		version = " " + SubtitleStyle.Render("v"+m.version)
	}
	subtitle := SubtitleStyle.Render("Your personal task assistant")

	return title + version + "\n" + subtitle
}

// renderTranscript styles and wraps every transcript line to the viewport width.
func (m *Model) renderTranscript() string {
	width := m.viewport.Width
	lines := m.transcript.Lines(m.transcript.Len())

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		if width > 0 {
			line = ansi.Wordwrap(line, width, "")
		}
		rendered = append(rendered, styleLine(line))
	}
	return strings.Join(rendered, "\n")
}

// styleLine colours echoed input, errors and task lines.
func styleLine(line string) string {
	switch {
	case strings.HasPrefix(line, InputPrefix):
		return InputEchoStyle.Render(line)
	case strings.HasPrefix(line, ErrorPrefix):
		return ErrorStyle.Render(line)
	case strings.Contains(line, "[✓]"):
		return DoneStyle.Render(line)
	}

	for _, p := range []string{"HIGH", "MEDIUM", "LOW"} {
		if strings.Contains(line, " !"+p) {
			return GetPriorityStyle(p).Render(line)
		}
	}
	return line
}

// renderPrompt renders the input box, with a spinner while a command runs.
func (m *Model) renderPrompt() string {
	if m.busy {
		return PromptBoxStyle.Render(m.spinner.View() + " Working...")
	}
	return PromptBoxStyle.Render(m.input.View())
}

// renderHelp renders the key hints.
func (m *Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"enter", "run"},
		{"↑/↓", "scroll"},
		{"esc", "quit"},
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, HelpKeyStyle.Render(k.key)+" "+HelpTextStyle.Render(k.desc))
	}
	return DimStyle.Render(" ") + strings.Join(parts, DimStyle.Render(" • "))
}
