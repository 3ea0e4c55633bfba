package session

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Transcript is a bounded scrollback of what was said in a session, used by
// front-ends that redraw the conversation.
type Transcript struct {
	lines    []string
	maxLines int
}

// NewTranscript creates a transcript keeping at most maxLines lines.
func NewTranscript(maxLines int) *Transcript {
	if maxLines <= 0 {
		maxLines = 1000
	}
	return &Transcript{
		lines:    make([]string, 0, maxLines),
		maxLines: maxLines,
	}
}

// Append adds text, split into lines. Escape sequences are stripped so that
// pasted input cannot restyle the terminal.
func (t *Transcript) Append(text string) {
	text = ansi.Strip(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	t.lines = append(t.lines, strings.Split(text, "\n")...)

	if len(t.lines) > t.maxLines {
		t.lines = t.lines[len(t.lines)-t.maxLines:]
	}
}

// Lines returns the last n lines.
func (t *Transcript) Lines(n int) []string {
	if n <= 0 {
		return []string{}
	}
	if n > len(t.lines) {
		n = len(t.lines)
	}

	result := make([]string, n)
	copy(result, t.lines[len(t.lines)-n:])
	return result
}

// String joins every line.
func (t *Transcript) String() string {
	return strings.Join(t.lines, "\n")
}

// Len returns the number of lines held.
func (t *Transcript) Len() int {
	return len(t.lines)
}

// Clear empties the transcript.
func (t *Transcript) Clear() {
	t.lines = make([]string, 0, t.maxLines)
}
