package session

import "testing"

func TestTranscript(t *testing.T) {
	t.Run("append splits lines", func(t *testing.T) {
		tr := NewTranscript(10)

		tr.Append("> list")
		tr.Append("Here are the tasks in your list:\r\n1.[T][ ] read book")

		if tr.Len() != 3 {
			t.Fatalf("expected 3 lines, got %d", tr.Len())
		}
		if got := tr.Lines(1)[0]; got != "1.[T][ ] read book" {
			t.Errorf("last line = %q", got)
		}
	})

	t.Run("max lines trimming", func(t *testing.T) {
		tr := NewTranscript(3)

		for i := 1; i <= 5; i++ {
			tr.Append("line " + string(rune('0'+i)))
		}

		lines := tr.Lines(10)
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines (max), got %d", len(lines))
		}
		if lines[0] != "line 3" || lines[2] != "line 5" {
			t.Errorf("unexpected lines %q", lines)
		}
	})

	t.Run("strips escape sequences", func(t *testing.T) {
		tr := NewTranscript(10)
		tr.Append("\x1b[31mred\x1b[0m text")

		if got := tr.String(); got != "red text" {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("clear", func(t *testing.T) {
		tr := NewTranscript(10)
		tr.Append("a\nb")
		tr.Clear()

		if tr.Len() != 0 || len(tr.Lines(5)) != 0 {
			t.Error("expected empty transcript after Clear")
		}
	})
}
