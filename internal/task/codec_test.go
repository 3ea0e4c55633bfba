package task

import (
	"errors"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	when := time.Date(2020, 8, 26, 23, 59, 0, 0, time.Local)

	todo, _ := NewTodo("read book", PriorityHigh, []string{"fun", "fun"})
	deadline, _ := NewDeadline("submit report", when, PriorityNone, nil)
	deadline.MarkDone()
	event, _ := NewEvent("team | offsite", when, PriorityMedium, []string{"work"})
	trailingPipe, _ := NewTodo("fix pipe |", PriorityNone, nil)
	timedPipe, _ := NewDeadline("x |", when, PriorityNone, nil)
	commaTag, _ := NewTodo("buy", PriorityNone, []string{"a,b"})
	emptyTag, _ := NewTodo("odd", PriorityNone, []string{""})
	escapes, _ := NewTodo(`C:\temp \| notes`, PriorityLow, []string{`x|y`, `back\slash`, "#hash", ""})

	for _, original := range []*Task{todo, deadline, event, trailingPipe, timedPipe, commaTag, emptyTag, escapes} {
		t.Run(original.Description, func(t *testing.T) {
			line := Encode(original)
			decoded, err := Decode(line)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", line, err)
			}
			if !decoded.Equal(original) {
				t.Errorf("round trip mismatch:\n got  %+v\n want %+v", decoded, original)
			}
		})
	}
}

func TestEncodeFormat(t *testing.T) {
	when := time.Date(2020, 8, 26, 23, 59, 0, 0, time.Local)
	deadline, _ := NewDeadline("submit report", when, PriorityLow, []string{"a", "b"})

	want := "D | 0 | submit report | LOW | #a,#b | 2020-08-26T23:59"
	if got := Encode(deadline); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	todo, _ := NewTodo("fix pipe |", PriorityNone, []string{"a,b", ""})
	want = `T | 0 | fix pipe \| | NONE | #a\,b,#`
	if got := Encode(todo); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestDecodeUnmarkedTags(t *testing.T) {
	decoded, err := Decode("T | 0 | read book | NONE | fun,home")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded.Tags) != 2 || decoded.Tags[0] != "fun" || decoded.Tags[1] != "home" {
		t.Errorf("Tags = %q, want [fun home]", decoded.Tags)
	}
}

func TestDecodeSecondsLayout(t *testing.T) {
	decoded, err := Decode("E | 0 | party | NONE |  | 2020-08-26T23:59:00")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.When.Hour() != 23 || decoded.When.Minute() != 59 {
		t.Errorf("When = %v, want 23:59", decoded.When)
	}
}

func TestDecodeInvalid(t *testing.T) {
	lines := []string{
		"",
		"T | 0 | read book",
		"X | 0 | read book | NONE | ",
		"T | 2 | read book | NONE | ",
		"T | 0 | read book | URGENT | ",
		"D | 0 | submit | NONE | ",
		"D | 0 | submit | NONE |  | tomorrow",
		"T | 0 |   | NONE | ",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			if _, err := Decode(line); !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidRecord", line, err)
			}
		})
	}
}
