package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Jayphen/taskbot/internal/command"
	"github.com/Jayphen/taskbot/internal/task"
)

func fixNow(t *testing.T, now time.Time) {
	t.Helper()
	old := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = old })
}

func assertParseError(t *testing.T, line, contains string) {
	t.Helper()
	_, err := Parse(line)
	var cmdErr *command.Error
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Parse(%q) error = %v, want *command.Error", line, err)
	}
	if !strings.Contains(cmdErr.Message, contains) {
		t.Errorf("Parse(%q) message %q does not contain %q", line, cmdErr.Message, contains)
	}
}

func TestParseSimpleCommands(t *testing.T) {
	fixNow(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local))

	tests := []struct {
		line string
		want command.Command
	}{
		{"bye", command.Exit{}},
		{"list", command.List{}},
		{"  list  ", command.List{}},
		{"due 26/08/2020", command.Due{Date: time.Date(2020, 8, 26, 0, 0, 0, 0, time.Local)}},
		{"find read book", command.Find{Text: "read book"}},
		{"prioritised high", command.Prioritised{Priority: task.PriorityHigh}},
		{"prioritised None", command.Prioritised{Priority: task.PriorityNone}},
		{"tagged fun  work", command.Tagged{Tags: []string{"fun", "work"}}},
		{"done 2", command.Done{Index: 2}},
		{"delete 10", command.Delete{Index: 10}},
		{"done 0", command.Done{Index: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line     string
		contains string
	}{
		{"", "don't understand"},
		{"blah", "don't understand"},
		{"List", "don't understand"},
		{"bye now", "don't understand"},
		{"list all", "don't understand"},
		{"due", "Date required"},
		{"due tomorrow", "Unable to parse date"},
		{"find", "Keyword cannot be blank"},
		{"prioritised BOGUS", "NONE, LOW, MEDIUM or HIGH"},
		{"prioritised", "NONE, LOW, MEDIUM or HIGH"},
		{"done", "Task number required for the done command"},
		{"delete", "Task number required for the delete command"},
		{"done -1", "Only positive integers allowed for the done command"},
		{"delete 1a", "Only positive integers allowed for the delete command"},
		{"delete 1 2", "Only positive integers"},
		{"done 99999999999999999999999", "too large"},
		{"todo read !high !low", "only one task priority"},
		{"todo !high read !high", "only one task priority"},
		{"todo read !urgent", "NONE, LOW, MEDIUM or HIGH"},
		{"deadline submit report", "Unable to parse date"},
		{"deadline submit /by 31/02/2020", "Unable to parse date"},
		{"deadline submit /by 26/08/2020 25:00", "Unable to parse time"},
		{"event party /at 26/08/2020 13:00 PM", "Unable to parse time"},
		{"event party /at 26/08/2020 1:00 PM extra", "Unable to parse time"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assertParseError(t, tt.line, tt.contains)
		})
	}
}

func TestParseTodo(t *testing.T) {
	got, err := Parse("todo read book #fun !high")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := command.Add{
		Kind:        task.KindTodo,
		Description: "read book",
		Priority:    task.PriorityHigh,
		Tags:        []string{"fun"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseDeadline(t *testing.T) {
	got, err := Parse("deadline submit report /by 26/08/2020 23:59")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	add, ok := got.(command.Add)
	if !ok {
		t.Fatalf("got %T, want command.Add", got)
	}
	if add.Kind != task.KindDeadline || add.Description != "submit report" {
		t.Errorf("unexpected command %#v", add)
	}
	want := time.Date(2020, 8, 26, 23, 59, 0, 0, time.Local)
	if !add.When.Equal(want) {
		t.Errorf("When = %v, want %v", add.When, want)
	}
	if add.Priority != task.PriorityNone {
		t.Errorf("Priority = %q, want NONE", add.Priority)
	}
}

func TestParseEventWithMarkersAnywhere(t *testing.T) {
	got, err := Parse("event #work team dinner !medium /at 1/9/20 7:30 pm #food")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	add := got.(command.Add)
	if add.Kind != task.KindEvent || add.Description != "team dinner" {
		t.Errorf("unexpected command %#v", add)
	}
	if !reflect.DeepEqual(add.Tags, []string{"work", "food"}) {
		t.Errorf("Tags = %v", add.Tags)
	}
	if add.Priority != task.PriorityMedium {
		t.Errorf("Priority = %q", add.Priority)
	}
	want := time.Date(2020, 9, 1, 19, 30, 0, 0, time.Local)
	if !add.When.Equal(want) {
		t.Errorf("When = %v, want %v", add.When, want)
	}
}

func TestParseAddArgsDuplicateTags(t *testing.T) {
	arg, err := ParseAddArgs("a #x b #x")
	if err != nil {
		t.Fatalf("ParseAddArgs failed: %v", err)
	}
	if arg.Description != "a b" || !reflect.DeepEqual(arg.Tags, []string{"x", "x"}) {
		t.Errorf("unexpected argument %#v", arg)
	}
}

func TestParseDate(t *testing.T) {
	fixNow(t, time.Date(2031, 5, 5, 12, 0, 0, 0, time.Local))

	tests := []struct {
		input string
		want  time.Time
	}{
		{"26/08", time.Date(2031, 8, 26, 0, 0, 0, 0, time.Local)},
		{"1/2", time.Date(2031, 2, 1, 0, 0, 0, 0, time.Local)},
		{"26/08/20", time.Date(2020, 8, 26, 0, 0, 0, 0, time.Local)},
		{"26/08/2020", time.Date(2020, 8, 26, 0, 0, 0, 0, time.Local)},
		{"29/2/2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"26", "26/13", "0/1", "29/2/2023", "26/08/202", "26-08-2020", "a/b"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input        string
		hour, minute int
		wantErr      bool
	}{
		{"", 0, 0, false},
		{"1:19", 1, 19, false},
		{"23:59", 23, 59, false},
		{"1:19 AM", 1, 19, false},
		{"12:05 AM", 0, 5, false},
		{"12:05 PM", 12, 5, false},
		{"1:19 pm", 13, 19, false},
		{"24:00", 0, 0, true},
		{"0:30 AM", 0, 0, true},
		{"1:60", 0, 0, true},
		{"noon", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hour, minute, err := ParseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTime(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTime failed: %v", err)
			}
			if hour != tt.hour || minute != tt.minute {
				t.Errorf("ParseTime(%q) = %d:%d, want %d:%d", tt.input, hour, minute, tt.hour, tt.minute)
			}
		})
	}
}
