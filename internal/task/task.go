// Package task defines the tasks tracked by taskbot: todos, deadlines and events.
package task

import (
	"strings"
	"time"
)

// Kind identifies the variant of a task.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// DisplayLayout is how deadline and event times are shown to the user.
const DisplayLayout = "2 Jan 2006, 3:04 PM"

// Task is a unit of tracked work. When is only meaningful for deadlines (due by)
// and events (happening at).
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Priority    Priority
	Tags        []string
	When        time.Time
}

// NewTodo creates a todo with no temporal field.
func NewTodo(description string, priority Priority, tags []string) (*Task, error) {
	return newTask(KindTodo, description, time.Time{}, priority, tags)
}

// NewDeadline creates a task that is due by the given time.
func NewDeadline(description string, by time.Time, priority Priority, tags []string) (*Task, error) {
	return newTask(KindDeadline, description, by, priority, tags)
}

// NewEvent creates a task that happens at the given time.
func NewEvent(description string, at time.Time, priority Priority, tags []string) (*Task, error) {
	return newTask(KindEvent, description, at, priority, tags)
}

func newTask(kind Kind, description string, when time.Time, priority Priority, tags []string) (*Task, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if priority == "" {
		priority = PriorityNone
	}
	return &Task{
		Kind:        kind,
		Description: description,
		Priority:    priority,
		Tags:        append([]string(nil), tags...),
		When:        when,
	}, nil
}

// MarkDone flags the task as completed.
func (t *Task) MarkDone() {
	t.Done = true
}

// IsDue reports whether the task falls on the calendar date of day.
// Todos are never due.
func (t *Task) IsDue(day time.Time) bool {
	if t.Kind == KindTodo {
		return false
	}
	y1, m1, d1 := t.When.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HasAnyTag reports whether the task carries at least one of tags.
func (t *Task) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range t.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Equal compares every field, including the temporal one.
func (t *Task) Equal(o *Task) bool {
	if t.Kind != o.Kind || t.Description != o.Description || t.Done != o.Done || t.Priority != o.Priority {
		return false
	}
	if len(t.Tags) != len(o.Tags) {
		return false
	}
	for i := range t.Tags {
		if t.Tags[i] != o.Tags[i] {
			return false
		}
	}
	return t.When.Equal(o.When)
}

// String renders the task as shown in responses, e.g.
// "[D][✓] submit report (by: 26 Aug 2020, 11:59 PM) !HIGH #work".
func (t *Task) String() string {
	var b strings.Builder
	b.WriteString("[" + string(t.Kind) + "]")
	if t.Done {
		b.WriteString("[✓] ")
	} else {
		b.WriteString("[ ] ")
	}
	b.WriteString(t.Description)

	switch t.Kind {
	case KindDeadline:
		b.WriteString(" (by: " + t.When.Format(DisplayLayout) + ")")
	case KindEvent:
		b.WriteString(" (at: " + t.When.Format(DisplayLayout) + ")")
	}

	if t.Priority != PriorityNone && t.Priority != "" {
		b.WriteString(" !" + string(t.Priority))
	}
	for _, tag := range t.Tags {
		b.WriteString(" #" + tag)
	}
	return b.String()
}
