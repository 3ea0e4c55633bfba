// Package tasklist holds the in-memory, 1-indexed list of tasks owned by a session.
//
// A TaskList is not safe for concurrent use. A session executes one command
// at a time; callers that need concurrent access must wrap the whole list in
// a single lock.
package tasklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Jayphen/taskbot/internal/task"
)

// ErrTaskNotFound is returned when an index falls outside [1, Len()].
var ErrTaskNotFound = errors.New("task not found")

// TaskList is an ordered collection of tasks addressed by 1-based position.
type TaskList struct {
	tasks []*task.Task
}

// New creates a list holding tasks in the given order.
func New(tasks []*task.Task) *TaskList {
	return &TaskList{tasks: append([]*task.Task(nil), tasks...)}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns the tasks in order. The slice is a copy; the tasks are not.
func (l *TaskList) Tasks() []*task.Task {
	return append([]*task.Task(nil), l.tasks...)
}

// Add appends t to the end of the list.
func (l *TaskList) Add(t *task.Task) {
	l.tasks = append(l.tasks, t)
}

// Get returns the task at 1-based index.
func (l *TaskList) Get(index int) (*task.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	return l.tasks[index-1], nil
}

// MarkDone flags the task at 1-based index as done and returns it.
func (l *TaskList) MarkDone(index int) (*task.Task, error) {
	t, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	t.MarkDone()
	return t, nil
}

// Delete removes the task at 1-based index and returns it. Later tasks shift
// down by one.
func (l *TaskList) Delete(index int) (*task.Task, error) {
	if err := l.checkIndex(index); err != nil {
		return nil, err
	}
	removed := l.tasks[index-1]
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	return removed, nil
}

// FindByKeyword returns tasks whose description contains keyword.
// Matching is case-sensitive.
func (l *TaskList) FindByKeyword(keyword string) []*task.Task {
	return l.filter(func(t *task.Task) bool {
		return strings.Contains(t.Description, keyword)
	})
}

// FilterByDueDate returns deadlines and events falling on the date of day.
func (l *TaskList) FilterByDueDate(day time.Time) []*task.Task {
	return l.filter(func(t *task.Task) bool {
		return t.IsDue(day)
	})
}

// FilterByPriority returns tasks with exactly priority p.
func (l *TaskList) FilterByPriority(p task.Priority) []*task.Task {
	return l.filter(func(t *task.Task) bool {
		return t.Priority == p
	})
}

// FilterByTag returns tasks carrying at least one of tags.
func (l *TaskList) FilterByTag(tags []string) []*task.Task {
	return l.filter(func(t *task.Task) bool {
		return t.HasAnyTag(tags)
	})
}

func (l *TaskList) filter(keep func(*task.Task) bool) []*task.Task {
	var out []*task.Task
	for _, t := range l.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (l *TaskList) checkIndex(index int) error {
	if index < 1 || index > len(l.tasks) {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, index)
	}
	return nil
}
