package command

import (
	"context"
	"errors"
	"time"

	"github.com/Jayphen/taskbot/internal/task"
	"github.com/Jayphen/taskbot/internal/tasklist"
)

// Done marks the task at Index as done.
type Done struct {
	Index int
}

func (Done) Keyword() string { return "done" }

func (c Done) Execute(ctx context.Context, list *tasklist.TaskList, store Store) (Response, error) {
	t, err := list.MarkDone(c.Index)
	if err != nil {
		return Response{}, notFound(err, c.Index)
	}
	if err := persist(ctx, list, store); err != nil {
		return Response{}, err
	}
	return Response{Text: "Nice! I've marked this task as done:\n  " + t.String()}, nil
}

// Delete removes the task at Index.
type Delete struct {
	Index int
}

func (Delete) Keyword() string { return "delete" }

func (c Delete) Execute(ctx context.Context, list *tasklist.TaskList, store Store) (Response, error) {
	t, err := list.Delete(c.Index)
	if err != nil {
		return Response{}, notFound(err, c.Index)
	}
	if err := persist(ctx, list, store); err != nil {
		return Response{}, err
	}
	return Response{Text: "Noted. I've removed this task:\n  " + t.String() + "\n" + countLine(list.Len())}, nil
}

// Add creates a todo, deadline or event. When is ignored for todos.
type Add struct {
	Kind        task.Kind
	Description string
	When        time.Time
	Priority    task.Priority
	Tags        []string
}

func (c Add) Keyword() string {
	switch c.Kind {
	case task.KindDeadline:
		return "deadline"
	case task.KindEvent:
		return "event"
	default:
		return "todo"
	}
}

func (c Add) Execute(ctx context.Context, list *tasklist.TaskList, store Store) (Response, error) {
	var t *task.Task
	var err error
	switch c.Kind {
	case task.KindDeadline:
		t, err = task.NewDeadline(c.Description, c.When, c.Priority, c.Tags)
	case task.KindEvent:
		t, err = task.NewEvent(c.Description, c.When, c.Priority, c.Tags)
	default:
		t, err = task.NewTodo(c.Description, c.Priority, c.Tags)
	}
	if errors.Is(err, task.ErrEmptyDescription) {
		return Response{}, Errorf("The description of a %s cannot be empty.", c.Keyword())
	} else if err != nil {
		return Response{}, Errorf("%v", err)
	}

	list.Add(t)
	if err := persist(ctx, list, store); err != nil {
		return Response{}, err
	}
	return Response{Text: "Got it. I've added this task:\n  " + t.String() + "\n" + countLine(list.Len())}, nil
}

func notFound(err error, index int) error {
	if errors.Is(err, tasklist.ErrTaskNotFound) {
		return Errorf("Task %d not found.", index)
	}
	return Errorf("%v", err)
}
