package command

import (
	"context"
	"strings"
	"time"

	"github.com/Jayphen/taskbot/internal/task"
	"github.com/Jayphen/taskbot/internal/tasklist"
)

// Exit ends the session.
type Exit struct{}

func (Exit) Keyword() string { return "bye" }

func (Exit) Execute(context.Context, *tasklist.TaskList, Store) (Response, error) {
	return Response{Text: "Bye. Hope to see you again soon!", Exit: true}, nil
}

// List shows every task.
type List struct{}

func (List) Keyword() string { return "list" }

func (List) Execute(_ context.Context, list *tasklist.TaskList, _ Store) (Response, error) {
	if list.Len() == 0 {
		return Response{}, Errorf("There are no tasks in your list.")
	}
	return Response{Text: enumerate("Here are the tasks in your list:", list.Tasks())}, nil
}

// Due shows deadlines and events on a calendar date.
type Due struct {
	Date time.Time
}

func (Due) Keyword() string { return "due" }

func (c Due) Execute(_ context.Context, list *tasklist.TaskList, _ Store) (Response, error) {
	day := c.Date.Format("2 Jan 2006")
	tasks := list.FilterByDueDate(c.Date)
	if len(tasks) == 0 {
		return Response{}, Errorf("There are no tasks due on %s.", day)
	}
	return Response{Text: enumerate("Here are the tasks due on "+day+":", tasks)}, nil
}

// Find shows tasks whose description contains Text.
type Find struct {
	Text string
}

func (Find) Keyword() string { return "find" }

func (c Find) Execute(_ context.Context, list *tasklist.TaskList, _ Store) (Response, error) {
	tasks := list.FindByKeyword(c.Text)
	if len(tasks) == 0 {
		return Response{}, Errorf("There are no tasks matching %q.", c.Text)
	}
	return Response{Text: enumerate("Here are the matching tasks in your list:", tasks)}, nil
}

// Prioritised shows tasks with exactly the given priority.
type Prioritised struct {
	Priority task.Priority
}

func (Prioritised) Keyword() string { return "prioritised" }

func (c Prioritised) Execute(_ context.Context, list *tasklist.TaskList, _ Store) (Response, error) {
	tasks := list.FilterByPriority(c.Priority)
	if len(tasks) == 0 {
		return Response{}, Errorf("There are no tasks with %s priority.", c.Priority)
	}
	return Response{Text: enumerate("Here are the tasks with "+c.Priority.String()+" priority:", tasks)}, nil
}

// Tagged shows tasks carrying any of Tags.
type Tagged struct {
	Tags []string
}

func (Tagged) Keyword() string { return "tagged" }

func (c Tagged) Execute(_ context.Context, list *tasklist.TaskList, _ Store) (Response, error) {
	label := "#" + strings.Join(c.Tags, " #")
	tasks := list.FilterByTag(c.Tags)
	if len(tasks) == 0 {
		return Response{}, Errorf("There are no tasks tagged with %s.", label)
	}
	return Response{Text: enumerate("Here are the tasks tagged with "+label+":", tasks)}, nil
}
