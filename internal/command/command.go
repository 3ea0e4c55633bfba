// Package command defines the executable commands produced by the parser and
// the single user-facing error kind shared by parsing and execution.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jayphen/taskbot/internal/task"
	"github.com/Jayphen/taskbot/internal/tasklist"
)

// Store persists the whole task list. Mutating commands call Save with the
// full list after every change.
type Store interface {
	Save(ctx context.Context, tasks []*task.Task) error
}

// Response is the text shown to the user after a successful command.
type Response struct {
	Text string
	// Exit is set when the session should end.
	Exit bool
}

// Command is a parsed, immutable user instruction.
type Command interface {
	// Keyword is the word that introduced the command on the input line.
	Keyword() string

	// Execute runs the command against list. It must leave list and store
	// untouched when it fails before mutating.
	Execute(ctx context.Context, list *tasklist.TaskList, store Store) (Response, error)
}

// Error is the error shown verbatim to the user.
type Error struct {
	Message string
}

// Errorf builds an Error from a format string.
func Errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return "☹ OOPS!!! " + e.Message
}

// persist saves the whole list. A failure leaves the in-memory change in
// place.
func persist(ctx context.Context, list *tasklist.TaskList, store Store) error {
	if err := store.Save(ctx, list.Tasks()); err != nil {
		return Errorf("Unable to save tasks: %v", err)
	}
	return nil
}

// enumerate renders tasks as a 1-indexed list under header.
func enumerate(header string, tasks []*task.Task) string {
	var b strings.Builder
	b.WriteString(header)
	for i, t := range tasks {
		fmt.Fprintf(&b, "\n%d.%s", i+1, t)
	}
	return b.String()
}

func countLine(n int) string {
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	return fmt.Sprintf("Now you have %d %s in the list.", n, noun)
}
