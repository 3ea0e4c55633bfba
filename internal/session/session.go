// Package session ties the parser, the task list and storage together. A
// Session reads one line at a time, executes it to completion and returns the
// response for the front-end to render.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Jayphen/taskbot/internal/command"
	"github.com/Jayphen/taskbot/internal/logging"
	"github.com/Jayphen/taskbot/internal/notify"
	"github.com/Jayphen/taskbot/internal/parser"
	"github.com/Jayphen/taskbot/internal/storage"
	"github.com/Jayphen/taskbot/internal/task"
	"github.com/Jayphen/taskbot/internal/tasklist"
)

// Session owns the task list for the lifetime of one run. It is not safe for
// concurrent use.
type Session struct {
	list   *tasklist.TaskList
	store  storage.Storage
	log    *logging.Logger
	notify func(title, message string) error
	done   bool
}

// Option customises a Session.
type Option func(*Session)

// WithNotifier replaces the desktop notifier used by Remind. One-shot commands
// pass notify.SendWait so the notification is shown before the process exits.
func WithNotifier(fn func(title, message string) error) Option {
	return func(s *Session) {
		s.notify = fn
	}
}

// WithLogger replaces the global logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// New loads the task list from store. A load failure is fatal: there is no
// list to work on.
func New(ctx context.Context, store storage.Storage, opts ...Option) (*Session, error) {
	s := &Session{
		store:  store,
		log:    logging.Get(),
		notify: sendAsync,
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := store.Load(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to load tasks")
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	s.list = tasklist.New(tasks)
	s.log.WithField("tasks", s.list.Len()).Debug("session started")

	return s, nil
}

// Handle parses and executes one input line. Errors are *command.Error
// values meant to be shown to the user as is.
func (s *Session) Handle(ctx context.Context, line string) (command.Response, error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		s.log.WithError(err).WithField("line", line).Warn("parse failed")
		return command.Response{}, err
	}

	log := s.log.WithCommand(cmd.Keyword())
	resp, err := cmd.Execute(ctx, s.list, s.store)
	if err != nil {
		log.WithError(err).Warn("command failed")
		return command.Response{}, err
	}

	log.WithField("tasks", s.list.Len()).Debug("command executed")
	if resp.Exit {
		s.done = true
	}
	return resp, nil
}

// Done reports whether an exit command has run.
func (s *Session) Done() bool {
	return s.done
}

// Tasks returns the current tasks in order.
func (s *Session) Tasks() []*task.Task {
	return s.list.Tasks()
}

// DueToday returns the unfinished deadlines and events falling on now's date.
func (s *Session) DueToday(now time.Time) []*task.Task {
	var due []*task.Task
	for _, t := range s.list.FilterByDueDate(now) {
		if !t.Done {
			due = append(due, t)
		}
	}
	return due
}

// Greeting is the first message of a session, listing anything due today.
func (s *Session) Greeting(now time.Time) string {
	var b strings.Builder
	b.WriteString("Hello! I'm taskbot.\nWhat can I do for you?")

	due := s.DueToday(now)
	if len(due) > 0 {
		b.WriteString("\n\nDue today:")
		for i, t := range due {
			fmt.Fprintf(&b, "\n%d.%s", i+1, t)
		}
	}
	return b.String()
}

// Remind sends one desktop notification covering every task due today and
// returns how many tasks it covered. Nothing is sent when nothing is due.
func (s *Session) Remind(now time.Time) (int, error) {
	due := s.DueToday(now)
	if len(due) == 0 {
		return 0, nil
	}

	lines := make([]string, len(due))
	for i, t := range due {
		lines[i] = t.String()
	}
	title, message := notify.Reminder(lines)
	if err := s.notify(title, message); err != nil {
		s.log.WithError(err).Warn("reminder failed")
		return len(due), fmt.Errorf("failed to send reminder: %w", err)
	}
	s.log.WithField("due", len(due)).Info("reminder sent")
	return len(due), nil
}

func sendAsync(title, message string) error {
	notify.Send(title, message)
	return nil
}

// Import appends todolist items as todos and saves once. Item text goes
// through the add-argument rules, so "#tag" and "!priority" markers apply.
// Items that cannot become a todo are skipped and reported.
func (s *Session) Import(ctx context.Context, items []storage.TodolistItem) (command.Response, error) {
	var added int
	var skipped []string

	for _, item := range items {
		arg, err := parser.ParseAddArgs(item.Text)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("line %d: %v", item.Line, err))
			continue
		}
		t, err := task.NewTodo(arg.Description, arg.Priority, arg.Tags)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("line %d: %v", item.Line, err))
			continue
		}
		if item.Done {
			t.MarkDone()
		}
		s.list.Add(t)
		added++
	}

	if added > 0 {
		if err := s.store.Save(ctx, s.list.Tasks()); err != nil {
			s.log.WithError(err).Error("failed to save imported tasks")
			return command.Response{}, command.Errorf("Unable to save tasks: %v", err)
		}
	}
	s.log.WithFields(map[string]interface{}{"added": added, "skipped": len(skipped)}).Info("todolist imported")

	noun := "tasks"
	if added == 1 {
		noun = "task"
	}
	text := fmt.Sprintf("Imported %d %s. Now you have %d in the list.", added, noun, s.list.Len())
	if len(skipped) > 0 {
		text += "\nSkipped:\n  " + strings.Join(skipped, "\n  ")
	}
	return command.Response{Text: text}, nil
}
