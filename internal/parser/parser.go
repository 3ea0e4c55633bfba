// Package parser turns a raw input line into a command.Command.
package parser

import (
	"strconv"
	"strings"

	"github.com/Jayphen/taskbot/internal/command"
	"github.com/Jayphen/taskbot/internal/task"
)

// Keywords lists every command keyword the parser understands.
var Keywords = []string{
	"bye", "list", "due", "find", "prioritised", "tagged",
	"done", "delete", "todo", "deadline", "event",
}

// Parse converts line into a command. Errors are *command.Error values
// carrying the message to show the user.
func Parse(line string) (command.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, unknownCommand()
	}
	keyword := fields[0]
	args := strings.Join(fields[1:], " ")

	switch keyword {
	case "bye":
		if args != "" {
			return nil, unknownCommand()
		}
		return command.Exit{}, nil

	case "list":
		if args != "" {
			return nil, unknownCommand()
		}
		return command.List{}, nil

	case "due":
		if args == "" {
			return nil, command.Errorf("Date required for the due command.")
		}
		date, err := ParseDate(args)
		if err != nil {
			return nil, err
		}
		return command.Due{Date: date}, nil

	case "find":
		if args == "" {
			return nil, command.Errorf("Keyword cannot be blank.")
		}
		return command.Find{Text: args}, nil

	case "prioritised":
		p, err := task.ParsePriority(args)
		if err != nil {
			return nil, priorityError(err)
		}
		return command.Prioritised{Priority: p}, nil

	case "tagged":
		return command.Tagged{Tags: strings.Fields(args)}, nil

	case "done":
		index, err := parseIndex(keyword, args)
		if err != nil {
			return nil, err
		}
		return command.Done{Index: index}, nil

	case "delete":
		index, err := parseIndex(keyword, args)
		if err != nil {
			return nil, err
		}
		return command.Delete{Index: index}, nil

	case "todo":
		arg, err := ParseAddArgs(args)
		if err != nil {
			return nil, err
		}
		return command.Add{
			Kind:        task.KindTodo,
			Description: arg.Description,
			Priority:    arg.Priority,
			Tags:        arg.Tags,
		}, nil

	case "deadline":
		return parseTimedAdd(task.KindDeadline, " /by ", args)

	case "event":
		return parseTimedAdd(task.KindEvent, " /at ", args)

	default:
		return nil, unknownCommand()
	}
}

// parseTimedAdd handles deadline and event, whose description carries the
// date-time after sep.
func parseTimedAdd(kind task.Kind, sep, args string) (command.Command, error) {
	arg, err := ParseAddArgs(args)
	if err != nil {
		return nil, err
	}

	description, dateTime, _ := strings.Cut(arg.Description, sep)
	when, err := ParseDateTime(dateTime)
	if err != nil {
		return nil, err
	}

	return command.Add{
		Kind:        kind,
		Description: description,
		When:        when,
		Priority:    arg.Priority,
		Tags:        arg.Tags,
	}, nil
}

func parseIndex(keyword, args string) (int, error) {
	if args == "" {
		return 0, command.Errorf("Task number required for the %s command.", keyword)
	}
	for _, r := range args {
		if r < '0' || r > '9' {
			return 0, command.Errorf("Only positive integers allowed for the %s command.", keyword)
		}
	}
	index, err := strconv.Atoi(args)
	if err != nil {
		return 0, command.Errorf("Task number %s is too large.", args)
	}
	return index, nil
}

func unknownCommand() error {
	return command.Errorf("I don't understand that command.")
}
