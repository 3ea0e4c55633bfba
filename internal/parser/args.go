package parser

import (
	"errors"
	"strings"

	"github.com/Jayphen/taskbot/internal/command"
	"github.com/Jayphen/taskbot/internal/task"
)

// Argument is what an add command carries besides its keyword.
type Argument struct {
	Description string
	Priority    task.Priority
	Tags        []string
}

// ParseAddArgs splits the text after todo/deadline/event into description,
// priority (!high) and tags (#fun). Tokens keep their original order.
func ParseAddArgs(s string) (Argument, error) {
	var words, tags, priorities []string
	for _, tok := range strings.Fields(s) {
		switch {
		case strings.HasPrefix(tok, "#"):
			tags = append(tags, tok[1:])
		case strings.HasPrefix(tok, "!"):
			priorities = append(priorities, tok[1:])
		default:
			words = append(words, tok)
		}
	}

	if len(priorities) > 1 {
		return Argument{}, command.Errorf("Please specify only one task priority!")
	}

	priority := task.PriorityNone
	if len(priorities) == 1 {
		p, err := task.ParsePriority(priorities[0])
		if err != nil {
			return Argument{}, priorityError(err)
		}
		priority = p
	}

	return Argument{
		Description: strings.Join(words, " "),
		Priority:    priority,
		Tags:        tags,
	}, nil
}

func priorityError(err error) error {
	if errors.Is(err, task.ErrUnknownPriority) {
		return command.Errorf("Task priority not recognised. Please use one of NONE, LOW, MEDIUM or HIGH.")
	}
	return command.Errorf("%v", err)
}
