package task

import "errors"

var (
	// ErrEmptyDescription is returned when a task is created with a blank description.
	ErrEmptyDescription = errors.New("task description is empty")

	// ErrUnknownPriority is returned for a priority outside NONE, LOW, MEDIUM and HIGH.
	ErrUnknownPriority = errors.New("unknown task priority")

	// ErrInvalidRecord is returned when a save line cannot be decoded.
	ErrInvalidRecord = errors.New("invalid task record")
)
