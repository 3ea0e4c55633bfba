// Package storage persists the task list between sessions. The whole list is
// written on every save; there is no incremental persistence.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jayphen/taskbot/internal/logging"
	"github.com/Jayphen/taskbot/internal/task"
)

var (
	// ErrUnknownBackend is returned when Options.Backend names no backend.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrInvalidConfig is returned when a backend is missing required options.
	ErrInvalidConfig = errors.New("invalid storage configuration")
)

// Backend identifies where tasks are kept.
type Backend string

const (
	BackendFile  Backend = "file"  // Pipe-delimited text file
	BackendRedis Backend = "redis" // Redis list, one save line per element
)

// Storage loads and saves the ordered task list.
type Storage interface {
	// Load returns the saved tasks in order. A store that has never been
	// saved to returns an empty list.
	Load(ctx context.Context) ([]*task.Task, error)

	// Save replaces the stored list with tasks.
	Save(ctx context.Context, tasks []*task.Task) error

	// Close releases any resources held by the store.
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend  Backend
	FilePath string
	RedisURL string
	RedisKey string
}

// Open creates the Storage described by opts.
func Open(opts Options) (Storage, error) {
	switch opts.Backend {
	case BackendFile, "":
		if opts.FilePath == "" {
			return nil, fmt.Errorf("%w: file storage requires a data file path", ErrInvalidConfig)
		}
		return NewFileStorage(opts.FilePath), nil

	case BackendRedis:
		return NewRedisStorage(opts.RedisURL, opts.RedisKey)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}

func logLoad(backend Backend, location string, n int, err error) {
	log := logging.WithStorage(string(backend)).WithField("location", location)
	if err != nil {
		log.WithError(err).Error("failed to load tasks")
		return
	}
	log.WithField("tasks", n).Info("tasks loaded")
}

func logSave(backend Backend, location string, n int, err error) {
	log := logging.WithStorage(string(backend)).WithField("location", location)
	if err != nil {
		log.WithError(err).Error("failed to save tasks")
		return
	}
	log.WithField("tasks", n).Info("tasks saved")
}
