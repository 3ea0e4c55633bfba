package main

import (
	"context"
	"fmt"

	"github.com/Jayphen/taskbot/internal/config"
	"github.com/Jayphen/taskbot/internal/logging"
	"github.com/Jayphen/taskbot/internal/session"
	"github.com/Jayphen/taskbot/internal/storage"
)

// openSession opens the configured storage and loads a session from it.
// The caller closes the returned storage.
func openSession(ctx context.Context, opts ...session.Option) (*session.Session, storage.Storage, *config.Config, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.Open(storage.Options{
		Backend:  storage.Backend(cfg.Storage),
		FilePath: cfg.DataFile,
		RedisURL: cfg.RedisURL,
		RedisKey: cfg.RedisKey,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	logging.WithStorage(cfg.Storage).Debug("storage opened")

	s, err := session.New(ctx, store, opts...)
	if err != nil {
		_ = store.Close()
		return nil, nil, nil, err
	}

	return s, store, cfg, nil
}
