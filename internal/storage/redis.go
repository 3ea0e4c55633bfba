package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Jayphen/taskbot/internal/task"
)

const (
	// DefaultRedisURL is the default Redis connection URL.
	DefaultRedisURL = "redis://localhost:6379"
	// DefaultRedisKey is the list key holding the save lines.
	DefaultRedisKey = "taskbot:tasks"
)

// RedisStorage keeps tasks in a Redis list, one save line per element.
type RedisStorage struct {
	rdb *redis.Client
	key string
}

// NewRedisStorage connects to url and checks the connection.
func NewRedisStorage(url, key string) (*RedisStorage, error) {
	if url == "" {
		url = DefaultRedisURL
	}
	if key == "" {
		key = DefaultRedisKey
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStorage{rdb: rdb, key: key}, nil
}

// Load reads the whole list.
func (r *RedisStorage) Load(ctx context.Context) ([]*task.Task, error) {
	tasks, err := r.load(ctx)
	logLoad(BackendRedis, r.key, len(tasks), err)
	return tasks, err
}

// Save replaces the list in a single transaction.
func (r *RedisStorage) Save(ctx context.Context, tasks []*task.Task) error {
	err := r.save(ctx, tasks)
	logSave(BackendRedis, r.key, len(tasks), err)
	return err
}

func (r *RedisStorage) load(ctx context.Context) ([]*task.Task, error) {
	lines, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks from Redis: %w", err)
	}

	tasks := make([]*task.Task, 0, len(lines))
	for i, line := range lines {
		t, err := task.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", r.key, i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *RedisStorage) save(ctx context.Context, tasks []*task.Task) error {
	lines := make([]interface{}, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, task.Encode(t))
	}

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		if len(lines) > 0 {
			pipe.RPush(ctx, r.key, lines...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write tasks to Redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisStorage) Close() error {
	return r.rdb.Close()
}
