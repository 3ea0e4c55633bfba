package storage

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Jayphen/taskbot/internal/task"
)

// FileStorage keeps tasks in a text file, one task.Encode line per task.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file store at path. The file and its directory
// are created on the first save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the data file location.
func (f *FileStorage) Path() string {
	return f.path
}

// Load reads every task from the data file. A missing file is an empty list.
func (f *FileStorage) Load(ctx context.Context) ([]*task.Task, error) {
	tasks, err := f.load()
	logLoad(BackendFile, f.path, len(tasks), err)
	return tasks, err
}

// Save rewrites the data file with tasks.
func (f *FileStorage) Save(ctx context.Context, tasks []*task.Task) error {
	err := f.save(tasks)
	logSave(BackendFile, f.path, len(tasks), err)
	return err
}

func (f *FileStorage) load() ([]*task.Task, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	var tasks []*task.Task
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		t, err := task.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", f.path, lineNum, err)
		}
		tasks = append(tasks, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading data file: %w", err)
	}

	return tasks, nil
}

func (f *FileStorage) save(tasks []*task.Task) error {
	var buf bytes.Buffer
	for _, t := range tasks {
		buf.WriteString(task.Encode(t))
		buf.WriteByte('\n')
	}
	if err := atomicWriteFile(f.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

// Close is a no-op for file storage.
func (f *FileStorage) Close() error {
	return nil
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp-%d", time.Now().UnixNano()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
