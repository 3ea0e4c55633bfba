// Package logging provides structured logging for taskbot on top of zerolog.
// The console belongs to the user's session, so logs normally go to a
// lumberjack-rotated file and reach stderr only when no file is configured.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level is a zerolog level.
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
)

// Config controls where log entries go.
type Config struct {
	Level Level

	// JSON writes raw JSON to the console instead of zerolog's pretty format.
	JSON bool

	// FilePath enables the rotated log file. Rotation limits are in
	// megabytes, files and days.
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool

	// Console also writes to Output when FilePath is set.
	Console bool

	// Output is the console writer; nil means stderr.
	Output io.Writer
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Level:      InfoLevel,
		JSON:       true,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     7,
		Compress:   true,
	}
}

// Logger is a zerolog logger carrying taskbot's context fields.
type Logger struct {
	zl zerolog.Logger
}

var (
	mu     sync.RWMutex
	global *Logger
)

// Init replaces the global logger. A nil cfg means DefaultConfig.
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var writers []io.Writer
	if cfg.FilePath != "" {
		w, err := fileWriter(cfg)
		if err != nil {
			return err
		}
		writers = append(writers, w)
	}
	if cfg.FilePath == "" || cfg.Console {
		writers = append(writers, consoleWriter(cfg))
	}

	out := writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	l := &Logger{zl: zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()}

	mu.Lock()
	global = l
	mu.Unlock()
	return nil
}

func fileWriter(cfg *Config) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}, nil
}

func consoleWriter(cfg *Config) io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.JSON {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}

// Get returns the global logger, initializing it with defaults on first use.
func Get() *Logger {
	mu.RLock()
	l := global
	mu.RUnlock()
	if l != nil {
		return l
	}

	_ = Init(nil)
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// WithStorage returns the global logger tagged with a storage backend.
func WithStorage(backend string) *Logger {
	return Get().WithStorage(backend)
}

// WithCommand tags entries with the command keyword being executed.
func (l *Logger) WithCommand(keyword string) *Logger {
	return &Logger{zl: l.zl.With().Str("command", keyword).Logger()}
}

// WithStorage tags entries with the storage backend.
func (l *Logger) WithStorage(backend string) *Logger {
	return &Logger{zl: l.zl.With().Str("storage", backend).Logger()}
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{zl: l.zl.With().Err(err).Logger()}
}

func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.zl.Warn().Msg(msg) }
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }

// ParseLevel parses "debug", "info", "warn" or "error".
func ParseLevel(level string) (Level, error) {
	return zerolog.ParseLevel(level)
}

// LoggingConfig is the logging section of the config file, with the level
// still in text form.
type LoggingConfig struct {
	Level      string
	FilePath   string
	JSON       bool
	Console    bool
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// InitFromLogConfig initializes the global logger from the config file
// section. Zero rotation limits keep the defaults.
func InitFromLogConfig(lc LoggingConfig) error {
	cfg := DefaultConfig()
	if lc.Level != "" {
		level, err := ParseLevel(lc.Level)
		if err != nil {
			return err
		}
		cfg.Level = level
	}

	cfg.FilePath = lc.FilePath
	cfg.JSON = lc.JSON
	cfg.Console = lc.Console
	cfg.Compress = lc.Compress
	cfg.MaxSize = positiveOr(lc.MaxSize, cfg.MaxSize)
	cfg.MaxBackups = positiveOr(lc.MaxBackups, cfg.MaxBackups)
	cfg.MaxAge = positiveOr(lc.MaxAge, cfg.MaxAge)

	return Init(cfg)
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
