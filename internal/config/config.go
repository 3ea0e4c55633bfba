// Package config handles loading and managing configuration for taskbot.
// It supports loading from YAML files, environment variables, and hardcoded defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings for taskbot.
type Config struct {
	// Storage selects the backend (file, redis)
	Storage string `yaml:"storage"`

	// DataFile is the task file used by the file backend
	DataFile string `yaml:"data_file"`

	// RedisURL is the Redis connection URL used by the redis backend
	RedisURL string `yaml:"redis_url"`

	// RedisKey is the list key holding the tasks
	RedisKey string `yaml:"redis_key"`

	// RemindOnStart sends a desktop notification for tasks due today
	RemindOnStart bool `yaml:"remind_on_start"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	FilePath   string `yaml:"file_path"`
	JSON       bool   `yaml:"json"`
	Console    bool   `yaml:"console"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Default configuration values
const (
	DefaultStorage       = "file"
	DefaultRedisURL      = "redis://localhost:6379"
	DefaultRedisKey      = "taskbot:tasks"
	DefaultRemindOnStart = true
	DefaultLogLevel      = "info"
)

var (
	globalConfig *Config
	configOnce   sync.Once
	configErr    error
)

// Get returns the global configuration, loading it if necessary.
// This function is safe for concurrent use.
func Get() (*Config, error) {
	configOnce.Do(func() {
		globalConfig, configErr = Load()
	})
	return globalConfig, configErr
}

// Load reads configuration from files and environment variables.
// Priority (highest to lowest):
// 1. Environment variables
// 2. ~/.config/taskbot/config.yaml
// 3. ~/.config/taskbot/config.yml
// 4. ~/.taskbot.yaml
// 5. Hardcoded defaults
func Load() (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	cfg := defaults(homeDir)

	if homeDir != "" {
		// Lowest priority first so that later files win.
		paths := configPaths(homeDir)
		for i := len(paths) - 1; i >= 0; i-- {
			if data, err := os.ReadFile(paths[i]); err == nil {
				_ = yaml.Unmarshal(data, cfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.DataFile = expandHome(cfg.DataFile, homeDir)
	cfg.Logging.FilePath = expandHome(cfg.Logging.FilePath, homeDir)

	return cfg, nil
}

func defaults(homeDir string) *Config {
	base := ".taskbot"
	if homeDir != "" {
		base = filepath.Join(homeDir, ".taskbot")
	}
	return &Config{
		Storage:       DefaultStorage,
		DataFile:      filepath.Join(base, "tasks.txt"),
		RedisURL:      DefaultRedisURL,
		RedisKey:      DefaultRedisKey,
		RemindOnStart: DefaultRemindOnStart,
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			FilePath: filepath.Join(base, "logs", "taskbot.log"),
			JSON:     true,
			Compress: true,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvOverrides() {
	if val := os.Getenv("TASKBOT_STORAGE"); val != "" {
		c.Storage = val
	}

	if val := os.Getenv("TASKBOT_DATA_FILE"); val != "" {
		c.DataFile = val
	}

	// Redis URL (support both REDIS_URL and TASKBOT_REDIS_URL)
	if val := os.Getenv("TASKBOT_REDIS_URL"); val != "" {
		c.RedisURL = val
	} else if val := os.Getenv("REDIS_URL"); val != "" {
		c.RedisURL = val
	}

	if val := os.Getenv("TASKBOT_REDIS_KEY"); val != "" {
		c.RedisKey = val
	}

	if val := os.Getenv("TASKBOT_REMIND_ON_START"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.RemindOnStart = b
		} else {
			c.RemindOnStart = val == "yes"
		}
	}

	if val := os.Getenv("TASKBOT_LOG_LEVEL"); val != "" {
		c.Logging.Level = val
	}
	if val := os.Getenv("TASKBOT_LOG_FILE"); val != "" {
		c.Logging.FilePath = val
	}
}

func expandHome(path, homeDir string) string {
	if homeDir == "" {
		return path
	}
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Reload forces a reload of the configuration.
// This resets the global singleton and returns the newly loaded config.
func Reload() (*Config, error) {
	configOnce = sync.Once{}
	return Get()
}

// ConfigPaths returns the paths where config files are searched, highest
// priority first.
func ConfigPaths() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return configPaths(homeDir)
}

func configPaths(homeDir string) []string {
	return []string{
		filepath.Join(homeDir, ".config", "taskbot", "config.yaml"),
		filepath.Join(homeDir, ".config", "taskbot", "config.yml"),
		filepath.Join(homeDir, ".taskbot.yaml"),
	}
}

// WriteExample writes an example configuration file to the specified path.
func WriteExample(path string) error {
	example := `# taskbot configuration file
# Place this file at ~/.config/taskbot/config.yaml or ~/.taskbot.yaml

# Where tasks are kept: file or redis
storage: file

# Task file for the file backend
data_file: ~/.taskbot/tasks.txt

# Redis backend settings
redis_url: redis://localhost:6379
redis_key: taskbot:tasks

# Send a desktop notification for tasks due today when a session starts
remind_on_start: true

logging:
  level: info
  file_path: ~/.taskbot/logs/taskbot.log
  json: true
  console: false
  max_size: 10
  max_backups: 5
  max_age: 7
  compress: true
`
	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(example), 0644)
}
