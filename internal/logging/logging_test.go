package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != InfoLevel {
		t.Errorf("expected default level to be InfoLevel, got %v", cfg.Level)
	}
	if cfg.MaxSize != 10 {
		t.Errorf("expected default MaxSize to be 10, got %d", cfg.MaxSize)
	}
	if cfg.MaxBackups != 5 {
		t.Errorf("expected default MaxBackups to be 5, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAge != 7 {
		t.Errorf("expected default MaxAge to be 7, got %d", cfg.MaxAge)
	}
	if !cfg.JSON {
		t.Error("expected default JSON to be true")
	}
	if cfg.Console {
		t.Error("expected default Console to be false")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", DebugLevel, false},
		{"info", InfoLevel, false},
		{"warn", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for input %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if level != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, level)
			}
		})
	}
}

func TestLoggerWithContext(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&Config{Level: DebugLevel, JSON: true, Output: &buf}); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	log := Get().
		WithStorage("file").
		WithCommand("todo").
		WithField("tasks", 3)

	log.Debug("executed")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v (content: %s)", err, buf.String())
	}
	if entry["command"] != "todo" || entry["storage"] != "file" || entry["tasks"] != float64(3) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&Config{Level: WarnLevel, JSON: true, Output: &buf}); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Get().Info("hidden")
	Get().WithError(errors.New("boom")).Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "boom") {
		t.Errorf("warn entry missing: %s", out)
	}
}

func TestInitFromLogConfig(t *testing.T) {
	lc := LoggingConfig{
		Level:      "debug",
		FilePath:   filepath.Join(t.TempDir(), "taskbot.log"),
		JSON:       true,
		MaxSize:    20,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   false,
	}

	err := InitFromLogConfig(lc)
	if err != nil {
		t.Fatalf("failed to initialize from config: %v", err)
	}
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "test.log")

	cfg := &Config{
		Level:      DebugLevel,
		JSON:       true,
		FilePath:   logFile,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   false,
		Console:    false,
	}

	err := Init(cfg)
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	WithStorage("redis").WithCommand("list").Info("test message")

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(content), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v (content: %s)", err, content)
	}

	if entry["level"] != "info" {
		t.Errorf("expected level 'info', got %v", entry["level"])
	}
	if entry["message"] != "test message" {
		t.Errorf("expected message 'test message', got %v", entry["message"])
	}
	if entry["storage"] != "redis" {
		t.Errorf("expected storage 'redis', got %v", entry["storage"])
	}
	if entry["command"] != "list" {
		t.Errorf("expected command 'list', got %v", entry["command"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestInvalidLevelInConfig(t *testing.T) {
	lc := LoggingConfig{
		Level: "invalid-level",
	}

	err := InitFromLogConfig(lc)
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Errorf("expected error to mention 'invalid', got: %v", err)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&Config{Level: InfoLevel, JSON: true, Output: &buf}); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Get().WithFields(map[string]interface{}{"added": 2, "skipped": 1}).Info("imported")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("failed to parse log entry: %v (content: %s)", err, buf.String())
	}
	if entry["added"] != float64(2) || entry["skipped"] != float64(1) {
		t.Errorf("unexpected entry %v", entry)
	}
}
