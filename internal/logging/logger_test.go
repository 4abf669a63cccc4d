package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lantern/internal/config"
	"lantern/internal/logging"
)

func TestNewConsoleWritesPrefixedLines(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	component := logging.NewComponentLogger(logger, "registry")
	component.Info("sink installed", logging.String("sink", "console"))

	line := buf.String()
	if !strings.Contains(line, "INFO registry: sink installed") {
		t.Fatalf("unexpected console line %q", line)
	}
	if !strings.Contains(line, "sink=console") {
		t.Fatalf("expected attribute in console line %q", line)
	}
}

func TestNewConsoleOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")
	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestNewConsoleIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message with caller")
	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestNewJSONEmitsParsableRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json message", logging.String("k", "v"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON record %q: %v", buf.String(), err)
	}
	if record["msg"] != "json message" {
		t.Fatalf("msg = %v, want json message", record["msg"])
	}
	if record["level"] != "info" {
		t.Fatalf("level = %v, want info", record["level"])
	}
	if record["k"] != "v" {
		t.Fatalf("k = %v, want v", record["k"])
	}
}

func TestNewRejectsUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "invalid", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug should be suppressed at default level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("info should pass at default level: %q", out)
	}
}

func TestNewFromConfigTeesToLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello file")

	content, err := os.ReadFile(cfg.LogFilePath())
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "hello file") {
		t.Fatalf("expected entry in log file, got %q", content)
	}
}

func TestNewFromConfigWithoutLogDirStaysConsoleOnly(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = ""

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
}

func TestNewFromConfigRotatesOversizedFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.MaxSizeMiB = 1

	big := bytes.Repeat([]byte("x"), 2*1024*1024)
	if err := os.WriteFile(cfg.LogFilePath(), big, 0o664); err != nil {
		t.Fatalf("seed log file: %v", err)
	}

	if _, err := logging.NewFromConfig(&cfg); err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}

	entries, err := filepath.Glob(filepath.Join(cfg.Paths.LogDir, "lantern-*.log"))
	if err != nil {
		t.Fatalf("glob archives: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one archived log, got %v", entries)
	}
	info, err := os.Stat(cfg.LogFilePath())
	if err != nil {
		t.Fatalf("stat fresh log file: %v", err)
	}
	if info.Size() >= int64(len(big)) {
		t.Fatalf("expected fresh log file after rotation, size %d", info.Size())
	}
}
