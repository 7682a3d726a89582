package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	old := DotEnvFile
	defer func() { DotEnvFile = old }()

	DotEnvFile = filepath.Join(dir, "missing.env")
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("missing file should be ignored, got %s", err)
	}

	DotEnvFile = filepath.Join(dir, ".env")
	content := "BASEWATCH_TEST_NODE=https://example.org/rpc\n"
	if err := os.WriteFile(DotEnvFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %s", err)
	}
	t.Setenv("BASEWATCH_TEST_NODE", "")
	os.Unsetenv("BASEWATCH_TEST_NODE")
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("load: %s", err)
	}
	if got := os.Getenv("BASEWATCH_TEST_NODE"); got != "https://example.org/rpc" {
		t.Errorf("env not loaded, got %q", got)
	}
}

func TestLoadDotEnvKeepsExistingVars(t *testing.T) {
	dir := t.TempDir()
	old := DotEnvFile
	defer func() { DotEnvFile = old }()

	DotEnvFile = filepath.Join(dir, ".env")
	if err := os.WriteFile(DotEnvFile, []byte("BASEWATCH_TEST_KEEP=file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %s", err)
	}
	t.Setenv("BASEWATCH_TEST_KEEP", "shell")
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("load: %s", err)
	}
	if got := os.Getenv("BASEWATCH_TEST_KEEP"); got != "shell" {
		t.Errorf("existing var overwritten, got %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger("", "loud", false); err == nil {
		t.Fatal("expected an error for an unknown level")
	}

	interactive, err := NewLogger("", "debug", false)
	if err != nil {
		t.Fatalf("new logger: %s", err)
	}
	if interactive.Out != io.Discard {
		t.Error("interactive mode should discard logs")
	}
	if interactive.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s", interactive.GetLevel())
	}

	plain, err := NewLogger("", "info", true)
	if err != nil {
		t.Fatalf("new logger: %s", err)
	}
	if plain.Out != os.Stderr {
		t.Error("plain mode should log to stderr")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basewatch.log")
	logger, err := NewLogger(path, "info", false)
	if err != nil {
		t.Fatalf("new logger: %s", err)
	}
	logger.WithField("network", "mainnet").Info("new block")
	logger.Debug("hidden")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %s", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 entry, got %d: %s", len(lines), content)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not json: %s", err)
	}
	if entry["network"] != "mainnet" || entry["msg"] != "new block" {
		t.Errorf("unexpected entry %v", entry)
	}
}
