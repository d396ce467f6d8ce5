package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closer, err := newLogger("", "info")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	defer closer.Close()

	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}
	logger.Info("nobody reads this")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nightwatch.log")

	logger, closer, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("threat advanced", "location", 2)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"nightwatch", "threat advanced", "location=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
