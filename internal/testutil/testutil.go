// Package testutil provides common test helpers for the switchenv project.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// WriteProfilesFile writes profiles.json into dir with the given content
// and returns its path.
func WriteProfilesFile(t *testing.T, dir string, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("WriteProfilesFile: mkdir failed: %v", err)
	}
	path := filepath.Join(dir, "profiles.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteProfilesFile: write failed: %v", err)
	}

	return path
}

// SampleProfiles is a versioned profiles.json with two raw profiles and one
// composition of both.
const SampleProfiles = `{
  "version": "1.0",
  "profiles": {
    "base": {"code_type": "raw", "code": "export BASE=1"},
    "work": {"code_type": "raw", "code": "export WORK=1"},
    "all":  {"code_type": "composed", "code": ["base", "work"]}
  }
}
`

// SetupTestStore creates a state directory seeded with SampleProfiles and
// returns its path.
func SetupTestStore(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "state")
	WriteProfilesFile(t, dir, SampleProfiles)
	return dir
}
