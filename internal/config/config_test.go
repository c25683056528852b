package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/switchenv/internal/config"
	"github.com/hbjs97/switchenv/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1
state_dir = "/tmp/switchenv-state"
shell = "zsh"
startup_file = "/tmp/zshrc"
strip_env = ["SSH_AUTH_SOCK", "TMUX"]
confirm_delete = false
`
	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "/tmp/switchenv-state", cfg.StateDir)
	assert.Equal(t, "zsh", cfg.Shell)
	assert.Equal(t, "/tmp/zshrc", cfg.StartupFile)
	assert.Equal(t, []string{"SSH_AUTH_SOCK", "TMUX"}, cfg.StripEnv)
	assert.False(t, cfg.IsConfirmDelete())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope", "config.toml"))

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_DefaultValues(t *testing.T) {
	path := testutil.TempConfigFile(t, "")
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, config.CurrentVersion, cfg.Version)
	assert.Equal(t, "~/.switchenv", cfg.StateDir)
	assert.Equal(t, "bash", cfg.Shell)
	assert.Equal(t, "~/.bashrc", cfg.StartupFile)
	assert.Empty(t, cfg.StripEnv)
	assert.True(t, cfg.IsConfirmDelete())
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"future version", `version = 99`},
		{"shell with spaces", `shell = "bash -l"`},
		{"relative shell path", `shell = "bin/bash"`},
		{"empty strip_env entry", `strip_env = [""]`},
		{"strip_env with assignment", `strip_env = ["A=1"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.content)
			_, err := config.Load(path)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestLoadConfig_AbsoluteShellPath(t *testing.T) {
	path := testutil.TempConfigFile(t, `shell = "/usr/local/bin/bash"`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/bash", cfg.Shell)
}

func TestValidateFilePermissions(t *testing.T) {
	path := testutil.TempConfigFile(t, `version = 1`)

	// 0600
	err := config.ValidateFilePermissions(path)
	assert.NoError(t, err)

	// 0644
	require.NoError(t, os.Chmod(path, 0644))
	err = config.ValidateFilePermissions(path)
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".switchenv"), config.ExpandHome("~/.switchenv"))
	assert.Equal(t, home, config.ExpandHome("~"))
	assert.Equal(t, "/abs/path", config.ExpandHome("/abs/path"))
	assert.Equal(t, "~user/x", config.ExpandHome("~user/x"))
}
