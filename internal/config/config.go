package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// CurrentVersion은 지원하는 설정 파일 버전이다.
const CurrentVersion = 1

// Config는 switchenv 설정 파일의 최상위 구조체다.
type Config struct {
	Version       int      `toml:"version"`
	StateDir      string   `toml:"state_dir"`
	Shell         string   `toml:"shell"`
	StartupFile   string   `toml:"startup_file"`
	StripEnv      []string `toml:"strip_env"`
	ConfirmDelete *bool    `toml:"confirm_delete"`
}

// Default는 설정 파일이 없을 때 사용하는 기본 설정을 반환한다.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsConfirmDelete는 confirm_delete 설정값을 반환한다.
func (c *Config) IsConfirmDelete() bool {
	if c.ConfirmDelete == nil {
		return true
	}
	return *c.ConfirmDelete
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

// ExpandHome은 경로 앞의 ~를 홈 디렉토리로 바꾼다.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.StateDir == "" {
		c.StateDir = "~/.switchenv"
	}
	if c.Shell == "" {
		c.Shell = "bash"
	}
	if c.StartupFile == "" {
		c.StartupFile = "~/.bashrc"
	}
	if c.ConfirmDelete == nil {
		t := true
		c.ConfirmDelete = &t
	}
}

func (c *Config) validate() error {
	if c.Version > CurrentVersion {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if strings.ContainsAny(c.Shell, " \t/") && !filepath.IsAbs(c.Shell) {
		return fmt.Errorf("config.Load: %w: shell 값이 올바르지 않습니다: %q", ErrConfig, c.Shell)
	}
	for _, name := range c.StripEnv {
		if name == "" || strings.Contains(name, "=") {
			return fmt.Errorf("config.Load: %w: strip_env 항목이 올바르지 않습니다: %q", ErrConfig, name)
		}
	}
	return nil
}
