package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/hbjs97/switchenv/internal/cmdexec"
	"github.com/hbjs97/switchenv/internal/config"
	"github.com/hbjs97/switchenv/internal/prompt"
	"github.com/hbjs97/switchenv/internal/store"
	"github.com/spf13/viper"
)

// App은 CLI 명령이 공유하는 외부 의존성을 담는다.
// 테스트에서는 각 필드에 testutil의 fake를 주입한다.
type App struct {
	Commander cmdexec.Commander
	Execer    cmdexec.Execer
	Prompter  prompt.Prompter

	// CfgPath는 --config 플래그의 기본값이다.
	CfgPath string
	// StateDir가 비어 있지 않으면 설정 파일의 state_dir 대신 사용한다.
	StateDir string
	// Environ은 활성화와 스냅샷에 쓰일 프로세스 환경을 반환한다.
	Environ func() []string

	v       *viper.Viper
	verbose bool
	logger  *slog.Logger
}

// NewApp은 실제 구현으로 채워진 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander: &cmdexec.RealCommander{},
		Execer:    &cmdexec.RealExecer{},
		Prompter:  &prompt.HuhPrompter{},
		Environ:   os.Environ,
	}
}

func (a *App) setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func (a *App) log() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}

func (a *App) environ() []string {
	if a.Environ == nil {
		return os.Environ()
	}
	return a.Environ()
}

// configPath는 플래그, 환경 변수, 기본값 순으로 정한 설정 파일 경로다.
func (a *App) configPath() string {
	path := a.CfgPath
	if a.v != nil {
		path = a.v.GetString("config")
	}
	return config.ExpandHome(path)
}

// load는 설정 파일을 읽고 그 설정의 상태 디렉토리로 Store를 연다.
func (a *App) load() (*config.Config, *store.Store, error) {
	cfgPath := a.configPath()
	stateDir := a.StateDir
	if a.v != nil {
		if d := a.v.GetString("state_dir"); d != "" {
			stateDir = d
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if stateDir == "" {
		stateDir = cfg.StateDir
	}

	a.log().Debug("loading store", "config", cfgPath, "state_dir", stateDir)
	s, err := store.New(config.ExpandHome(stateDir), a.log())
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

// ensureProfiles는 저장된 프로필이 하나도 없으면 ErrNoProfiles를 반환한다.
func ensureProfiles(s *store.Store) ([]string, error) {
	names, err := s.ProfileNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoProfiles
	}
	return names, nil
}

// pickProfile은 대화형으로 프로필 하나를 고른다. 취소하면 ok=false다.
func (a *App) pickProfile(names []string) (string, bool, error) {
	choice, ok, err := a.Prompter.Pick("프로필 선택", names)
	if err != nil {
		return "", false, err
	}
	return choice, ok, nil
}
