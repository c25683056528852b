package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd는 실제 의존성으로 switchenv CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return NewApp().NewRootCmd()
}

// NewRootCmd는 App의 의존성을 사용하는 루트 명령을 생성한다.
// 인자 없이 실행하면 프로필을 골라 서브셸을 연다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "switchenv",
		Short:        "셸 환경 프로필 관리자",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLogging(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = filepath.Join(homeDir(), ".config", "switchenv", "config.toml")
	}
	cmd.PersistentFlags().String("config", defaultCfg, "설정 파일 경로 (SWITCHENV_CONFIG)")
	cmd.PersistentFlags().String("state-dir", a.StateDir, "상태 디렉토리 (SWITCHENV_STATE_DIR, 기본값은 설정의 state_dir)")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 출력")

	a.v = viper.New()
	a.v.SetEnvPrefix("switchenv")
	_ = a.v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag("state_dir", cmd.PersistentFlags().Lookup("state-dir"))
	_ = a.v.BindEnv("config")
	_ = a.v.BindEnv("state_dir")

	cmd.AddCommand(
		a.newListCmd(),
		a.newShowCmd(),
		a.newDeleteCmd(),
		a.newAddCmd(),
		a.newComposeCmd(),
		a.newSnapshotCmd(),
		a.newSourceCmd(),
		a.newExamplesCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
	)
	return cmd
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
