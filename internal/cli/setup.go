package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// setupTemplate는 switchenv setup이 생성하는 기본 config.toml 내용이다.
const setupTemplate = `# switchenv configuration file

version = 1

# 프로필과 활성화용 init 파일을 두는 디렉토리
# state_dir = "~/.switchenv"

# 활성화 시 실행할 셸. --init-file 을 지원해야 한다.
# shell = "bash"

# init 파일 맨 앞에 그대로 넣을 시작 파일
# startup_file = "~/.bashrc"

# 재-export와 snapshot에서 제외할 환경 변수
# strip_env = ["SSH_AUTH_SOCK", "TMUX"]

# delete 전에 확인을 묻는다
# confirm_delete = true
`

func (a *App) newSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "설정 파일 템플릿을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	return cmd
}

// runSetup는 설정 파일 템플릿을 생성한다.
func (a *App) runSetup(cmd *cobra.Command, force bool) error {
	path := a.configPath()

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s (--force 로 덮어쓰기)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cli.setup: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("cli.setup: 디렉토리 생성 실패: %w", err)
	}
	if err := os.WriteFile(path, []byte(setupTemplate), 0600); err != nil {
		return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", path)
	fmt.Fprintln(out, "설정을 수정한 후 switchenv doctor로 환경을 확인하세요.")
	return nil
}
