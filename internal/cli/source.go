package cli

import (
	"fmt"

	"github.com/hbjs97/switchenv/internal/config"
	"github.com/hbjs97/switchenv/internal/shell"
	"github.com/hbjs97/switchenv/internal/store"
	"github.com/spf13/cobra"
)

func (a *App) newSourceCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "source",
		Short: "프로필을 적용한 서브셸을 연다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := a.load()
			if err != nil {
				return err
			}
			if _, err := ensureProfiles(s); err != nil {
				return err
			}
			return a.activate(cfg, s, name)
		},
	}
	cmd.Flags().StringVarP(&name, "profile", "p", "", "프로필 이름")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

// runInteractive는 인자 없이 실행됐을 때 프로필을 골라 활성화한다.
// 선택을 취소하면 아무 것도 하지 않는다.
func (a *App) runInteractive(cmd *cobra.Command) error {
	cfg, s, err := a.load()
	if err != nil {
		return err
	}
	names, err := ensureProfiles(s)
	if err != nil {
		return err
	}
	name, ok, err := a.pickProfile(names)
	if err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}
	if !ok {
		return nil
	}
	return a.activate(cfg, s, name)
}

// activate는 init 파일을 쓰고 현재 프로세스를 셸로 교체한다.
// 성공하면 돌아오지 않는다.
func (a *App) activate(cfg *config.Config, s *store.Store, name string) error {
	code, err := s.ResolveCode(name)
	if err != nil {
		return err
	}
	startup, err := shell.ReadStartupFile(config.ExpandHome(cfg.StartupFile))
	if err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}
	env := shell.CaptureEnv(a.environ(), cfg.StripEnv)

	rc := shell.RC{Profile: name, Code: code, Env: env, Startup: startup}
	if err := rc.Write(s.RCPath()); err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}

	argv := shell.Command(cfg.Shell, s.RCPath())
	a.log().Debug("exec shell", "profile", name, "argv", argv)
	if err := a.Execer.Exec(cfg.Shell, argv, shell.EnvSlice(env)); err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}
	return nil
}
