package cli

import (
	"fmt"

	"github.com/hbjs97/switchenv/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newSnapshotCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "현재 환경 변수를 raw 프로필로 저장한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSnapshot(cmd, name)
		},
	}
	cmd.Flags().StringVarP(&name, "profile_name", "p", "", "프로필 이름")
	_ = cmd.MarkFlagRequired("profile_name")
	return cmd
}

func (a *App) runSnapshot(cmd *cobra.Command, name string) error {
	cfg, s, err := a.load()
	if err != nil {
		return err
	}
	env := shell.CaptureEnv(a.environ(), cfg.StripEnv)
	if err := s.AddRaw(name, shell.Snapshot(env)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "환경 변수 %d개를 %s 에 저장했습니다\n", len(shell.ExportLines(env)), name)
	return nil
}
