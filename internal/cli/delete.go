package cli

import (
	"fmt"
	"strings"

	"github.com/hbjs97/switchenv/internal/profile"
	"github.com/spf13/cobra"
)

func (a *App) newDeleteCmd() *cobra.Command {
	var names []string
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "프로필을 삭제한다",
		Long:  "프로필을 삭제한다. 지정한 이름이 하나라도 없으면 아무 것도 지우지 않는다.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDelete(cmd, names, yes)
		},
	}
	cmd.Flags().StringArrayVarP(&names, "profiles", "p", nil, "삭제할 프로필 (반복 가능)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "확인 없이 삭제")
	return cmd
}

func (a *App) runDelete(cmd *cobra.Command, names []string, yes bool) error {
	cfg, s, err := a.load()
	if err != nil {
		return err
	}
	all, err := ensureProfiles(s)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(names) == 0 {
		choice, ok, err := a.pickProfile(all)
		if err != nil {
			return fmt.Errorf("cli.delete: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, "아무 것도 하지 않았습니다")
			return nil
		}
		names = []string{choice}
	}

	blob, err := s.Load()
	if err != nil {
		return err
	}
	if missing := blob.Missing(names); len(missing) > 0 {
		return fmt.Errorf("cli.delete: %w", profile.NewUnknownProfileError(missing...))
	}

	if !yes && cfg.IsConfirmDelete() {
		ok, err := a.Prompter.Confirm(fmt.Sprintf("삭제할까요? %s", strings.Join(names, ", ")))
		if err != nil {
			return fmt.Errorf("cli.delete: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, "아무 것도 하지 않았습니다")
			return nil
		}
	}

	deleted, err := s.Delete(names)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "삭제된 프로필: %s\n", strings.Join(deleted, ", "))
	return nil
}
