package cli

import (
	"fmt"

	"github.com/hbjs97/switchenv/internal/profile"
	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	var long bool
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "저장된 프로필 이름을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, long, format)
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "타입과 합성 원본을 함께 출력")
	cmd.Flags().StringVar(&format, "format", formatText, "출력 형식 (text, json, yaml)")
	return cmd
}

func (a *App) runList(cmd *cobra.Command, long bool, format string) error {
	if err := checkFormat(format); err != nil {
		return fmt.Errorf("cli.list: %w", err)
	}
	_, s, err := a.load()
	if err != nil {
		return err
	}
	if _, err := ensureProfiles(s); err != nil {
		return err
	}
	entries, err := s.Entries()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != formatText {
		views := make([]profileView, len(entries))
		for i, ne := range entries {
			views[i] = newProfileView(ne.Name, ne.Entry)
		}
		return writeStructured(out, format, views)
	}

	for _, ne := range entries {
		if long {
			fmt.Fprintf(out, "%s\t%s\n", ne.Name, profile.Describe(ne.Entry))
			continue
		}
		fmt.Fprintln(out, ne.Name)
	}
	return nil
}
