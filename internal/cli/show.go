package cli

import (
	"fmt"

	"github.com/hbjs97/switchenv/internal/profile"
	"github.com/hbjs97/switchenv/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) newShowCmd() *cobra.Command {
	var names []string
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "프로필 내용을 출력한다",
		Long:  "프로필 내용을 출력한다. -p 없이 실행하면 목록에서 고른다. 합성 프로필은 펼친 코드를 보여준다.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd, names, format)
		},
	}
	cmd.Flags().StringArrayVarP(&names, "profiles", "p", nil, "출력할 프로필 (반복 가능)")
	cmd.Flags().StringVar(&format, "format", formatText, "출력 형식 (text, json, yaml)")
	return cmd
}

func (a *App) runShow(cmd *cobra.Command, names []string, format string) error {
	if err := checkFormat(format); err != nil {
		return fmt.Errorf("cli.show: %w", err)
	}
	_, s, err := a.load()
	if err != nil {
		return err
	}
	all, err := ensureProfiles(s)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		choice, ok, err := a.pickProfile(all)
		if err != nil {
			return fmt.Errorf("cli.show: %w", err)
		}
		if !ok {
			return nil
		}
		names = []string{choice}
	}

	blob, err := s.Load()
	if err != nil {
		return err
	}
	if missing := blob.Missing(names); len(missing) > 0 {
		return fmt.Errorf("cli.show: %w", profile.NewUnknownProfileError(missing...))
	}

	views := make([]profileView, 0, len(names))
	for _, name := range names {
		entry, _ := blob.Get(name)
		code, err := s.ResolveCode(name)
		if err != nil {
			return err
		}
		v := newProfileView(name, entry)
		v.Code = code
		views = append(views, v)
	}

	out := cmd.OutOrStdout()
	if format != formatText {
		return writeStructured(out, format, views)
	}
	for _, v := range views {
		fmt.Fprintf(out, "\n%s\n", ui.RenderProfileHeader(v.Name))
		if v.CodeType == string(profile.CodeTypeComposed) {
			entry, _ := blob.Get(v.Name)
			fmt.Fprintln(out, ui.RenderMuted("# "+profile.Describe(entry)))
		}
		fmt.Fprintln(out, v.Code)
	}
	return nil
}
