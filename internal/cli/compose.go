package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newComposeCmd() *cobra.Command {
	var name string
	var sources []string

	cmd := &cobra.Command{
		Use:     "compose",
		Short:   "여러 프로필을 순서대로 합친 프로필을 만든다",
		Example: "  switchenv compose -c dev -p base -p aws -p k8s",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompose(cmd, name, sources)
		},
	}
	cmd.Flags().StringVarP(&name, "composed_name", "c", "", "합성 프로필 이름")
	cmd.Flags().StringArrayVarP(&sources, "profiles", "p", nil, "원본 프로필 (순서대로, 반복 가능)")
	_ = cmd.MarkFlagRequired("composed_name")
	_ = cmd.MarkFlagRequired("profiles")
	return cmd
}

func (a *App) runCompose(cmd *cobra.Command, name string, sources []string) error {
	_, s, err := a.load()
	if err != nil {
		return err
	}
	if err := s.AddComposed(name, sources); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "합성 프로필 저장됨: %s = %s\n", name, strings.Join(sources, " + "))
	return nil
}
