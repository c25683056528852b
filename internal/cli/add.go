package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

func (a *App) newAddCmd() *cobra.Command {
	var name, file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "셸 스크립트 파일을 raw 프로필로 저장한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(cmd, name, file)
		},
	}
	cmd.Flags().StringVarP(&name, "profile_name", "p", "", "프로필 이름")
	cmd.Flags().StringVarP(&file, "file_name", "f", "", "셸 스크립트 파일")
	_ = cmd.MarkFlagRequired("profile_name")
	_ = cmd.MarkFlagRequired("file_name")
	return cmd
}

func (a *App) runAdd(cmd *cobra.Command, name, file string) error {
	info, err := os.Stat(file)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return fmt.Errorf("cli.add: %w: %s", ErrFileNotFound, file)
	}
	if err != nil {
		return fmt.Errorf("cli.add: %w", err)
	}
	code, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cli.add: %w", err)
	}

	_, s, err := a.load()
	if err != nil {
		return err
	}
	if err := s.AddRaw(name, string(code)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "프로필 저장됨: %s\n", name)
	return nil
}
