package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/switchenv/internal/doctor"
	"github.com/hbjs97/switchenv/internal/ui"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "상태 디렉토리, 프로필 저장소, 셸을 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd, fix)
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "구형 profiles.json을 현재 형식으로 변환")
	return cmd
}

func (a *App) runDoctor(cmd *cobra.Command, fix bool) error {
	out := cmd.OutOrStdout()

	cfg, s, err := a.load()
	if err != nil {
		fmt.Fprintf(out, "  [%s] config: %v\n", statusIcon(doctor.StatusFail), err)
		fmt.Fprintln(out, "      Fix: switchenv setup 실행 또는 설정 파일 확인")
		return err
	}

	if fix {
		migrated, err := s.Migrate()
		if err != nil {
			return err
		}
		if migrated {
			fmt.Fprintf(out, "%s 를 현재 형식으로 변환했습니다\n", s.Path())
		}
	}

	printDiagResults(out, doctor.RunAll(cmd.Context(), a.Commander, a.configPath(), s, cfg.Shell))
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return ui.RenderPassIcon()
	case doctor.StatusWarn:
		return ui.RenderWarnIcon()
	case doctor.StatusFail:
		return ui.RenderFailIcon()
	default:
		return "??"
	}
}
