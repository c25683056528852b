package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const examplesText = `
# 현재 환경을 프로필로 저장
switchenv snapshot -p my_snapshot

# 기존 셸 스크립트를 프로필로 추가
switchenv add -p my_profile -f path/to/script.sh

# 여러 프로필을 순서대로 합성
switchenv compose -c dev -p base -p aws

# 프로필 이름 목록 (--long 으로 타입 표시)
switchenv list

# 프로필 내용 보기
switchenv show                          # 목록에서 검색해 선택
switchenv show -p profile1 -p profile2  # 지정한 프로필

# 프로필을 적용한 서브셸 열기
switchenv                               # 목록에서 검색해 선택
switchenv source -p my_profile

# 프로필 삭제
switchenv delete -p profile1 -p profile2

# 환경 진단
switchenv doctor
`

func (a *App) newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "사용 예시를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), examplesText)
			return nil
		},
	}
}
