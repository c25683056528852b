package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// PromptSentinel은 원래 프롬프트를 보관하는 변수다. 이미 있으면 다시 저장하지 않는다.
const PromptSentinel = "__PSSWE__"

// RC는 활성화용 init 파일의 재료다.
type RC struct {
	Profile string
	Code    string
	Env     map[string]string
	Startup string
}

// Build는 init 파일 내용을 만든다. 순서는
// (1) 사용자 시작 파일 (2) 현재 환경 재-export (3) 프로필 코드 (4) 프롬프트 접두어다.
// 시작 파일이 PATH 등을 덮어쓸 수 있으므로 환경 재-export가 그 뒤에 와야 한다.
// 모든 줄은 공백 한 칸으로 들여쓰고 빈 줄은 버린다.
func (rc RC) Build() string {
	var parts []string
	parts = append(parts, rc.Startup)
	parts = append(parts, ExportLines(rc.Env)...)
	parts = append(parts,
		fmt.Sprintf(`if [ -z "${%s+x}" ]; then export %s="$PS1"; fi`, PromptSentinel, PromptSentinel),
		rc.Code,
		fmt.Sprintf(`PS1=%s"$%s"`, Quote("•"+rc.Profile+"•"), PromptSentinel),
	)

	var lines []string
	for _, line := range strings.Split(strings.Join(parts, "\n"), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, " "+line)
	}
	return strings.Join(lines, "\n") + "\n"
}

// Write는 init 파일을 path에 덮어쓴다 (0600 권한).
func (rc RC) Write(path string) error {
	if err := os.WriteFile(path, []byte(rc.Build()), 0600); err != nil {
		return fmt.Errorf("shell.Write: %w", err)
	}
	return nil
}

// ReadStartupFile은 사용자 시작 파일을 읽는다. 없으면 빈 문자열이다.
func ReadStartupFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("shell.ReadStartupFile: %w", err)
	}
	return string(data), nil
}

// Command는 init 파일을 읽는 서브셸 실행 인자를 반환한다. argv[0]을 포함한다.
func Command(shellName, rcPath string) []string {
	return []string{shellName, "--init-file", rcPath}
}
