package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hbjs97/switchenv/internal/cmdexec"
	"github.com/hbjs97/switchenv/internal/config"
	"github.com/hbjs97/switchenv/internal/profile"
	"github.com/hbjs97/switchenv/internal/resolver"
	"github.com/hbjs97/switchenv/internal/store"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckStateDir는 상태 디렉토리가 존재하고 다른 사용자에게 열려 있지 않은지 확인한다.
func CheckStateDir(dir string) DiagResult {
	info, err := os.Stat(dir)
	if err != nil {
		return DiagResult{
			Name:    "state_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("상태 디렉토리 확인 실패: %v", err),
			Fix:     fmt.Sprintf("mkdir -p -m 700 %s", dir),
		}
	}
	if !info.IsDir() {
		return DiagResult{
			Name:    "state_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 는 디렉토리가 아님", dir),
		}
	}
	if info.Mode().Perm()&0077 != 0 {
		return DiagResult{
			Name:    "state_dir",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 권한이 %o", dir, info.Mode().Perm()),
			Fix:     fmt.Sprintf("chmod 700 %s", dir),
		}
	}
	return DiagResult{
		Name:    "state_dir",
		Status:  StatusOK,
		Message: dir,
	}
}

// CheckConfigFile은 설정 파일 권한을 확인한다. 파일이 없으면 기본값을 쓰므로 정상이다.
func CheckConfigFile(path string) DiagResult {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return DiagResult{
			Name:    "config",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s 없음, 기본값 사용", path),
		}
	}
	if err := config.ValidateFilePermissions(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: path,
	}
}

// CheckStore는 profiles.json을 읽고 형식과 합성 참조를 검사한다.
func CheckStore(s *store.Store) []DiagResult {
	blob, err := s.Load()
	if err != nil {
		return []DiagResult{{
			Name:    "profiles",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s 를 확인하거나 백업 후 삭제", s.Path()),
		}}
	}

	var results []DiagResult
	if s.Legacy() {
		results = append(results, DiagResult{
			Name:    "profiles",
			Status:  StatusWarn,
			Message: fmt.Sprintf("구형 형식 (프로필 %d개), 다음 저장 시 %s 로 변환됨", len(blob.Profiles), profile.CurrentVersion),
			Fix:     "switchenv doctor --fix",
		})
	} else {
		results = append(results, DiagResult{
			Name:    "profiles",
			Status:  StatusOK,
			Message: fmt.Sprintf("version %s, 프로필 %d개", blob.Version, len(blob.Profiles)),
		})
	}

	results = append(results, CheckReferences(blob))
	results = append(results, CheckCycles(blob))
	return results
}

// CheckReferences는 존재하지 않는 프로필을 가리키는 합성 프로필을 찾는다.
func CheckReferences(blob *profile.Blob) DiagResult {
	var dangling []string
	for _, ne := range blob.Entries() {
		c, ok := ne.Entry.(profile.ComposedEntry)
		if !ok {
			continue
		}
		if missing := blob.Missing(c.Sources); len(missing) > 0 {
			dangling = append(dangling, fmt.Sprintf("%s -> %s", ne.Name, strings.Join(missing, ", ")))
		}
	}
	if len(dangling) > 0 {
		return DiagResult{
			Name:    "references",
			Status:  StatusFail,
			Message: "없는 프로필 참조: " + strings.Join(dangling, "; "),
			Fix:     "switchenv compose 로 합성 프로필을 다시 정의",
		}
	}
	return DiagResult{
		Name:    "references",
		Status:  StatusOK,
		Message: "모든 합성 참조가 유효함",
	}
}

// CheckCycles는 순환 합성을 찾는다.
func CheckCycles(blob *profile.Blob) DiagResult {
	r := resolver.New(blob)
	seen := make(map[string]bool)
	var cycles []string
	for _, name := range blob.Names() {
		_, err := r.Expand(name)
		var cycleErr *profile.CompositionCycleError
		if !errors.As(err, &cycleErr) {
			continue
		}
		key := canonicalCycle(cycleErr.Path)
		if seen[key] {
			continue
		}
		seen[key] = true
		cycles = append(cycles, strings.Join(cycleErr.Path, " -> "))
	}
	if len(cycles) > 0 {
		return DiagResult{
			Name:    "cycles",
			Status:  StatusFail,
			Message: "순환 합성: " + strings.Join(cycles, "; "),
			Fix:     "순환에 포함된 프로필 중 하나를 switchenv delete 로 제거",
		}
	}
	return DiagResult{
		Name:    "cycles",
		Status:  StatusOK,
		Message: "순환 합성 없음",
	}
}

// canonicalCycle은 시작점이 달라도 같은 순환이면 같은 키를 만든다.
func canonicalCycle(path []string) string {
	ring := path[:len(path)-1]
	start := 0
	for i, n := range ring {
		if n < ring[start] {
			start = i
		}
	}
	rotated := append(append([]string{}, ring[start:]...), ring[:start]...)
	return strings.Join(rotated, "\x00")
}

// CheckShell은 활성화에 사용할 셸 바이너리가 실행 가능한지 확인한다.
func CheckShell(ctx context.Context, cmd cmdexec.Commander, shellName string) DiagResult {
	out, err := cmd.Run(ctx, shellName, "--version")
	if err != nil {
		return DiagResult{
			Name:    "shell",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 실행 실패", shellName),
			Fix:     "config.toml 의 shell 값을 확인하거나 셸을 설치",
		}
	}
	first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return DiagResult{
		Name:    "shell",
		Status:  StatusOK,
		Message: first,
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfgPath string, s *store.Store, shellName string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckConfigFile(cfgPath))
	results = append(results, CheckStateDir(s.Dir()))
	results = append(results, CheckStore(s)...)
	results = append(results, CheckShell(ctx, cmd, shellName))
	return results
}
