package shell

import (
	"regexp"
	"sort"
	"strings"
)

// AlwaysStripped는 재-export하면 새 셸을 망가뜨리는 변수들이다.
// __PYVENV_LAUNCHER__는 macOS에서 exec를 방해하고, _는 직전 명령 경로다.
var AlwaysStripped = []string{"__PYVENV_LAUNCHER__", "_"}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CaptureEnv는 "KEY=VALUE" 목록을 맵으로 바꾸고 AlwaysStripped와 strip을 제거한다.
func CaptureEnv(environ []string, strip []string) map[string]string {
	drop := make(map[string]bool, len(AlwaysStripped)+len(strip))
	for _, k := range AlwaysStripped {
		drop[k] = true
	}
	for _, k := range strip {
		drop[k] = true
	}

	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" || drop[key] {
			continue
		}
		env[key] = value
	}
	return env
}

// EnvSlice는 맵을 키 순서로 정렬된 "KEY=VALUE" 목록으로 바꾼다.
func EnvSlice(env map[string]string) []string {
	keys := sortedKeys(env)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k + "=" + env[k]
	}
	return out
}

// ExportLines는 키 순서로 정렬된 export 문을 만든다. 셸 식별자가 아닌 키는 건너뛴다.
func ExportLines(env map[string]string) []string {
	var lines []string
	for _, k := range sortedKeys(env) {
		if !identPattern.MatchString(k) {
			continue
		}
		lines = append(lines, "export "+k+"="+Quote(env[k]))
	}
	return lines
}

// Snapshot은 환경 전체를 raw 프로필로 저장할 셸 코드로 만든다.
func Snapshot(env map[string]string) string {
	return strings.Join(ExportLines(env), "\n")
}

// Quote는 값을 작은따옴표로 감싸 셸 확장 없이 그대로 전달되게 한다.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func sortedKeys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
