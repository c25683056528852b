package resolver

import (
	"fmt"
	"strings"

	"github.com/hbjs97/switchenv/internal/profile"
)

// MarkerPrefix는 raw 조각 앞에 붙는 주석의 접두어다.
const MarkerPrefix = "# switchenv profile: "

// Source는 이름으로 엔트리를 조회하는 읽기 전용 저장소다.
type Source interface {
	Get(name string) (profile.Entry, bool)
}

// Fragment는 평탄화된 raw 코드 한 조각이다.
type Fragment struct {
	Profile string
	Code    string
}

// String은 마커 주석과 코드를 합친 셸 소스를 반환한다.
func (f Fragment) String() string {
	return MarkerPrefix + f.Profile + "\n" + f.Code
}

// Resolver는 composed 프로필을 raw 조각 목록으로 펼친다.
type Resolver struct {
	source Source
}

// New는 새 Resolver를 생성한다.
func New(src Source) *Resolver {
	return &Resolver{source: src}
}

// Expand는 name을 깊이 우선, 왼쪽부터 펼친다.
// 현재 재귀 경로에 있는 이름을 다시 만나면 CompositionCycleError를 반환한다.
// 없는 이름은 건너뛰고 계속 탐색하므로 순환은 이름 누락보다 먼저 보고된다.
// 누락된 이름은 모두 모아 UnknownProfileError 하나로 반환한다.
func (r *Resolver) Expand(name string) ([]Fragment, error) {
	w := &walker{source: r.source, onPath: make(map[string]bool)}
	if err := w.visit(name); err != nil {
		return nil, fmt.Errorf("resolver.Expand: %w", err)
	}
	if len(w.missing) > 0 {
		return nil, fmt.Errorf("resolver.Expand: %w", profile.NewUnknownProfileError(w.missing...))
	}
	return w.out, nil
}

// ResolveCode는 Expand 결과를 개행으로 이어 실행할 셸 소스를 만든다.
func (r *Resolver) ResolveCode(name string) (string, error) {
	fragments, err := r.Expand(name)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(fragments))
	for i, f := range fragments {
		parts[i] = f.String()
	}
	return strings.Join(parts, "\n"), nil
}

type walker struct {
	source  Source
	onPath  map[string]bool
	path    []string
	out     []Fragment
	missing []string
}

func (w *walker) visit(name string) error {
	if w.onPath[name] {
		return &profile.CompositionCycleError{Path: w.cyclePath(name)}
	}
	entry, ok := w.source.Get(name)
	if !ok {
		w.missing = append(w.missing, name)
		return nil
	}

	switch e := entry.(type) {
	case profile.RawEntry:
		w.out = append(w.out, Fragment{Profile: name, Code: e.Code})
	case profile.ComposedEntry:
		w.onPath[name] = true
		w.path = append(w.path, name)
		for _, src := range e.Sources {
			if err := w.visit(src); err != nil {
				return err
			}
		}
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, name)
	default:
		return fmt.Errorf("알 수 없는 엔트리 타입 %T (%s)", entry, name)
	}
	return nil
}

// cyclePath는 name이 처음 등장한 지점부터 다시 name까지의 경로를 만든다.
func (w *walker) cyclePath(name string) []string {
	for i, n := range w.path {
		if n == name {
			cycle := append([]string{}, w.path[i:]...)
			return append(cycle, name)
		}
	}
	return []string{name, name}
}
