package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hbjs97/switchenv/internal/profile"
	"github.com/hbjs97/switchenv/internal/resolver"
)

const (
	// ProfilesFile은 정식 저장 파일 이름이다.
	ProfilesFile = "profiles.json"
	// TempFile은 저장 시 먼저 기록하는 임시 파일 이름이다.
	TempFile = "__temp_profiles__.json"
	// RCFile은 활성화용으로 생성하는 셸 init 파일 이름이다.
	RCFile = "switchenvrc.sh"
)

// Store는 상태 디렉토리의 profiles.json을 관리한다.
// blob은 첫 접근 시 읽어 캐시하고, 변경 작업 직전에 비운다.
type Store struct {
	dir    string
	logger *slog.Logger

	blob   *profile.Blob
	legacy bool

	// beforeVerify는 임시 파일 기록 후 재검증 전에 호출된다 (테스트용).
	beforeVerify func(tempPath string)
}

// New는 상태 디렉토리를 (없으면) 만들고 Store를 반환한다.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("store.New: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir은 상태 디렉토리 경로다.
func (s *Store) Dir() string { return s.dir }

// Path는 정식 저장 파일 경로다.
func (s *Store) Path() string { return filepath.Join(s.dir, ProfilesFile) }

// TempPath는 임시 저장 파일 경로다.
func (s *Store) TempPath() string { return filepath.Join(s.dir, TempFile) }

// RCPath는 활성화용 셸 init 파일 경로다.
func (s *Store) RCPath() string { return filepath.Join(s.dir, RCFile) }

// Load는 캐시된 blob을 반환하고, 없으면 파일에서 읽는다.
// 파일이 없으면 빈 blob, 해석할 수 없으면 CorruptDataError를 반환한다.
// 반환값은 캐시 자체이므로 호출자가 수정하면 안 된다.
func (s *Store) Load() (*profile.Blob, error) {
	if s.blob != nil {
		return s.blob, nil
	}

	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("profiles file not found, starting empty", "path", s.Path())
		s.blob, s.legacy = profile.NewBlob(), false
		return s.blob, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}

	d, err := decodeBlob(data)
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", &profile.CorruptDataError{Path: s.Path(), Err: err})
	}
	if d.legacy {
		s.logger.Debug("migrated legacy profiles in memory", "path", s.Path(), "profiles", len(d.blob.Profiles))
	}
	s.blob, s.legacy = d.blob, d.legacy
	return s.blob, nil
}

// Legacy는 마지막으로 읽은 파일이 레거시 형식이었는지 반환한다.
func (s *Store) Legacy() bool { return s.legacy }

// ProfileNames는 프로필 이름을 사전순으로 반환한다.
func (s *Store) ProfileNames() ([]string, error) {
	b, err := s.Load()
	if err != nil {
		return nil, err
	}
	return b.Names(), nil
}

// Entries는 (이름, 엔트리) 쌍을 이름 사전순으로 반환한다.
func (s *Store) Entries() ([]profile.NamedEntry, error) {
	b, err := s.Load()
	if err != nil {
		return nil, err
	}
	return b.Entries(), nil
}

// Get은 이름으로 엔트리를 조회한다.
func (s *Store) Get(name string) (profile.Entry, error) {
	b, err := s.Load()
	if err != nil {
		return nil, err
	}
	e, ok := b.Get(name)
	if !ok {
		return nil, fmt.Errorf("store.Get: %w", profile.NewUnknownProfileError(name))
	}
	return e, nil
}

// AddRaw는 raw 엔트리를 추가하거나 갱신한다. 기존 엔트리가 composed면 실패한다.
func (s *Store) AddRaw(name, code string) error {
	return s.update("store.AddRaw", func(b *profile.Blob) error {
		if err := checkName(name); err != nil {
			return err
		}
		if err := checkType(b, name, profile.CodeTypeRaw); err != nil {
			return err
		}
		b.Profiles[name] = profile.NewRaw(code)
		return nil
	})
}

// AddComposed는 sources를 모두 검증한 뒤 composed 엔트리를 추가하거나 갱신한다.
// 없는 이름은 한 번에 모두 보고하고, 결과가 순환이면 저장하지 않는다.
func (s *Store) AddComposed(name string, sources []string) error {
	return s.update("store.AddComposed", func(b *profile.Blob) error {
		if err := checkName(name); err != nil {
			return err
		}
		if missing := b.Missing(sources); len(missing) > 0 {
			return profile.NewUnknownProfileError(missing...)
		}
		if err := checkType(b, name, profile.CodeTypeComposed); err != nil {
			return err
		}
		b.Profiles[name] = profile.NewComposed(sources)
		// 하위 프로필의 끊어진 참조는 여기서 막지 않는다. 활성화 시점에 보고된다.
		if _, err := resolver.New(b).Expand(name); errors.Is(err, profile.ErrCompositionCycle) {
			return err
		}
		return nil
	})
}

// Delete는 names를 모두 검증한 뒤 한 번의 저장으로 삭제하고, 삭제한 이름을 정렬해 반환한다.
// 하나라도 없으면 아무것도 삭제하지 않는다.
func (s *Store) Delete(names []string) ([]string, error) {
	var deleted []string
	err := s.update("store.Delete", func(b *profile.Blob) error {
		if missing := b.Missing(names); len(missing) > 0 {
			return profile.NewUnknownProfileError(missing...)
		}
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			if seen[n] {
				continue
			}
			seen[n] = true
			delete(b.Profiles, n)
			deleted = append(deleted, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(deleted)
	return deleted, nil
}

// ResolveCode는 name을 펼쳐 실행할 셸 소스를 반환한다.
func (s *Store) ResolveCode(name string) (string, error) {
	b, err := s.Load()
	if err != nil {
		return "", err
	}
	if _, ok := b.Get(name); !ok {
		return "", fmt.Errorf("store.ResolveCode: %w", profile.NewUnknownProfileError(name))
	}
	code, err := resolver.New(b).ResolveCode(name)
	if err != nil {
		return "", fmt.Errorf("store.ResolveCode: %w", err)
	}
	return code, nil
}

// Migrate는 레거시 형식 파일을 현재 스키마로 다시 저장한다. 이미 현재 형식이면 false.
func (s *Store) Migrate() (bool, error) {
	if _, err := s.Load(); err != nil {
		return false, fmt.Errorf("store.Migrate: %w", err)
	}
	if !s.legacy {
		return false, nil
	}
	if err := s.update("store.Migrate", func(*profile.Blob) error { return nil }); err != nil {
		return false, err
	}
	return true, nil
}

// update는 load → 복사본 변경 → 캐시 무효화 → 저장 순서로 실행한다.
// mutate가 실패하면 파일과 캐시 모두 그대로다.
func (s *Store) update(op string, mutate func(*profile.Blob) error) error {
	current, err := s.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	next := current.Clone()
	if err := mutate(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	next.Version = profile.CurrentVersion

	s.invalidate()
	if err := s.save(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) invalidate() {
	s.blob = nil
	s.legacy = false
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("프로필 이름이 비어 있다")
	}
	// 이름은 마커 주석에 그대로 들어가므로 줄바꿈이 있으면 셸 코드가 된다.
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("프로필 이름에 줄바꿈을 넣을 수 없다: %q", name)
	}
	return nil
}

func checkType(b *profile.Blob, name string, want profile.CodeType) error {
	existing, ok := b.Get(name)
	if !ok || existing.CodeType() == want {
		return nil
	}
	return &profile.TypeConflictError{Name: name, Existing: existing.CodeType(), Requested: want}
}
