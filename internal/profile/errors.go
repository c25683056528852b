package profile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownProfile는 참조한 프로필이 저장소에 없을 때 반환된다.
	ErrUnknownProfile = errors.New("존재하지 않는 프로필")
	// ErrTypeConflict는 기존 엔트리의 code_type을 바꾸려 할 때 반환된다.
	ErrTypeConflict = errors.New("code_type 변경 불가")
	// ErrCompositionCycle는 composed 프로필이 자기 자신을 (간접적으로) 참조할 때 반환된다.
	ErrCompositionCycle = errors.New("composed 프로필 순환 참조")
	// ErrCorruptData는 저장 파일이 올바른 구조가 아닐 때 반환된다.
	ErrCorruptData = errors.New("프로필 파일 손상")
	// ErrSaveVerification는 임시 파일 재검증이 실패해 저장을 포기했을 때 반환된다.
	ErrSaveVerification = errors.New("저장 검증 실패, 기존 파일 유지")
)

// UnknownProfileError는 없는 프로필 이름 전체를 정렬해서 담는다.
type UnknownProfileError struct {
	Names []string
}

// NewUnknownProfileError는 이름을 정렬·중복 제거하여 에러를 만든다.
func NewUnknownProfileError(names ...string) *UnknownProfileError {
	seen := make(map[string]struct{}, len(names))
	sorted := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)
	return &UnknownProfileError{Names: sorted}
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownProfile, joinNames(e.Names))
}

func (e *UnknownProfileError) Unwrap() error { return ErrUnknownProfile }

// TypeConflictError는 code_type 불일치 정보를 담는다.
type TypeConflictError struct {
	Name      string
	Existing  CodeType
	Requested CodeType
}

func (e *TypeConflictError) Error() string {
	return fmt.Sprintf("%s: %q은 %s 프로필이다 (요청: %s)", ErrTypeConflict, e.Name, e.Existing, e.Requested)
}

func (e *TypeConflictError) Unwrap() error { return ErrTypeConflict }

// CompositionCycleError는 순환 경로를 담는다. 첫 원소와 마지막 원소가 같다.
type CompositionCycleError struct {
	Path []string
}

func (e *CompositionCycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCompositionCycle, strings.Join(e.Path, " -> "))
}

func (e *CompositionCycleError) Unwrap() error { return ErrCompositionCycle }

// CorruptDataError는 파싱할 수 없는 저장 파일 정보를 담는다.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCorruptData, e.Path, e.Err)
}

// Is는 ErrCorruptData와 원인 에러 양쪽에 매칭된다.
func (e *CorruptDataError) Is(target error) bool { return target == ErrCorruptData }

func (e *CorruptDataError) Unwrap() error { return e.Err }

// SaveVerificationError는 임시 파일 재검증 실패 정보를 담는다.
// Cause는 임시 파일을 다시 읽지 못한 경우에만 채워지고, 내용이 다르면 Diff가 채워진다.
type SaveVerificationError struct {
	TempPath string
	Diff     string
	Cause    error
}

func (e *SaveVerificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrSaveVerification, e.TempPath, e.Cause)
	}
	return fmt.Sprintf("%s: %s 내용 불일치", ErrSaveVerification, e.TempPath)
}

func (e *SaveVerificationError) Unwrap() error { return ErrSaveVerification }

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
