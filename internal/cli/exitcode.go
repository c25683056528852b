package cli

import (
	"errors"
)

// ExitCode는 switchenv의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다. 없는 프로필, 빈 저장소, 없는 파일도 여기에 속한다.
	ExitGeneral ExitCode = 1
	// ExitTypeConflict는 raw/composed 타입 충돌이다.
	ExitTypeConflict ExitCode = 2
	// ExitCycle는 순환 합성이다.
	ExitCycle ExitCode = 3
	// ExitSaveVerification는 저장 검증 실패다. 원본 파일은 그대로다.
	ExitSaveVerification ExitCode = 4
	// ExitDataError는 손상된 profiles.json 또는 설정 파일 오류다.
	ExitDataError ExitCode = 5
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrTypeConflict):
		return ExitTypeConflict
	case errors.Is(err, ErrCompositionCycle):
		return ExitCycle
	case errors.Is(err, ErrSaveVerification):
		return ExitSaveVerification
	case errors.Is(err, ErrCorruptData), errors.Is(err, ErrConfig):
		return ExitDataError
	default:
		return ExitGeneral
	}
}
