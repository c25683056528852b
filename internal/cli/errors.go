package cli

import (
	"errors"

	"github.com/hbjs97/switchenv/internal/config"
	"github.com/hbjs97/switchenv/internal/profile"
)

var (
	// ErrNoProfiles는 저장된 프로필이 없어 명령을 수행할 수 없을 때의 sentinel error다.
	ErrNoProfiles = errors.New("저장된 프로필이 없습니다")
	// ErrFileNotFound는 add -f 로 지정한 파일이 없을 때의 sentinel error다.
	ErrFileNotFound = errors.New("파일이 존재하지 않습니다")
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrUnknownProfile는 존재하지 않는 프로필 이름이 지정됐을 때의 sentinel error다.
	ErrUnknownProfile = profile.ErrUnknownProfile
	// ErrTypeConflict는 raw/composed 타입을 바꾸려 할 때의 sentinel error다.
	ErrTypeConflict = profile.ErrTypeConflict
	// ErrCompositionCycle는 합성 프로필이 자기 자신에 도달할 때의 sentinel error다.
	ErrCompositionCycle = profile.ErrCompositionCycle
	// ErrCorruptData는 profiles.json을 해석할 수 없을 때의 sentinel error다.
	ErrCorruptData = profile.ErrCorruptData
	// ErrSaveVerification는 저장 검증 실패로 원본이 유지됐을 때의 sentinel error다.
	ErrSaveVerification = profile.ErrSaveVerification
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
