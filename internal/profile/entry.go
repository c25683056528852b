package profile

import (
	"fmt"
	"slices"
)

// CodeType는 엔트리의 종류를 나타내는 판별자다.
type CodeType string

const (
	// CodeTypeRaw는 셸 코드를 그대로 담은 엔트리다.
	CodeTypeRaw CodeType = "raw"
	// CodeTypeComposed는 다른 프로필 이름을 순서대로 참조하는 엔트리다.
	CodeTypeComposed CodeType = "composed"
)

// Entry는 하나의 프로필 본문이다. RawEntry 또는 ComposedEntry만 구현한다.
type Entry interface {
	CodeType() CodeType
	clone() Entry
}

// RawEntry는 셸 소스 문자열이다.
type RawEntry struct {
	Code string
}

// CodeType은 CodeTypeRaw를 반환한다.
func (RawEntry) CodeType() CodeType { return CodeTypeRaw }

func (e RawEntry) clone() Entry { return RawEntry{Code: e.Code} }

// ComposedEntry는 실행 순서대로 나열된 프로필 이름 목록이다.
type ComposedEntry struct {
	Sources []string
}

// CodeType은 CodeTypeComposed를 반환한다.
func (ComposedEntry) CodeType() CodeType { return CodeTypeComposed }

func (e ComposedEntry) clone() Entry {
	return ComposedEntry{Sources: slices.Clone(e.Sources)}
}

// NewRaw는 raw 엔트리를 생성한다.
func NewRaw(code string) Entry {
	return RawEntry{Code: code}
}

// NewComposed는 composed 엔트리를 생성한다. sources는 복사된다.
func NewComposed(sources []string) Entry {
	s := make([]string, len(sources))
	copy(s, sources)
	return ComposedEntry{Sources: s}
}

// Describe는 목록 출력용 타입 설명을 반환한다 (예: "raw", "composed: a, b").
func Describe(e Entry) string {
	switch v := e.(type) {
	case RawEntry:
		return string(CodeTypeRaw)
	case ComposedEntry:
		return fmt.Sprintf("%s: %s", CodeTypeComposed, joinNames(v.Sources))
	default:
		panic(fmt.Sprintf("profile.Describe: 알 수 없는 엔트리 타입 %T", e))
	}
}

// NamedEntry는 이름과 엔트리의 쌍이다.
type NamedEntry struct {
	Name  string
	Entry Entry
}
