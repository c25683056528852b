package profile

import (
	"encoding/json"
	"fmt"
	"sort"
)

// CurrentVersion은 현재 저장 스키마 버전이다.
const CurrentVersion = "1.0"

// Blob은 profiles.json 전체 문서다.
type Blob struct {
	Version  string
	Profiles map[string]Entry
}

// NewBlob은 현재 스키마 버전의 빈 blob을 생성한다.
func NewBlob() *Blob {
	return &Blob{Version: CurrentVersion, Profiles: make(map[string]Entry)}
}

// Get은 이름으로 엔트리를 조회한다.
func (b *Blob) Get(name string) (Entry, bool) {
	e, ok := b.Profiles[name]
	return e, ok
}

// Names는 프로필 이름을 사전순으로 반환한다.
func (b *Blob) Names() []string {
	names := make([]string, 0, len(b.Profiles))
	for name := range b.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries는 (이름, 엔트리) 쌍을 이름 사전순으로 반환한다.
func (b *Blob) Entries() []NamedEntry {
	names := b.Names()
	entries := make([]NamedEntry, len(names))
	for i, name := range names {
		entries[i] = NamedEntry{Name: name, Entry: b.Profiles[name]}
	}
	return entries
}

// Missing은 blob에 없는 이름을 정렬해서 반환한다.
func (b *Blob) Missing(names []string) []string {
	var missing []string
	for _, n := range names {
		if _, ok := b.Profiles[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return NewUnknownProfileError(missing...).Names
}

// Clone은 엔트리까지 깊은 복사한다.
func (b *Blob) Clone() *Blob {
	c := &Blob{Version: b.Version, Profiles: make(map[string]Entry, len(b.Profiles))}
	for name, e := range b.Profiles {
		c.Profiles[name] = e.clone()
	}
	return c
}

type wireEntry struct {
	CodeType CodeType        `json:"code_type"`
	Code     json.RawMessage `json:"code"`
}

type wireBlob struct {
	Version  string               `json:"version"`
	Profiles map[string]wireEntry `json:"profiles"`
}

// MarshalJSON은 blob을 {"version", "profiles"} 형식으로 직렬화한다.
func (b *Blob) MarshalJSON() ([]byte, error) {
	w := wireBlob{Version: b.Version, Profiles: make(map[string]wireEntry, len(b.Profiles))}
	for name, e := range b.Profiles {
		var code any
		switch v := e.(type) {
		case RawEntry:
			code = v.Code
		case ComposedEntry:
			sources := v.Sources
			if sources == nil {
				sources = []string{}
			}
			code = sources
		default:
			return nil, fmt.Errorf("profile.MarshalJSON: %s: 알 수 없는 엔트리 타입 %T", name, e)
		}
		raw, err := json.Marshal(code)
		if err != nil {
			return nil, fmt.Errorf("profile.MarshalJSON: %w", err)
		}
		w.Profiles[name] = wireEntry{CodeType: e.CodeType(), Code: raw}
	}
	return json.Marshal(w)
}

// UnmarshalJSON은 버전이 있는 형식만 해석한다. 레거시 형식은 store가 마이그레이션한다.
func (b *Blob) UnmarshalJSON(data []byte) error {
	var w wireBlob
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("profile.UnmarshalJSON: %w", err)
	}
	b.Version = w.Version
	b.Profiles = make(map[string]Entry, len(w.Profiles))
	for name, we := range w.Profiles {
		e, err := decodeEntry(we)
		if err != nil {
			return fmt.Errorf("profile.UnmarshalJSON: profiles.%s: %w", name, err)
		}
		b.Profiles[name] = e
	}
	return nil
}

func decodeEntry(we wireEntry) (Entry, error) {
	switch we.CodeType {
	case CodeTypeRaw:
		var code string
		if err := json.Unmarshal(we.Code, &code); err != nil {
			return nil, fmt.Errorf("raw code는 문자열이어야 한다: %w", err)
		}
		return RawEntry{Code: code}, nil
	case CodeTypeComposed:
		var sources []string
		if err := json.Unmarshal(we.Code, &sources); err != nil {
			return nil, fmt.Errorf("composed code는 문자열 배열이어야 한다: %w", err)
		}
		if sources == nil {
			sources = []string{}
		}
		return ComposedEntry{Sources: sources}, nil
	default:
		return nil, fmt.Errorf("알 수 없는 code_type %q", we.CodeType)
	}
}
