package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/hbjs97/switchenv/internal/profile"
)

var currentSchema = semver.MustParse(profile.CurrentVersion)

// decoded는 파일 해석 결과다. legacy면 메모리에서만 마이그레이션된 상태다.
type decoded struct {
	blob   *profile.Blob
	legacy bool
}

// decodeBlob은 profiles.json 내용을 해석한다.
// {"version", "profiles"} 형식이면 그대로, 이름→코드 문자열 형식이면 raw 엔트리로 마이그레이션한다.
func decodeBlob(data []byte) (*decoded, error) {
	doc, err := parseJSON(data)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("최상위 값은 JSON 객체여야 한다")
	}

	if isVersioned(obj) {
		b, err := decodeVersioned(data, doc)
		if err != nil {
			return nil, err
		}
		return &decoded{blob: b}, nil
	}

	b, err := migrateLegacy(doc, obj)
	if err != nil {
		return nil, err
	}
	return &decoded{blob: b, legacy: true}, nil
}

// isVersioned는 레거시 프로필 이름이 "version"/"profiles"인 경우와 구분하기 위해
// profiles가 객체인지까지 확인한다.
func isVersioned(obj map[string]any) bool {
	if _, ok := obj["version"]; !ok {
		return false
	}
	_, ok := obj["profiles"].(map[string]any)
	return ok
}

func decodeVersioned(data []byte, doc any) (*profile.Blob, error) {
	schema, _, err := compiledSchemas()
	if err != nil {
		return nil, err
	}
	if err := validateDoc(schema, doc); err != nil {
		return nil, err
	}

	var b profile.Blob
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	if err := checkVersion(b.Version); err != nil {
		return nil, err
	}
	return &b, nil
}

// checkVersion은 현재보다 major가 높은 스키마를 거부한다.
func checkVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("잘못된 스키마 버전 %q: %w", v, err)
	}
	if version.Major() > currentSchema.Major() {
		return fmt.Errorf("지원하지 않는 스키마 버전 %s (현재 %s)", v, profile.CurrentVersion)
	}
	return nil
}

func migrateLegacy(doc any, obj map[string]any) (*profile.Blob, error) {
	_, schema, err := compiledSchemas()
	if err != nil {
		return nil, err
	}
	if err := validateDoc(schema, doc); err != nil {
		return nil, fmt.Errorf("레거시 형식: %w", err)
	}

	b := profile.NewBlob()
	for name, v := range obj {
		b.Profiles[name] = profile.NewRaw(v.(string))
	}
	return b, nil
}

// encodeBlob은 현재 스키마로 직렬화한다.
func encodeBlob(b *profile.Blob) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("JSON 값 뒤에 불필요한 데이터가 있다")
	}
	return doc, nil
}
