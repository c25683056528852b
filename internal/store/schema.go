package store

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed schema/profiles.schema.json
	profilesSchemaJSON []byte
	//go:embed schema/legacy.schema.json
	legacySchemaJSON []byte
)

var (
	schemaOnce     sync.Once
	profilesSchema *jsonschema.Schema
	legacySchema   *jsonschema.Schema
	schemaErr      error
)

func compiledSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		profilesSchema, schemaErr = compileSchema("profiles.schema.json", profilesSchemaJSON)
		if schemaErr != nil {
			return
		}
		legacySchema, schemaErr = compileSchema("legacy.schema.json", legacySchemaJSON)
	})
	return profilesSchema, legacySchema, schemaErr
}

func compileSchema(name string, data []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("store.compileSchema: %s: %w", name, err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("store.compileSchema: %s: %w", name, err)
	}
	return schema, nil
}

// validateDoc는 스키마 위반을 "위치: 메시지" 목록으로 풀어 반환한다.
func validateDoc(schema *jsonschema.Schema, doc any) error {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}

	var messages []string
	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(validationErr)

	if len(messages) == 0 {
		return fmt.Errorf("스키마 검증 실패")
	}
	return fmt.Errorf("스키마 검증 실패: %s", strings.Join(messages, "; "))
}
