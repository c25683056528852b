package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/hbjs97/switchenv/internal/profile"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// profileView는 list/show의 구조화 출력 한 항목이다.
type profileView struct {
	Name     string   `json:"name" yaml:"name"`
	CodeType string   `json:"code_type" yaml:"code_type"`
	Sources  []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Code     string   `json:"code,omitempty" yaml:"code,omitempty"`
}

func newProfileView(name string, e profile.Entry) profileView {
	v := profileView{Name: name, CodeType: string(e.CodeType())}
	if c, ok := e.(profile.ComposedEntry); ok {
		v.Sources = c.Sources
	}
	return v
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("지원하지 않는 출력 형식: %q (text, json, yaml)", format)
	}
}

// writeStructured는 v를 json 또는 yaml로 출력한다.
func writeStructured(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case formatYAML:
		data, err = yaml.Marshal(v)
	default:
		return checkFormat(format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
