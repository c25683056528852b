package profile_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hbjs97/switchenv/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlob_MarshalJSON_WireFormat(t *testing.T) {
	b := profile.NewBlob()
	b.Profiles["a"] = profile.NewRaw("export X=1")
	b.Profiles["c"] = profile.NewComposed([]string{"b", "a"})

	data, err := json.Marshal(b)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"version": "1.0",
		"profiles": {
			"a": {"code_type": "raw", "code": "export X=1"},
			"c": {"code_type": "composed", "code": ["b", "a"]}
		}
	}`, string(data))
}

func TestBlob_UnmarshalJSON_PreservesSourceOrder(t *testing.T) {
	data := `{"version":"1.0","profiles":{"c":{"code_type":"composed","code":["z","a","m"]}}}`

	var b profile.Blob
	require.NoError(t, json.Unmarshal([]byte(data), &b))

	e, ok := b.Get("c")
	require.True(t, ok)
	assert.Equal(t, profile.ComposedEntry{Sources: []string{"z", "a", "m"}}, e)
}

func TestBlob_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown code_type", `{"version":"1.0","profiles":{"a":{"code_type":"bogus","code":"x"}}}`},
		{"raw with array", `{"version":"1.0","profiles":{"a":{"code_type":"raw","code":["x"]}}}`},
		{"composed with string", `{"version":"1.0","profiles":{"a":{"code_type":"composed","code":"x"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b profile.Blob
			assert.Error(t, json.Unmarshal([]byte(tt.data), &b))
		})
	}
}

func TestBlob_NamesSorted(t *testing.T) {
	b := profile.NewBlob()
	for _, n := range []string{"zeta", "alpha", "Mid", "beta"} {
		b.Profiles[n] = profile.NewRaw("")
	}

	assert.Equal(t, []string{"Mid", "alpha", "beta", "zeta"}, b.Names())

	entries := b.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "Mid", entries[0].Name)
	assert.Equal(t, "zeta", entries[3].Name)
}

func TestBlob_Missing(t *testing.T) {
	b := profile.NewBlob()
	b.Profiles["x"] = profile.NewRaw("")

	assert.Nil(t, b.Missing([]string{"x"}))
	assert.Equal(t, []string{"a", "b"}, b.Missing([]string{"x", "b", "a", "b"}))
}

func TestBlob_CloneIsDeep(t *testing.T) {
	b := profile.NewBlob()
	b.Profiles["c"] = profile.NewComposed([]string{"a", "b"})

	c := b.Clone()
	c.Profiles["c"].(profile.ComposedEntry).Sources[0] = "changed"
	c.Profiles["new"] = profile.NewRaw("")

	assert.Equal(t, []string{"a", "b"}, b.Profiles["c"].(profile.ComposedEntry).Sources)
	assert.NotContains(t, b.Profiles, "new")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "raw", profile.Describe(profile.NewRaw("echo hi")))
	assert.Equal(t, "composed: a, b", profile.Describe(profile.NewComposed([]string{"a", "b"})))
}

func TestErrors_UnwrapToSentinels(t *testing.T) {
	unknown := profile.NewUnknownProfileError("b", "a", "b")
	assert.Equal(t, []string{"a", "b"}, unknown.Names)
	assert.True(t, errors.Is(unknown, profile.ErrUnknownProfile))
	assert.Contains(t, unknown.Error(), "a, b")

	conflict := &profile.TypeConflictError{Name: "e", Existing: profile.CodeTypeRaw, Requested: profile.CodeTypeComposed}
	assert.True(t, errors.Is(conflict, profile.ErrTypeConflict))

	cycle := &profile.CompositionCycleError{Path: []string{"d", "d"}}
	assert.True(t, errors.Is(cycle, profile.ErrCompositionCycle))
	assert.Contains(t, cycle.Error(), "d -> d")

	cause := errors.New("bad json")
	corrupt := &profile.CorruptDataError{Path: "/x/profiles.json", Err: cause}
	assert.True(t, errors.Is(corrupt, profile.ErrCorruptData))
	assert.True(t, errors.Is(corrupt, cause))

	verify := &profile.SaveVerificationError{TempPath: "/x/tmp.json", Diff: "-a +b"}
	assert.True(t, errors.Is(verify, profile.ErrSaveVerification))
}
