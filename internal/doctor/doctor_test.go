package doctor_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/switchenv/internal/doctor"
	"github.com/hbjs97/switchenv/internal/profile"
	"github.com/hbjs97/switchenv/internal/store"
	"github.com/hbjs97/switchenv/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, dir string) *store.Store {
	t.Helper()
	s, err := store.New(dir, testutil.DiscardLogger())
	require.NoError(t, err)
	return s
}

func findResult(t *testing.T, results []doctor.DiagResult, name string) doctor.DiagResult {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("result %q not found in %v", name, results)
	return doctor.DiagResult{}
}

func TestCheckStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	r := doctor.CheckStateDir(dir)
	assert.Equal(t, doctor.StatusFail, r.Status)
	assert.NotEmpty(t, r.Fix)

	require.NoError(t, os.Mkdir(dir, 0700))
	assert.Equal(t, doctor.StatusOK, doctor.CheckStateDir(dir).Status)

	require.NoError(t, os.Chmod(dir, 0755))
	r = doctor.CheckStateDir(dir)
	assert.Equal(t, doctor.StatusWarn, r.Status)
	assert.Contains(t, r.Fix, "chmod 700")
}

func TestCheckStateDir_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	assert.Equal(t, doctor.StatusFail, doctor.CheckStateDir(path).Status)
}

func TestCheckStore_Healthy(t *testing.T) {
	s := newStore(t, testutil.SetupTestStore(t))

	results := doctor.CheckStore(s)

	for _, r := range results {
		assert.Equal(t, doctor.StatusOK, r.Status, "check %s should be OK", r.Name)
	}
	assert.Contains(t, findResult(t, results, "profiles").Message, "프로필 3개")
}

func TestCheckStore_LegacyIsWarning(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteProfilesFile(t, dir, `{"work": "export A=1"}`)

	r := findResult(t, doctor.CheckStore(newStore(t, dir)), "profiles")

	assert.Equal(t, doctor.StatusWarn, r.Status)
	assert.Equal(t, "switchenv doctor --fix", r.Fix)
}

func TestCheckStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteProfilesFile(t, dir, `{not json`)

	results := doctor.CheckStore(newStore(t, dir))

	require.Len(t, results, 1)
	assert.Equal(t, doctor.StatusFail, results[0].Status)
}

func TestCheckReferences_Dangling(t *testing.T) {
	blob := profile.NewBlob()
	blob.Profiles["a"] = profile.NewRaw("x")
	blob.Profiles["c"] = profile.NewComposed([]string{"a", "gone", "lost"})

	r := doctor.CheckReferences(blob)

	assert.Equal(t, doctor.StatusFail, r.Status)
	assert.Contains(t, r.Message, "c -> gone, lost")
}

func TestCheckCycles(t *testing.T) {
	blob := profile.NewBlob()
	blob.Profiles["p"] = profile.NewComposed([]string{"q"})
	blob.Profiles["q"] = profile.NewComposed([]string{"p"})
	blob.Profiles["self"] = profile.NewComposed([]string{"self"})
	blob.Profiles["ok"] = profile.NewRaw("x")

	r := doctor.CheckCycles(blob)

	assert.Equal(t, doctor.StatusFail, r.Status)
	assert.Equal(t, "순환 합성: p -> q -> p; self -> self", r.Message)
}

func TestCheckCycles_BehindDanglingReference(t *testing.T) {
	blob := profile.NewBlob()
	blob.Profiles["x"] = profile.NewComposed([]string{"m", "y0"})
	blob.Profiles["y"] = profile.NewComposed([]string{"x"})
	blob.Profiles["y0"] = profile.NewComposed([]string{"y"})

	r := doctor.CheckCycles(blob)

	assert.Equal(t, doctor.StatusFail, r.Status)
	assert.Equal(t, "순환 합성: x -> y0 -> y -> x", r.Message)
	assert.Equal(t, doctor.StatusFail, doctor.CheckReferences(blob).Status)
}

func TestCheckConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	r := doctor.CheckConfigFile(path)
	assert.Equal(t, doctor.StatusOK, r.Status)
	assert.Contains(t, r.Message, "기본값")

	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0600))
	assert.Equal(t, doctor.StatusOK, doctor.CheckConfigFile(path).Status)

	require.NoError(t, os.Chmod(path, 0644))
	r = doctor.CheckConfigFile(path)
	assert.Equal(t, doctor.StatusWarn, r.Status)
	assert.Equal(t, "chmod 600 "+path, r.Fix)
}

func TestCheckCycles_DiamondIsFine(t *testing.T) {
	blob := profile.NewBlob()
	blob.Profiles["base"] = profile.NewRaw("x")
	blob.Profiles["l"] = profile.NewComposed([]string{"base"})
	blob.Profiles["r"] = profile.NewComposed([]string{"base"})
	blob.Profiles["top"] = profile.NewComposed([]string{"l", "r"})

	assert.Equal(t, doctor.StatusOK, doctor.CheckCycles(blob).Status)
}

func TestCheckShell(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("bash --version", "GNU bash, version 5.2.15\nCopyright (C) 2022", nil)
	fake.Register("fish --version", "", fmt.Errorf("not found"))

	ok := doctor.CheckShell(context.Background(), fake, "bash")
	assert.Equal(t, doctor.StatusOK, ok.Status)
	assert.Equal(t, "GNU bash, version 5.2.15", ok.Message)

	fail := doctor.CheckShell(context.Background(), fake, "fish")
	assert.Equal(t, doctor.StatusFail, fail.Status)
	assert.NotEmpty(t, fail.Fix)
}

func TestRunAll(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("bash --version", "GNU bash", nil)
	s := newStore(t, testutil.SetupTestStore(t))

	results := doctor.RunAll(context.Background(), fake, filepath.Join(t.TempDir(), "config.toml"), s, "bash")

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"config", "state_dir", "profiles", "references", "cycles", "shell"}, names)
	assert.True(t, fake.Called("bash --version"))
}
