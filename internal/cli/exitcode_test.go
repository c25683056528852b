package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hbjs97/switchenv/internal/cli"
	"github.com/hbjs97/switchenv/internal/profile"
	"github.com/stretchr/testify/assert"
)

func TestMapExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want cli.ExitCode
	}{
		{"nil", nil, cli.ExitSuccess},
		{"general", errors.New("boom"), cli.ExitGeneral},
		{"no profiles", cli.ErrNoProfiles, cli.ExitGeneral},
		{"missing file", fmt.Errorf("cli.add: %w: x", cli.ErrFileNotFound), cli.ExitGeneral},
		{"unknown profile", fmt.Errorf("store.Delete: %w", profile.NewUnknownProfileError("a")), cli.ExitGeneral},
		{"type conflict", &profile.TypeConflictError{Name: "a"}, cli.ExitTypeConflict},
		{"cycle", fmt.Errorf("x: %w", &profile.CompositionCycleError{Path: []string{"a", "a"}}), cli.ExitCycle},
		{"save verification", &profile.SaveVerificationError{TempPath: "/t"}, cli.ExitSaveVerification},
		{"corrupt", &profile.CorruptDataError{Path: "/p", Err: errors.New("bad")}, cli.ExitDataError},
		{"config", fmt.Errorf("config.Load: %w", cli.ErrConfig), cli.ExitDataError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.MapExitCode(tt.err))
		})
	}
}
