// Package cmdexec abstracts external command execution for testability.
// Production code uses the Commander and Execer interfaces; tests inject the
// fakes from testutil.
package cmdexec

import (
	"context"
	"os/exec"
)

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Execer replaces the current process with another program.
type Execer interface {
	// Exec resolves name on PATH and replaces the current process with it.
	// argv includes argv[0]. Exec only returns when the replacement failed.
	Exec(name string, argv []string, env []string) error
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// RealExecer replaces the process via execve(2).
type RealExecer struct{}
