//go:build unix

package cmdexec

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Exec looks up name on PATH and calls execve. No deferred code runs after a
// successful call.
func (e *RealExecer) Exec(name string, argv []string, env []string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("cmdexec.Exec: %w", err)
	}
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("cmdexec.Exec: %s: %w", path, err)
	}
	return nil
}
