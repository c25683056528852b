//go:build !unix

package cmdexec

import (
	"errors"
	"fmt"
)

// ErrExecUnsupported is returned on platforms without execve.
var ErrExecUnsupported = errors.New("process replacement is not supported on this platform")

// Exec always fails on non-unix platforms.
func (e *RealExecer) Exec(name string, argv []string, env []string) error {
	return fmt.Errorf("cmdexec.Exec: %s: %w", name, ErrExecUnsupported)
}
