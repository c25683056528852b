// Package shell captures the process environment and builds the init file a
// spawned subshell sources on activation.
package shell
