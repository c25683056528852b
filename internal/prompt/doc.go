// Package prompt provides the interactive profile picker and confirmation
// prompts used by the CLI.
package prompt
