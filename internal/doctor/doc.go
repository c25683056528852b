// Package doctor diagnoses the state directory, the profile store and the
// configured shell.
package doctor
