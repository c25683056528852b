// Package resolver flattens composed profiles into the ordered list of raw
// shell fragments that make up their executable code.
package resolver
