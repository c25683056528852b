// Package profile defines the persisted data model of switchenv: the Blob
// document, the Raw/Composed entry variants and the error taxonomy shared by
// the store and the resolver.
package profile
