// Package store persists switchenv profiles in <state-dir>/profiles.json.
//
// Every mutation is a full load → modify copy → save cycle. Saves go through
// a temp sibling that is re-read and compared before it is renamed over the
// canonical file, so readers only ever see a complete document.
package store
