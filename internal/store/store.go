// Package store persists annotation sessions as JSON files. The file
// format is a compatibility surface: the analysis CLI reads the same
// files, so the layout must not change shape silently.
package store

import "errors"

var (
	// ErrNotFound means no session matches the requested ID.
	ErrNotFound = errors.New("session not found")
	// ErrCorrupt means a persisted session exists but cannot be parsed
	// or fails schema validation. Corruption is surfaced, never treated
	// as an empty session.
	ErrCorrupt = errors.New("session file corrupt")
)
