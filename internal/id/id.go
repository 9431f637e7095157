package id

import (
	"crypto/rand"
	"time"
)

// SessionIDLayout is the time layout used for session IDs. Session files
// are named after these IDs, so the layout must stay filename-safe.
const SessionIDLayout = "20060102_150405"

// NewSessionID creates a session ID derived from the given creation time,
// e.g. "20260214_120040".
func NewSessionID(t time.Time) string {
	return t.Format(SessionIDLayout)
}

// Suffix creates a short random alphanumeric string used to disambiguate
// two session IDs generated within the same second.
func Suffix(n int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}
