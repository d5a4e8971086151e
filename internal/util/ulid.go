package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
// ulid.Make draws from a process-wide monotonic entropy source that is safe for concurrent use.
func NewULID() string {
	return ulid.Make().String()
}

// IsValidULID reports whether s is a canonical 26 character ULID.
func IsValidULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
