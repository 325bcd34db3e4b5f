// Package slug generates upload identifiers.
//
// An identifier is a random (version 4) UUID encoded as 22 characters of
// URL-safe base64 without padding, so it can be used in paths and query strings.
package slug

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// Len is the length of every generated slug.
const Len = 22

// New returns a fresh random slug.
func New() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// Valid reports whether s has the shape of a slug produced by New.
func Valid(s string) bool {
	if len(s) != Len {
		return false
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil && len(b) == 16
}
