package util

import (
	"github.com/google/uuid"
)

// NewRequestID returns a uuid-v4 string to use as request id.
func NewRequestID() string {
	return uuid.NewString()
}

// NewSessionToken returns a uuid-v4 string used to scope per-user cached
// datasets. Losing a token only costs a re-fetch, never correctness.
func NewSessionToken() string {
	return uuid.NewString()
}
