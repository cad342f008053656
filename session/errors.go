package session

import "errors"

var (
	// ErrSessionNotFound indicates the session ID is not registered.
	ErrSessionNotFound = errors.New("session not found")
)
