package store

import "errors"

var (
	// ErrAccountNotFound indicates no account record exists for the id.
	ErrAccountNotFound = errors.New("account record not found")

	// ErrClientNotFound indicates no device client row exists for the id.
	ErrClientNotFound = errors.New("device client not found")

	// ErrProfileNotFound indicates no profile row exists for the user id.
	ErrProfileNotFound = errors.New("user profile not found")
)
