package service

import "errors"

var (
	// ErrMissingAccount indicates no account record exists for the managed
	// account id; the caller must log in first.
	ErrMissingAccount = errors.New("no account record found")

	// ErrCryptoBoxUnavailable indicates the local crypto session could not
	// be recreated after being destroyed. This is fatal for registration:
	// the self-healing path already ran once.
	ErrCryptoBoxUnavailable = errors.New("crypto session unavailable")

	// ErrNoUserID indicates a profile operation was attempted before the
	// self profile was resolved.
	ErrNoUserID = errors.New("self profile not resolved yet")
)
