package adapter

import "errors"

var (
	// ErrUnauthorized indicates rejected credentials or an expired cookie.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrPendingActivation is the one expected soft failure: the account
	// exists but email/SMS confirmation has not completed yet.
	ErrPendingActivation = errors.New("account pending activation")

	// ErrForbidden indicates the backend refused the operation for the
	// authenticated user.
	ErrForbidden = errors.New("operation forbidden")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
)
