// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the session-keeper backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// error labels by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrPendingActivation] for the
// expected soft failure while email/SMS confirmation is outstanding).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the backend:
// the credentials provider (Login) and the self-profile, team and
// device-registration clients. Implementations are responsible for
// serialisation, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type BackendAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called after every
	// successful Login.
	SetToken(token models.Token)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty token if none has been set yet.
	Token() models.Token

	// SetCookie stores the long-lived credential cookie used for token
	// refresh.
	SetCookie(cookie string)

	// OnInvalidCredentials registers a callback invoked whenever an
	// authenticated request is rejected with 401, signalling that the
	// stored credentials are no longer valid. At most one callback is
	// held; later registrations replace earlier ones.
	OnInvalidCredentials(fn func())

	// Login authenticates the account against the credentials provider, or
	// refreshes the access token from the stored cookie when creds carries
	// no password. On success the returned token is stored via SetToken.
	// Returns [ErrPendingActivation] (wrapped) while the account awaits
	// email/SMS confirmation, [ErrUnauthorized] on bad credentials, or
	// another error if the request fails.
	Login(ctx context.Context, accountID string, creds models.Credentials) (models.LoginResult, error)

	// LoadSelfProfile fetches the profile of the authenticated user.
	LoadSelfProfile(ctx context.Context) (models.SelfProfileResponse, error)

	// FindSelfTeam queries the backend for the authenticated user's team
	// affiliation. A user without a team is a successful response with
	// HasTeam=false, not an error.
	FindSelfTeam(ctx context.Context) (models.TeamResponse, error)

	// GetPermissions fetches the user's permissions bitmask within teamID.
	GetPermissions(ctx context.Context, teamID, userID string) (models.PermissionsResponse, error)

	// RegisterClient requests device registration. Transitional refusals
	// (client limit reached, password re-entry required) are reported as
	// structured results, not errors; only transport and credential
	// failures produce an error.
	RegisterClient(ctx context.Context, req models.ClientRegistrationRequest) (models.ClientRegistrationResult, error)

	// RegisterSignalingKey performs the post-registration follow-up call
	// that provisions a push-signaling key for clientID and returns the
	// key material.
	RegisterSignalingKey(ctx context.Context, clientID string) (string, error)

	// PutEmail sets the account email on the backend.
	PutEmail(ctx context.Context, email string) error

	// DeleteEmail removes the account email on the backend.
	DeleteEmail(ctx context.Context) error

	// PutPhone sets the account phone number on the backend.
	PutPhone(ctx context.Context, phone string) error

	// DeletePhone removes the account phone number on the backend.
	DeletePhone(ctx context.Context) error

	// PutPassword changes the account password on the backend.
	PutPassword(ctx context.Context, oldPassword, newPassword string) error

	// PutHandle sets the unique account handle on the backend.
	PutHandle(ctx context.Context, handle string) error
}
