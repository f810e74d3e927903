// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the per-account session lifecycle core: the
// registration state machine ([AccountManager]), the activation poller and
// the reactive watchers that keep the derived views (logged-in flag, active
// session, client existence) consistent with the account record.
//
// All mutating work for one account runs under a single mutex inside the
// manager, so login, registration and the watches that trigger registration
// never interleave. Reads of the derived views are lock-free snapshots.
package service

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountManager is the session orchestrator for one account. It owns the
// in-memory credentials, drives the multi-step registration protocol and
// maintains the derived active-session and logged-in views.
type AccountManager interface {
	// Login stores creds as the account's in-memory credentials, persists
	// the account record and runs the full registration sequence. Partial
	// progress is persisted even when the overall call fails, so retries
	// resume past completed steps. Concurrent calls serialize: a second
	// login blocks until the first completes, then proceeds with its own
	// credentials.
	Login(ctx context.Context, creds models.Credentials) (models.Account, error)

	// EnsureFullyRegistered idempotently walks the registration steps
	// (crypto session, activation, self profile, client registration, team
	// resolution), short-circuiting on the first failure. Re-entrant calls
	// are serialized, never duplicated.
	EnsureFullyRegistered(ctx context.Context) (models.Account, error)

	// Activate attempts account activation only. Returns nil once the
	// account is verified, adapter.ErrPendingActivation (wrapped) while
	// confirmation is outstanding, or another error on hard failure.
	Activate(ctx context.Context) error

	// GetActiveSession returns the cached active session if present.
	// Without a stored credential cookie it returns (nil, nil) immediately;
	// otherwise it runs the registration sequence and materializes the
	// session. A still-pending activation yields (nil, nil) rather than
	// blocking.
	GetActiveSession(ctx context.Context) (*ActiveSession, error)

	// Logout tears down the active session and clears the stored cookie.
	// With flushCredentials it also wipes the in-memory credentials.
	// Removal of the account from the active-account set is delegated to
	// the hook registered via SetLogoutHook.
	Logout(ctx context.Context, flushCredentials bool) error

	// HandleDeviceRevoked performs the forced logout fired by the
	// client-existence watch when the registered device disappears
	// server-side, additionally deleting the local crypto session.
	HandleDeviceRevoked(ctx context.Context) error

	// HandleSelfDeleted performs the forced logout fired by the
	// self-deleted watch and removes the account record.
	HandleSelfDeleted(ctx context.Context) error

	// IsLoggedIn is a lock-free snapshot of the logged-in flag.
	IsLoggedIn() bool

	// ActiveSessionSnapshot is a lock-free snapshot of the cached active
	// session; nil when none is materialized.
	ActiveSessionSnapshot() *ActiveSession

	// LoggedInSignal subscribes to logged-in flag transitions for UI
	// binding. Only changes are delivered, starting from the current value.
	LoggedInSignal() (<-chan bool, func())

	// RegistrationEvents delivers the transitional client registration
	// states (limit reached, password required) for the UI to react to.
	RegistrationEvents() <-chan models.ClientState

	// HasPassword reports whether in-memory credentials with a password are
	// held, which is what makes activation polling worthwhile.
	HasPassword() bool

	// SetLogoutHook registers the external active-account-set owner
	// notified on every logout.
	SetLogoutHook(fn func(accountID string, flushed bool))

	// UpdateEmail changes the account email remotely, then mirrors the new
	// value into the account record and the profile mirror. On remote
	// failure nothing is mutated locally.
	UpdateEmail(ctx context.Context, email string) error

	// ClearEmail removes the account email remotely and locally.
	ClearEmail(ctx context.Context) error

	// UpdatePhone changes the account phone remotely, then locally.
	UpdatePhone(ctx context.Context, phone string) error

	// ClearPhone removes the account phone remotely and locally.
	ClearPhone(ctx context.Context) error

	// UpdatePassword changes the account password remotely and swaps the
	// in-memory credential password on success.
	UpdatePassword(ctx context.Context, oldPassword, newPassword string) error

	// UpdateHandle changes the unique handle remotely, then locally.
	UpdateHandle(ctx context.Context, handle string) error

	// Run keeps the lock-free snapshots and the active-session cache in
	// sync with committed account record writes. It blocks until ctx is
	// cancelled; the aggregate worker runner hosts it.
	Run(ctx context.Context)
}

// ForegroundSignal is the application lifecycle input: whether the hosting
// app is foreground-active. The activation poller only polls while it is.
type ForegroundSignal interface {
	// IsForeground reports the current state.
	IsForeground() bool

	// Signal subscribes to state changes. The returned cancel func releases
	// the subscription.
	Signal() (<-chan bool, func())
}
