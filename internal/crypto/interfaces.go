// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto owns the per-account end-to-end-encryption session material.
//
// The session manager treats this package as the "crypto box": when no local
// session exists the device is assumed to have been wiped server-side (or the
// material corrupted locally) and the registration state machine resets the
// client registration before recreating a fresh session.
//
// Material is sealed at rest with AES-256-GCM under a key derived from the
// device secret via Argon2id, one directory per account.
package crypto

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Session is the decrypted per-account encryption session material.
type Session struct {
	// ID identifies this session instance; it changes whenever the session
	// is recreated from scratch.
	ID string `json:"id"`

	// AccountID is the owning account.
	AccountID string `json:"account_id"`

	// Secret is the root session secret the messaging subsystems derive
	// their keys from. Never leaves the client.
	Secret []byte `json:"secret"`

	// CreatedAt is when this session material was generated.
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore manages per-account crypto session material on disk.
type SessionStore interface {
	// Open loads and unseals the session material for accountID.
	// Returns [ErrNoSession] when no material exists, or another error when
	// the material exists but cannot be unsealed (corruption, wrong device
	// secret).
	Open(accountID string) (*Session, error)

	// Create generates fresh session material for accountID, seals it to
	// disk and returns it. Any previous material is overwritten.
	Create(accountID string) (*Session, error)

	// Delete removes all session material for accountID. Deleting a
	// non-existent session is a no-op.
	Delete(accountID string) error

	// Exists reports whether sealed session material is present for
	// accountID without attempting to unseal it.
	Exists(accountID string) bool
}
