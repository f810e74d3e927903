// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the local durable persistence layer of the
// session-keeper client: the account record store, the device client lookup
// table and the user profile mirror, all backed by a single SQLite database.
//
// Every committed write is re-published on the repository's change signal so
// the reactive watchers can recompute their derived views. Signals are
// level-triggered: subscribers receive the current record value, not a diff,
// and track previous values themselves when they need edge detection.
package store

import (
	"context"

	"github.com/MKhiriev/go-session-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the durable store of per-account authentication and
// registration state.
type AccountRepository interface {
	// Get loads the account record by id. Returns [ErrAccountNotFound] when
	// no record exists.
	Get(ctx context.Context, id string) (models.Account, error)

	// UpdateOrCreate applies transform to the current record (or to def
	// when no record exists yet) inside a transaction and persists the
	// result. Concurrent writers are serialized by the store, so a
	// transform never observes a stale read: this is the only mutation
	// primitive, making last-writer-wins apply per transform rather than
	// per field.
	UpdateOrCreate(ctx context.Context, id string, transform func(*models.Account), def models.Account) (models.Account, error)

	// Remove deletes the account record. Removing a missing record is a
	// no-op. Subscribers receive a zero-value record carrying only the id.
	Remove(ctx context.Context, id string) error

	// Signal subscribes to committed changes of the record identified by
	// id. The returned cancel func releases the subscription.
	Signal(id string) (<-chan models.Account, func())
}

// ClientRepository is the lookup table of registered device clients. A row
// disappearing while the owning account still references it signals
// server-side device revocation.
type ClientRepository interface {
	// Get loads a device client by id. Returns [ErrClientNotFound] when no
	// row exists.
	Get(ctx context.Context, id string) (models.DeviceClient, error)

	// Save upserts the device client row.
	Save(ctx context.Context, client models.DeviceClient) error

	// Delete removes the device client row. Deleting a missing row is a
	// no-op; subscribers are notified either way.
	Delete(ctx context.Context, id string) error

	// Signal subscribes to client-table changes. Each event carries the id
	// of the changed or removed client.
	Signal() (<-chan string, func())
}

// ProfileRepository is the local mirror of backend user profiles. Only the
// self user is stored today, but rows are keyed by user id so contact
// profiles can share the table later.
type ProfileRepository interface {
	// Get loads a profile by user id. Returns [ErrProfileNotFound] when no
	// row exists.
	Get(ctx context.Context, userID string) (models.UserProfile, error)

	// Save upserts the profile row.
	Save(ctx context.Context, profile models.UserProfile) error

	// Remove deletes the profile row. Removing a missing row is a no-op.
	Remove(ctx context.Context, userID string) error

	// Signal subscribes to committed profile writes; each event carries the
	// full written profile.
	Signal() (<-chan models.UserProfile, func())
}
