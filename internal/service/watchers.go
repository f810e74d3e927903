// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/models"
)

// The watchers below are edge-triggered: each one remembers the previously
// observed value itself and acts only on the transition it is interested in,
// so replays and redundant recomputations stay side-effect free.

type deviceRevoker interface {
	HandleDeviceRevoked(ctx context.Context) error
}

type selfDeletedHandler interface {
	HandleSelfDeleted(ctx context.Context) error
}

type registrar interface {
	EnsureFullyRegistered(ctx context.Context) (models.Account, error)
}

// ClientExistenceWatcher forces a logout when the device client this account
// registered disappears from the client collection, which is how a
// server-side revocation surfaces locally. It fires exactly once per
// existed-then-vanished transition.
type ClientExistenceWatcher struct {
	accountID string
	accounts  store.AccountRepository
	clients   store.ClientRepository
	manager   deviceRevoker
	logger    *logger.Logger
}

func NewClientExistenceWatcher(accountID string, accounts store.AccountRepository, clients store.ClientRepository, manager deviceRevoker, log *logger.Logger) *ClientExistenceWatcher {
	return &ClientExistenceWatcher{
		accountID: accountID,
		accounts:  accounts,
		clients:   clients,
		manager:   manager,
		logger:    log.GetChildLogger("client-existence-watch"),
	}
}

func (w *ClientExistenceWatcher) Run(ctx context.Context) {
	accountEvents, cancelAccounts := w.accounts.Signal(w.accountID)
	defer cancelAccounts()
	clientEvents, cancelClients := w.clients.Signal()
	defer cancelClients()

	var everExisted, fired bool
	recompute := func() {
		account, err := w.accounts.Get(ctx, w.accountID)
		if err != nil || account.ClientID == "" {
			// no registered client to watch; reset for the next registration
			everExisted = false
			fired = false
			return
		}

		_, err = w.clients.Get(ctx, account.ClientID)
		switch {
		case err == nil:
			everExisted = true
			fired = false
		case errors.Is(err, store.ErrClientNotFound) && everExisted && !fired:
			fired = true
			w.logger.Warn().Str("client_id", account.ClientID).Msg("registered client vanished")
			if err := w.manager.HandleDeviceRevoked(ctx); err != nil {
				w.logger.Error().Err(err).Msg("forced logout failed")
			}
		}
	}

	recompute()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-accountEvents:
			if !ok {
				return
			}
			recompute()
		case _, ok := <-clientEvents:
			if !ok {
				return
			}
			recompute()
		}
	}
}

// SelfDeletedWatcher removes the account when its own profile transitions to
// deleted.
type SelfDeletedWatcher struct {
	accountID string
	accounts  store.AccountRepository
	profiles  store.ProfileRepository
	manager   selfDeletedHandler
	logger    *logger.Logger
}

func NewSelfDeletedWatcher(accountID string, accounts store.AccountRepository, profiles store.ProfileRepository, manager selfDeletedHandler, log *logger.Logger) *SelfDeletedWatcher {
	return &SelfDeletedWatcher{
		accountID: accountID,
		accounts:  accounts,
		profiles:  profiles,
		manager:   manager,
		logger:    log.GetChildLogger("self-deleted-watch"),
	}
}

func (w *SelfDeletedWatcher) Run(ctx context.Context) {
	events, cancel := w.profiles.Signal()
	defer cancel()

	var prevDeleted bool
	for {
		select {
		case <-ctx.Done():
			return
		case profile, ok := <-events:
			if !ok {
				return
			}
			account, err := w.accounts.Get(ctx, w.accountID)
			if err != nil || account.UserID == "" || profile.UserID != account.UserID {
				continue
			}
			if profile.Deleted && !prevDeleted {
				w.logger.Warn().Str("user_id", profile.UserID).Msg("self profile deleted")
				if err := w.manager.HandleSelfDeleted(ctx); err != nil {
					w.logger.Error().Err(err).Msg("account removal failed")
				}
			}
			prevDeleted = profile.Deleted
		}
	}
}

// ProfileSyncBackWatcher copies contact fields from the self profile back
// onto the account record when an external profile sync changed them, so the
// record never goes stale against the server view.
type ProfileSyncBackWatcher struct {
	accountID string
	accounts  store.AccountRepository
	profiles  store.ProfileRepository
	logger    *logger.Logger
}

func NewProfileSyncBackWatcher(accountID string, accounts store.AccountRepository, profiles store.ProfileRepository, log *logger.Logger) *ProfileSyncBackWatcher {
	return &ProfileSyncBackWatcher{
		accountID: accountID,
		accounts:  accounts,
		profiles:  profiles,
		logger:    log.GetChildLogger("profile-sync-back"),
	}
}

func (w *ProfileSyncBackWatcher) Run(ctx context.Context) {
	events, cancel := w.profiles.Signal()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case profile, ok := <-events:
			if !ok {
				return
			}
			account, err := w.accounts.Get(ctx, w.accountID)
			if err != nil || account.UserID == "" || profile.UserID != account.UserID {
				continue
			}
			if profile.Email == account.Email && profile.Phone == account.Phone && profile.Handle == account.Handle {
				continue
			}

			_, err = w.accounts.UpdateOrCreate(ctx, w.accountID, func(a *models.Account) {
				a.Email = profile.Email
				a.Phone = profile.Phone
				a.Handle = profile.Handle
			}, account)
			if err != nil {
				w.logger.Error().Err(err).Msg("contact sync-back failed")
				continue
			}
			w.logger.Debug().Str("user_id", profile.UserID).Msg("contacts synced back onto account record")
		}
	}
}

// SignalingKeyWatcher backfills a missing signaling key on the registered
// client. Key registration is best effort: a failed attempt is logged and
// not retried until the client record changes again.
type SignalingKeyWatcher struct {
	accountID string
	accounts  store.AccountRepository
	clients   store.ClientRepository
	backend   adapter.BackendAdapter
	logger    *logger.Logger
}

func NewSignalingKeyWatcher(accountID string, accounts store.AccountRepository, clients store.ClientRepository, backend adapter.BackendAdapter, log *logger.Logger) *SignalingKeyWatcher {
	return &SignalingKeyWatcher{
		accountID: accountID,
		accounts:  accounts,
		clients:   clients,
		backend:   backend,
		logger:    log.GetChildLogger("signaling-key-watch"),
	}
}

func (w *SignalingKeyWatcher) Run(ctx context.Context) {
	accountEvents, cancelAccounts := w.accounts.Signal(w.accountID)
	defer cancelAccounts()
	clientEvents, cancelClients := w.clients.Signal()
	defer cancelClients()

	attempted := make(map[string]bool)
	recompute := func() {
		account, err := w.accounts.Get(ctx, w.accountID)
		if err != nil || !account.LoggedIn() || !account.Verified || account.ClientID == "" {
			return
		}
		client, err := w.clients.Get(ctx, account.ClientID)
		if err != nil || client.HasSignalingKey() || attempted[client.ID] {
			return
		}

		attempted[client.ID] = true
		key, err := w.backend.RegisterSignalingKey(ctx, client.ID)
		if err != nil {
			w.logger.Warn().Err(err).Str("client_id", client.ID).Msg("signaling key registration failed")
			return
		}
		client.SignalingKey = key
		if err := w.clients.Save(ctx, client); err != nil {
			w.logger.Error().Err(err).Str("client_id", client.ID).Msg("signaling key save failed")
			return
		}
		w.logger.Info().Str("client_id", client.ID).Msg("signaling key registered")
	}

	recompute()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-accountEvents:
			if !ok {
				return
			}
			recompute()
		case _, ok := <-clientEvents:
			if !ok {
				return
			}
			recompute()
		}
	}
}

// NeedsRegistrationWatcher restarts the registration sequence when a
// logged-in, verified account loses its resolved user or client, e.g. after
// the crypto session self-heal reset the client state.
type NeedsRegistrationWatcher struct {
	accountID string
	accounts  store.AccountRepository
	manager   registrar
	logger    *logger.Logger
}

func NewNeedsRegistrationWatcher(accountID string, accounts store.AccountRepository, manager registrar, log *logger.Logger) *NeedsRegistrationWatcher {
	return &NeedsRegistrationWatcher{
		accountID: accountID,
		accounts:  accounts,
		manager:   manager,
		logger:    log.GetChildLogger("needs-registration-watch"),
	}
}

func (w *NeedsRegistrationWatcher) Run(ctx context.Context) {
	events, cancel := w.accounts.Signal(w.accountID)
	defer cancel()

	needs := func(account models.Account) bool {
		return account.LoggedIn() && account.Verified &&
			(account.UserID == "" || account.ClientID == "") &&
			account.ClientState != models.ClientStateLimitReached &&
			account.ClientState != models.ClientStatePasswordMissing
	}

	var prev bool
	if account, err := w.accounts.Get(ctx, w.accountID); err == nil {
		prev = needs(account)
		if prev {
			w.register(ctx)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case account, ok := <-events:
			if !ok {
				return
			}
			current := needs(account)
			if current && !prev {
				w.register(ctx)
			}
			prev = current
		}
	}
}

func (w *NeedsRegistrationWatcher) register(ctx context.Context) {
	w.logger.Info().Str("account_id", w.accountID).Msg("account incomplete, rerunning registration")
	if _, err := w.manager.EnsureFullyRegistered(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("registration rerun failed")
	}
}
