// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/store"
)

// App is the assembled client runtime.
type App struct {
	// Manager is the session orchestrator for the local account.
	Manager service.AccountManager

	// Lifecycle reports and accepts foreground/background transitions.
	Lifecycle *Lifecycle

	accountID string
	logger    *logger.Logger
	storages  *store.ClientStorages
	services  *service.ClientServices
}

// New wires the full client from the supplied configuration. The local
// account id comes from config when pinned, otherwise a fresh identifier is
// generated for this installation.
func New(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	accountID := cfg.App.AccountID
	if accountID == "" {
		accountID = uuid.NewString()
		log.Info().Str("account_id", accountID).Msg("generated local account id")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("storage init: %w", err)
	}

	sessions, err := crypto.NewFileSessionStore(cfg.Storage.SessionsDir, cfg.App.DeviceSecret)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("session store init: %w", err)
	}

	backend := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	lifecycle := NewLifecycle()
	services := service.NewClientServices(
		accountID,
		storages,
		backend,
		sessions,
		lifecycle,
		cfg.Workers.ActivationInitialDelay,
		cfg.Workers.ActivationMaxDelay,
		log,
	)

	return &App{
		Manager:   services.Manager,
		Lifecycle: lifecycle,
		accountID: accountID,
		logger:    log,
		storages:  storages,
		services:  services,
	}, nil
}

// AccountID returns the local account identifier the app manages.
func (a *App) AccountID() string {
	return a.accountID
}

// Run starts the background workers and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.logger.Info().Str("account_id", a.accountID).Msg("session keeper started")
	a.services.Workers.Run(ctx)
	a.logger.Info().Msg("session keeper stopped")
}

// Close releases the storage layer. Call after Run has returned.
func (a *App) Close() error {
	return a.storages.Close()
}
