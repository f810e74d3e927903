package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/internal/workers"
)

// ClientServices bundles the account manager with the background workers
// that keep it honest: the activation poller and the reactive watchers.
type ClientServices struct {
	Manager AccountManager
	Workers *workers.Workers
}

// NewClientServices wires the session lifecycle services for one account.
// An invalid-credentials signal from the backend flushes the stored
// credentials via a forced logout.
func NewClientServices(accountID string, storages *store.ClientStorages, backend adapter.BackendAdapter, sessions crypto.SessionStore, foreground ForegroundSignal, activationInitialDelay, activationMaxDelay time.Duration, log *logger.Logger) *ClientServices {
	manager := NewAccountManager(accountID, storages, backend, sessions, log)

	backend.OnInvalidCredentials(func() {
		if err := manager.Logout(context.Background(), true); err != nil {
			log.Error().Err(err).Str("account_id", accountID).Msg("forced logout after credential rejection failed")
		}
	})

	pool := &workers.Workers{}
	pool.Add(
		managerWorker{manager},
		NewActivationPoller(accountID, manager, storages.Accounts, foreground, activationInitialDelay, activationMaxDelay, log),
		NewClientExistenceWatcher(accountID, storages.Accounts, storages.Clients, manager, log),
		NewSelfDeletedWatcher(accountID, storages.Accounts, storages.Profiles, manager, log),
		NewProfileSyncBackWatcher(accountID, storages.Accounts, storages.Profiles, log),
		NewSignalingKeyWatcher(accountID, storages.Accounts, storages.Clients, backend, log),
		NewNeedsRegistrationWatcher(accountID, storages.Accounts, manager, log),
	)

	return &ClientServices{Manager: manager, Workers: pool}
}

// managerWorker adapts the manager's snapshot upkeep loop to the worker pool.
type managerWorker struct {
	manager AccountManager
}

func (w managerWorker) Run(ctx context.Context) {
	w.manager.Run(ctx)
}
