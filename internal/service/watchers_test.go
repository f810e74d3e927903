package service

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/models"
)

type fakeRevoker struct{ calls atomic.Int32 }

func (f *fakeRevoker) HandleDeviceRevoked(context.Context) error {
	f.calls.Add(1)
	return nil
}

type fakeSelfDeletedHandler struct{ calls atomic.Int32 }

func (f *fakeSelfDeletedHandler) HandleSelfDeleted(context.Context) error {
	f.calls.Add(1)
	return nil
}

type fakeRegistrar struct{ calls atomic.Int32 }

func (f *fakeRegistrar) EnsureFullyRegistered(context.Context) (models.Account, error) {
	f.calls.Add(1)
	return models.Account{}, nil
}

// fakeSignalingBackend реализует только RegisterSignalingKey; остальные
// методы унаследованы от встроенного nil-интерфейса и не вызываются.
type fakeSignalingBackend struct {
	adapter.BackendAdapter
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeSignalingBackend) RegisterSignalingKey(context.Context, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return "sig-key", f.err
}

func (f *fakeSignalingBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newWatcherStorages(t *testing.T) *store.ClientStorages {
	t.Helper()
	storages, err := store.NewClientStorages(config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "test.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

func seedRegisteredAccount(t *testing.T, storages *store.ClientStorages) {
	t.Helper()
	_, err := storages.Accounts.UpdateOrCreate(context.Background(), "acc-1", func(a *models.Account) {
		a.Cookie = "zid"
		a.Verified = true
		a.UserID = "user-1"
		a.ClientID = "dev-1"
		a.ClientState = models.ClientStateRegistered
		a.Email = "old@e.com"
	}, models.Account{TeamState: models.TeamUnchecked})
	require.NoError(t, err)
}

// ── ClientExistenceWatcher ───────────────────────────────────────────────────

func TestClientExistenceWatcher_FiresOnceWhenClientVanishes(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedRegisteredAccount(t, storages)
	require.NoError(t, storages.Clients.Save(ctx, models.DeviceClient{ID: "dev-1", AccountID: "acc-1"}))

	revoker := &fakeRevoker{}
	watcher := NewClientExistenceWatcher("acc-1", storages.Accounts, storages.Clients, revoker, logger.Nop())
	go watcher.Run(ctx)

	// даём watcher время на начальный recompute (клиент существует)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), revoker.calls.Load())

	// сервер отозвал устройство — строка клиента исчезла
	require.NoError(t, storages.Clients.Delete(ctx, "dev-1"))

	require.Eventually(t, func() bool { return revoker.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// повторные перерасчёты не дублируют forced logout
	require.NoError(t, storages.Clients.Save(ctx, models.DeviceClient{ID: "dev-other", AccountID: "acc-2"}))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), revoker.calls.Load(), "forced logout должен сработать ровно один раз")
}

func TestClientExistenceWatcher_IgnoresClientThatNeverExisted(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// аккаунт ссылается на клиента, которого локально ещё нет:
	// регистрация ещё не дошла до сохранения строки
	seedRegisteredAccount(t, storages)

	revoker := &fakeRevoker{}
	watcher := NewClientExistenceWatcher("acc-1", storages.Accounts, storages.Clients, revoker, logger.Nop())
	go watcher.Run(ctx)

	_, err := storages.Accounts.UpdateOrCreate(ctx, "acc-1", func(a *models.Account) {
		a.Phone = "+1"
	}, models.Account{})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), revoker.calls.Load(), "без факта существования отзыва нет")
}

// ── SelfDeletedWatcher ───────────────────────────────────────────────────────

func TestSelfDeletedWatcher_FiresOnDeletionTransition(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedRegisteredAccount(t, storages)

	handler := &fakeSelfDeletedHandler{}
	watcher := NewSelfDeletedWatcher("acc-1", storages.Accounts, storages.Profiles, handler, logger.Nop())
	go watcher.Run(ctx)
	time.Sleep(20 * time.Millisecond)

	// живой профиль не триггерит удаление
	require.NoError(t, storages.Profiles.Save(ctx, models.UserProfile{UserID: "user-1", Connection: models.ConnectionSelf}))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), handler.calls.Load())

	// переход alive → deleted
	require.NoError(t, storages.Profiles.Save(ctx, models.UserProfile{UserID: "user-1", Deleted: true}))
	require.Eventually(t, func() bool { return handler.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// повтор того же состояния не дублирует обработку
	require.NoError(t, storages.Profiles.Save(ctx, models.UserProfile{UserID: "user-1", Deleted: true}))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), handler.calls.Load())
}

func TestSelfDeletedWatcher_IgnoresForeignProfiles(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedRegisteredAccount(t, storages)

	handler := &fakeSelfDeletedHandler{}
	watcher := NewSelfDeletedWatcher("acc-1", storages.Accounts, storages.Profiles, handler, logger.Nop())
	go watcher.Run(ctx)
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, storages.Profiles.Save(ctx, models.UserProfile{UserID: "stranger", Deleted: true}))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), handler.calls.Load())
}

// ── ProfileSyncBackWatcher ───────────────────────────────────────────────────

func TestProfileSyncBackWatcher_MirrorsContactsOntoAccount(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedRegisteredAccount(t, storages)

	watcher := NewProfileSyncBackWatcher("acc-1", storages.Accounts, storages.Profiles, logger.Nop())
	go watcher.Run(ctx)
	time.Sleep(20 * time.Millisecond)

	// внешняя синхронизация профиля изменила контакты
	require.NoError(t, storages.Profiles.Save(ctx, models.UserProfile{
		UserID: "user-1",
		Email:  "synced@e.com",
		Phone:  "+200",
	}))

	require.Eventually(t, func() bool {
		account, err := storages.Accounts.Get(ctx, "acc-1")
		return err == nil && account.Email == "synced@e.com" && account.Phone == "+200"
	}, time.Second, 5*time.Millisecond, "контакты должны перетечь в запись аккаунта")
}

// ── SignalingKeyWatcher ──────────────────────────────────────────────────────

func TestSignalingKeyWatcher_BackfillsMissingKey(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedRegisteredAccount(t, storages)
	require.NoError(t, storages.Clients.Save(ctx, models.DeviceClient{ID: "dev-1", AccountID: "acc-1"}))

	backend := &fakeSignalingBackend{}
	watcher := NewSignalingKeyWatcher("acc-1", storages.Accounts, storages.Clients, backend, logger.Nop())
	go watcher.Run(ctx)

	require.Eventually(t, func() bool {
		client, err := storages.Clients.Get(ctx, "dev-1")
		return err == nil && client.SignalingKey == "sig-key"
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, backend.callCount())

	// клиент с ключом больше не трогается
	_, err := storages.Accounts.UpdateOrCreate(ctx, "acc-1", func(a *models.Account) {
		a.Phone = "+1"
	}, models.Account{})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, backend.callCount())
}

func TestSignalingKeyWatcher_FailedAttemptIsNotRetriedUntilChange(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedRegisteredAccount(t, storages)
	require.NoError(t, storages.Clients.Save(ctx, models.DeviceClient{ID: "dev-1", AccountID: "acc-1"}))

	backend := &fakeSignalingBackend{err: adapter.ErrForbidden}
	watcher := NewSignalingKeyWatcher("acc-1", storages.Accounts, storages.Clients, backend, logger.Nop())
	go watcher.Run(ctx)

	require.Eventually(t, func() bool { return backend.callCount() == 1 }, time.Second, 5*time.Millisecond)

	// события аккаунта не приводят к повторному штурму backend
	_, err := storages.Accounts.UpdateOrCreate(ctx, "acc-1", func(a *models.Account) {
		a.Phone = "+1"
	}, models.Account{})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, backend.callCount())
}

// ── NeedsRegistrationWatcher ─────────────────────────────────────────────────

func TestNeedsRegistrationWatcher_RerunsRegistrationOnIncompleteAccount(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// залогинен и verified, но без клиента: регистрацию надо догнать
	_, err := storages.Accounts.UpdateOrCreate(ctx, "acc-1", func(a *models.Account) {
		a.Cookie = "zid"
		a.Verified = true
		a.UserID = "user-1"
	}, models.Account{ClientState: models.ClientStateUnknown, TeamState: models.TeamUnchecked})
	require.NoError(t, err)

	registrar := &fakeRegistrar{}
	watcher := NewNeedsRegistrationWatcher("acc-1", storages.Accounts, registrar, logger.Nop())
	go watcher.Run(ctx)

	require.Eventually(t, func() bool { return registrar.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestNeedsRegistrationWatcher_SkipsTransitionalClientStates(t *testing.T) {
	storages := newWatcherStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// лимит клиентов: перезапуск регистрации бессмыслен, ждём действий
	// пользователя
	_, err := storages.Accounts.UpdateOrCreate(ctx, "acc-1", func(a *models.Account) {
		a.Cookie = "zid"
		a.Verified = true
		a.UserID = "user-1"
		a.ClientState = models.ClientStateLimitReached
	}, models.Account{TeamState: models.TeamUnchecked})
	require.NoError(t, err)

	registrar := &fakeRegistrar{}
	watcher := NewNeedsRegistrationWatcher("acc-1", storages.Accounts, registrar, logger.Nop())
	go watcher.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), registrar.calls.Load())
}
