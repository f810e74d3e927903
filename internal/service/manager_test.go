// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/mock"
	"github.com/MKhiriev/go-session-keeper/internal/service"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/models"
)

const testAccountID = "acc-1"

type managerFixture struct {
	manager  service.AccountManager
	storages *store.ClientStorages
	sessions crypto.SessionStore
	backend  *mock.MockBackendAdapter
}

// newTestManager — хелпер: реальный SQLite и реальное файловое хранилище
// сессий, backend — мок.
func newTestManager(t *testing.T, ctrl *gomock.Controller) *managerFixture {
	t.Helper()

	storages, err := store.NewClientStorages(config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "test.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	sessions, err := crypto.NewFileSessionStore(t.TempDir(), "device-secret")
	require.NoError(t, err)

	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().SetToken(gomock.Any()).AnyTimes()
	backend.EXPECT().SetCookie(gomock.Any()).AnyTimes()

	manager := service.NewAccountManager(testAccountID, storages, backend, sessions, logger.Nop())

	return &managerFixture{
		manager:  manager,
		storages: storages,
		sessions: sessions,
		backend:  backend,
	}
}

// freshToken подписывает JWT с exp в будущем, чтобы ensure не ходил за
// повторным логином.
func freshToken(t *testing.T) models.Token {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return models.Token(raw)
}

func expectHappyRegistration(t *testing.T, f *managerFixture) {
	t.Helper()
	gomock.InOrder(
		f.backend.EXPECT().Login(gomock.Any(), testAccountID, gomock.Any()).
			Return(models.LoginResult{Token: freshToken(t), Cookie: "cookie-1"}, nil),
		f.backend.EXPECT().LoadSelfProfile(gomock.Any()).
			Return(models.SelfProfileResponse{UserID: "user-1", Name: "Test", Email: "u@e.com"}, nil),
		f.backend.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).
			Return(models.ClientRegistrationResult{
				State:  models.ClientStateRegistered,
				Client: &models.DeviceClient{ID: "dev-1", Label: "laptop"},
			}, nil),
		f.backend.EXPECT().FindSelfTeam(gomock.Any()).
			Return(models.TeamResponse{HasTeam: true, TeamID: "team-1"}, nil),
		f.backend.EXPECT().GetPermissions(gomock.Any(), "team-1", "user-1").
			Return(models.PermissionsResponse{Self: 7}, nil),
	)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAccountManager_Login_FullRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)

	account, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw", Label: "laptop"})
	require.NoError(t, err)

	assert.True(t, account.RegistrationComplete())
	assert.True(t, account.Verified)
	assert.Equal(t, "user-1", account.UserID)
	assert.Equal(t, "dev-1", account.ClientID)
	assert.Equal(t, models.ClientStateRegistered, account.ClientState)
	assert.Equal(t, models.TeamResolved, account.TeamState)
	assert.Equal(t, "team-1", account.TeamID)
	assert.Equal(t, int64(7), account.Permissions)
	assert.True(t, f.manager.IsLoggedIn())

	// клиент и профиль сохранены локально
	client, err := f.storages.Clients.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, testAccountID, client.AccountID)

	profile, err := f.storages.Profiles.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionSelf, profile.Connection)
	assert.Equal(t, "team-1", profile.TeamID)

	// криптосессия создана
	assert.True(t, f.sessions.Exists(testAccountID))
}

func TestAccountManager_Login_PendingActivationIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	f.backend.EXPECT().Login(gomock.Any(), testAccountID, gomock.Any()).
		Return(models.LoginResult{}, adapter.ErrPendingActivation)

	account, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err, "ожидание активации — не ошибка логина")

	assert.False(t, account.Verified)
	assert.Empty(t, account.UserID, "дальнейшие шаги не выполняются до активации")
	assert.True(t, f.manager.HasPassword(), "пароль остаётся в памяти для поллера")
}

func TestAccountManager_ConcurrentLogins_Serialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	var inFlight, maxInFlight atomic.Int32
	f.backend.EXPECT().Login(gomock.Any(), testAccountID, gomock.Any()).
		DoAndReturn(func(context.Context, string, models.Credentials) (models.LoginResult, error) {
			n := inFlight.Add(1)
			if n > maxInFlight.Load() {
				maxInFlight.Store(n)
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			// непрозрачный токен считается истёкшим, поэтому второй логин
			// тоже обращается к backend вместо пропуска шага
			return models.LoginResult{Token: "opaque-token", Cookie: "cookie"}, nil
		}).Times(2)
	f.backend.EXPECT().LoadSelfProfile(gomock.Any()).
		Return(models.SelfProfileResponse{UserID: "user-1"}, nil).AnyTimes()
	f.backend.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).
		Return(models.ClientRegistrationResult{
			State:  models.ClientStateRegistered,
			Client: &models.DeviceClient{ID: "dev-1"},
		}, nil).AnyTimes()
	f.backend.EXPECT().FindSelfTeam(gomock.Any()).
		Return(models.TeamResponse{}, nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load(), "логины должны выполняться строго по очереди")
}

// ── EnsureFullyRegistered ────────────────────────────────────────────────────

func TestAccountManager_Ensure_WithoutAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)

	_, err := f.manager.EnsureFullyRegistered(context.Background())
	assert.ErrorIs(t, err, service.ErrMissingAccount)
}

func TestAccountManager_Ensure_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	// повторный прогон не должен трогать backend: все шаги уже завершены
	account, err := f.manager.EnsureFullyRegistered(ctx)
	require.NoError(t, err)
	assert.True(t, account.RegistrationComplete())
}

func TestAccountManager_Ensure_RebuildsWipedCryptoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	// стираем локальный криптоматериал: клиентская регистрация осиротела
	require.NoError(t, f.sessions.Delete(testAccountID))

	// ensure пересоздаёт сессию и перерегистрирует устройство; профиль и
	// команда уже разрешены и не перезапрашиваются
	f.backend.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).
		Return(models.ClientRegistrationResult{
			State:  models.ClientStateRegistered,
			Client: &models.DeviceClient{ID: "dev-2"},
		}, nil)

	account, err := f.manager.EnsureFullyRegistered(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dev-2", account.ClientID)
	assert.True(t, f.sessions.Exists(testAccountID))
	assert.Equal(t, models.TeamResolved, account.TeamState)
}

func TestAccountManager_Ensure_TransitionalClientState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		f.backend.EXPECT().Login(gomock.Any(), testAccountID, gomock.Any()).
			Return(models.LoginResult{Token: freshToken(t), Cookie: "cookie-1"}, nil),
		f.backend.EXPECT().LoadSelfProfile(gomock.Any()).
			Return(models.SelfProfileResponse{UserID: "user-1"}, nil),
		f.backend.EXPECT().RegisterClient(gomock.Any(), gomock.Any()).
			Return(models.ClientRegistrationResult{State: models.ClientStateLimitReached}, nil),
	)

	account, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err, "отказ по лимиту клиентов — состояние, а не ошибка")

	assert.Equal(t, models.ClientStateLimitReached, account.ClientState)
	assert.Empty(t, account.ClientID)
	assert.False(t, account.RegistrationComplete())

	// событие для UI доставлено
	select {
	case state := <-f.manager.RegistrationEvents():
		assert.Equal(t, models.ClientStateLimitReached, state)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for registration event")
	}
}

// ── GetActiveSession ─────────────────────────────────────────────────────────

func TestAccountManager_GetActiveSession_WithoutLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)

	session, err := f.manager.GetActiveSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session, "без cookie активной сессии нет")
}

func TestAccountManager_GetActiveSession_CachesByIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	first, err := f.manager.GetActiveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "user-1", first.UserID)
	assert.Equal(t, "dev-1", first.ClientID)
	assert.Equal(t, "team-1", first.TeamID)
	assert.Equal(t, int64(7), first.Permissions)
	require.NotNil(t, first.Crypto)
	assert.NotEmpty(t, first.Crypto.Secret)

	// повторный запрос возвращает тот же кэшированный указатель
	second, err := f.manager.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, first, f.manager.ActiveSessionSnapshot())
}

func TestAccountManager_ActiveSession_InvalidatedOnIdentityChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go f.manager.Run(runCtx)

	first, err := f.manager.GetActiveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	// внешняя запись меняет идентичность (team) — кэш должен сброситься
	_, err = f.storages.Accounts.UpdateOrCreate(ctx, testAccountID, func(a *models.Account) {
		a.TeamID = "team-2"
	}, models.Account{})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return f.manager.ActiveSessionSnapshot() == nil
	}, time.Second, 10*time.Millisecond, "кэш активной сессии должен инвалидироваться")
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAccountManager_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)
	_, err = f.manager.GetActiveSession(ctx)
	require.NoError(t, err)

	var hookAccount string
	var hookFlushed bool
	f.manager.SetLogoutHook(func(accountID string, flushed bool) {
		hookAccount, hookFlushed = accountID, flushed
	})

	require.NoError(t, f.manager.Logout(ctx, true))

	assert.False(t, f.manager.IsLoggedIn())
	assert.Nil(t, f.manager.ActiveSessionSnapshot())
	assert.False(t, f.manager.HasPassword(), "flush стирает учётные данные из памяти")
	assert.Equal(t, testAccountID, hookAccount)
	assert.True(t, hookFlushed)

	account, err := f.storages.Accounts.Get(ctx, testAccountID)
	require.NoError(t, err)
	assert.Empty(t, account.Cookie)
	assert.Empty(t, account.AccessToken.String())
	// регистрация не трогается: повторный логин продолжит с того же места
	assert.Equal(t, "user-1", account.UserID)
}

func TestAccountManager_LoggedInSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	events, cancel := f.manager.LoggedInSignal()
	defer cancel()

	// текущее значение доставляется сразу
	assert.False(t, <-events)

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	select {
	case loggedIn := <-events:
		assert.True(t, loggedIn)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for logged-in transition")
	}

	require.NoError(t, f.manager.Logout(ctx, false))

	select {
	case loggedIn := <-events:
		assert.False(t, loggedIn)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for logged-out transition")
	}
}

// ── Forced teardown ──────────────────────────────────────────────────────────

func TestAccountManager_HandleDeviceRevoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, f.manager.HandleDeviceRevoked(ctx))

	assert.False(t, f.manager.IsLoggedIn())
	assert.False(t, f.sessions.Exists(testAccountID), "криптоматериал удаляется при отзыве устройства")
}

func TestAccountManager_HandleSelfDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, f.manager.HandleSelfDeleted(ctx))

	assert.False(t, f.manager.IsLoggedIn())
	assert.False(t, f.sessions.Exists(testAccountID))
	_, err = f.storages.Accounts.Get(ctx, testAccountID)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

// ── Activate ─────────────────────────────────────────────────────────────────

func TestAccountManager_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	// сначала логин упирается в ожидание активации
	f.backend.EXPECT().Login(gomock.Any(), testAccountID, gomock.Any()).
		Return(models.LoginResult{}, adapter.ErrPendingActivation)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	// активация всё ещё не подтверждена
	f.backend.EXPECT().Login(gomock.Any(), testAccountID, gomock.Any()).
		Return(models.LoginResult{}, adapter.ErrPendingActivation)
	err = f.manager.Activate(ctx)
	assert.ErrorIs(t, err, adapter.ErrPendingActivation)

	// подтверждение пришло
	f.backend.EXPECT().Login(gomock.Any(), testAccountID, gomock.Any()).
		Return(models.LoginResult{Token: freshToken(t), Cookie: "cookie-1"}, nil)
	require.NoError(t, f.manager.Activate(ctx))

	account, err := f.storages.Accounts.Get(ctx, testAccountID)
	require.NoError(t, err)
	assert.True(t, account.Verified)

	// уже verified — без обращения к backend
	assert.NoError(t, f.manager.Activate(ctx))
}

// ── Profile mutations ────────────────────────────────────────────────────────

func TestAccountManager_UpdateEmail_RemoteFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	f.backend.EXPECT().PutEmail(gomock.Any(), "new@e.com").Return(nil)
	require.NoError(t, f.manager.UpdateEmail(ctx, "new@e.com"))

	account, err := f.storages.Accounts.Get(ctx, testAccountID)
	require.NoError(t, err)
	assert.Equal(t, "new@e.com", account.Email)

	profile, err := f.storages.Profiles.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "new@e.com", profile.Email)
}

func TestAccountManager_UpdateEmail_RemoteFailureMutatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "pw"})
	require.NoError(t, err)

	f.backend.EXPECT().PutEmail(gomock.Any(), "new@e.com").Return(adapter.ErrForbidden)
	err = f.manager.UpdateEmail(ctx, "new@e.com")
	assert.ErrorIs(t, err, adapter.ErrForbidden)

	// локальное состояние нетронуто
	account, err := f.storages.Accounts.Get(ctx, testAccountID)
	require.NoError(t, err)
	assert.Equal(t, "u@e.com", account.Email)
}

func TestAccountManager_UpdatePassword_SwapsInMemoryCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newTestManager(t, ctrl)
	ctx := context.Background()

	expectHappyRegistration(t, f)
	_, err := f.manager.Login(ctx, models.Credentials{Email: "u@e.com", Password: "old"})
	require.NoError(t, err)

	f.backend.EXPECT().PutPassword(gomock.Any(), "old", "new").Return(nil)
	require.NoError(t, f.manager.UpdatePassword(ctx, "old", "new"))
	assert.True(t, f.manager.HasPassword())
}
