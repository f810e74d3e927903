// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/adapter"
	"github.com/MKhiriev/go-session-keeper/internal/crypto"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/store"
	"github.com/MKhiriev/go-session-keeper/models"
)

const registrationEventsBuffer = 4

// accountManager implements AccountManager for a single account id.
//
// Mutating paths (login, registration steps, logout, profile edits) hold mu
// for their whole duration. The snapshot and active fields are written only
// while mu is held and read lock-free by everyone else.
type accountManager struct {
	accountID string
	accounts  store.AccountRepository
	clients   store.ClientRepository
	profiles  store.ProfileRepository
	backend   adapter.BackendAdapter
	sessions  crypto.SessionStore
	logger    *logger.Logger
	now       func() time.Time

	mu    sync.Mutex
	creds models.Credentials

	snapshot atomic.Pointer[models.Account]
	active   atomic.Pointer[ActiveSession]

	loggedInMu   sync.Mutex
	loggedIn     bool
	loggedInSubs map[int]chan bool
	nextSub      int

	events chan models.ClientState

	hookMu     sync.Mutex
	logoutHook func(accountID string, flushed bool)
}

// NewAccountManager builds the session orchestrator for accountID on top of
// the local storages, the backend adapter and the crypto session store.
func NewAccountManager(accountID string, storages *store.ClientStorages, backend adapter.BackendAdapter, sessions crypto.SessionStore, log *logger.Logger) AccountManager {
	m := &accountManager{
		accountID:    accountID,
		accounts:     storages.Accounts,
		clients:      storages.Clients,
		profiles:     storages.Profiles,
		backend:      backend,
		sessions:     sessions,
		logger:       log.GetChildLogger("account-manager"),
		now:          time.Now,
		loggedInSubs: make(map[int]chan bool),
		events:       make(chan models.ClientState, registrationEventsBuffer),
	}

	if account, err := storages.Accounts.Get(context.Background(), accountID); err == nil {
		m.refreshDerived(account)
	}

	return m
}

func (m *accountManager) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.creds = creds
	m.logger.Info().Str("account_id", m.accountID).Msg("login requested")

	if _, err := m.persist(ctx, func(a *models.Account) {
		if creds.Email != "" {
			a.Email = creds.Email
		}
		if creds.Phone != "" {
			a.Phone = creds.Phone
		}
		if creds.Handle != "" {
			a.Handle = creds.Handle
		}
	}); err != nil {
		return models.Account{}, err
	}

	return m.ensureLocked(ctx)
}

func (m *accountManager) EnsureFullyRegistered(ctx context.Context) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureLocked(ctx)
}

// ensureLocked walks the registration steps in order, persisting after every
// completed step so an interrupted run resumes where it stopped. Callers hold
// mu.
func (m *accountManager) ensureLocked(ctx context.Context) (models.Account, error) {
	account, err := m.accounts.Get(ctx, m.accountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrMissingAccount
	}
	if err != nil {
		return models.Account{}, err
	}

	if account, err = m.ensureCryptoSession(ctx, account); err != nil {
		return account, err
	}

	if account, err = m.ensureActivated(ctx, account); err != nil || !account.Verified {
		return account, err
	}
	m.backend.SetToken(account.AccessToken)
	m.backend.SetCookie(account.Cookie)

	if account, err = m.ensureSelfProfile(ctx, account); err != nil {
		return account, err
	}

	var done bool
	if account, done, err = m.ensureClientRegistered(ctx, account); err != nil || !done {
		return account, err
	}

	if account, err = m.ensureTeamResolved(ctx, account); err != nil {
		return account, err
	}

	m.logger.Debug().Str("account_id", m.accountID).Bool("complete", account.RegistrationComplete()).Msg("registration sequence finished")
	return account, nil
}

// ensureCryptoSession verifies local key material exists, rebuilding it from
// scratch when it was wiped or no longer opens. Losing the material orphans
// the registered client, so the client registration state is reset too.
func (m *accountManager) ensureCryptoSession(ctx context.Context, account models.Account) (models.Account, error) {
	_, err := m.sessions.Open(m.accountID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, crypto.ErrNoSession) {
		m.logger.Warn().Err(err).Str("account_id", m.accountID).Msg("crypto session unreadable, discarding")
		if err := m.sessions.Delete(m.accountID); err != nil {
			return account, fmt.Errorf("%w: %v", ErrCryptoBoxUnavailable, err)
		}
	}

	if account.ClientID != "" || account.ClientState != models.ClientStateUnknown {
		account, err = m.persist(ctx, func(a *models.Account) {
			a.ClientID = ""
			a.ClientState = models.ClientStateUnknown
		})
		if err != nil {
			return account, err
		}
	}

	if _, err := m.sessions.Create(m.accountID); err != nil {
		return account, fmt.Errorf("%w: %v", ErrCryptoBoxUnavailable, err)
	}
	m.logger.Info().Str("account_id", m.accountID).Msg("crypto session created")
	return account, nil
}

// ensureActivated logs in against the backend when the account is not yet
// verified or its access token expired. A pending activation is not an
// error here: the step leaves the account unverified and the sequence
// short-circuits, to be retried by the activation poller.
func (m *accountManager) ensureActivated(ctx context.Context, account models.Account) (models.Account, error) {
	if account.Verified && !account.AccessToken.Expired(m.now()) {
		return account, nil
	}

	result, err := m.backend.Login(ctx, m.accountID, m.creds)
	if errors.Is(err, adapter.ErrPendingActivation) {
		m.logger.Debug().Str("account_id", m.accountID).Msg("activation still pending")
		return account, nil
	}
	if err != nil {
		return account, err
	}

	return m.persist(ctx, func(a *models.Account) {
		a.Verified = true
		a.AccessToken = result.Token
		if result.Cookie != "" {
			a.Cookie = result.Cookie
		}
	})
}

// ensureSelfProfile loads the self profile once and mirrors it into the
// profile collection and onto the account record.
func (m *accountManager) ensureSelfProfile(ctx context.Context, account models.Account) (models.Account, error) {
	if account.UserID != "" {
		return account, nil
	}

	profile, err := m.backend.LoadSelfProfile(ctx)
	if err != nil {
		return account, err
	}

	mirror := models.UserProfile{
		UserID:     profile.UserID,
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Handle:     profile.Handle,
		Connection: models.ConnectionSelf,
	}
	if err := m.profiles.Save(ctx, mirror); err != nil {
		return account, err
	}

	return m.persist(ctx, func(a *models.Account) {
		a.UserID = profile.UserID
		a.Email = profile.Email
		a.Phone = profile.Phone
		a.Handle = profile.Handle
	})
}

// ensureClientRegistered registers this device with the backend. Transitional
// outcomes (client limit reached, password required) are persisted as client
// state, surfaced as registration events and end the sequence without error;
// done reports whether the sequence may continue to team resolution.
func (m *accountManager) ensureClientRegistered(ctx context.Context, account models.Account) (models.Account, bool, error) {
	if account.ClientID != "" {
		return account, true, nil
	}

	result, err := m.backend.RegisterClient(ctx, models.ClientRegistrationRequest{
		Password: m.creds.Password,
		Label:    m.creds.Label,
		Time:     m.now().UTC(),
	})
	if err != nil {
		return account, false, err
	}

	if result.State != models.ClientStateRegistered || result.Client == nil {
		account, err = m.persist(ctx, func(a *models.Account) {
			a.ClientState = result.State
			a.ClientID = ""
		})
		if err != nil {
			return account, false, err
		}
		m.notifyRegistrationState(result.State)
		m.logger.Info().Str("account_id", m.accountID).Str("client_state", string(result.State)).Msg("client registration deferred")
		return account, false, nil
	}

	client := *result.Client
	client.AccountID = m.accountID
	if client.RegisteredAt.IsZero() {
		client.RegisteredAt = m.now().UTC()
	}
	if err := m.clients.Save(ctx, client); err != nil {
		return account, false, err
	}

	account, err = m.persist(ctx, func(a *models.Account) {
		a.ClientID = client.ID
		a.ClientState = models.ClientStateRegistered
	})
	if err != nil {
		return account, false, err
	}
	m.logger.Info().Str("account_id", m.accountID).Str("client_id", client.ID).Msg("client registered")
	return account, true, nil
}

// ensureTeamResolved settles team membership exactly once. Permission lookup
// failures are tolerated: membership is recorded and permissions stay zero
// until the next full pass.
func (m *accountManager) ensureTeamResolved(ctx context.Context, account models.Account) (models.Account, error) {
	if account.TeamState != models.TeamUnchecked {
		return account, nil
	}

	team, err := m.backend.FindSelfTeam(ctx)
	if err != nil {
		return account, err
	}

	teamState := models.TeamNone
	teamID := ""
	var permissions int64
	if team.HasTeam {
		teamState = models.TeamResolved
		teamID = team.TeamID
		perms, err := m.backend.GetPermissions(ctx, team.TeamID, account.UserID)
		if err != nil {
			m.logger.Warn().Err(err).Str("team_id", team.TeamID).Msg("permissions lookup failed")
		} else {
			permissions = perms.Self
		}
		if profile, err := m.profiles.Get(ctx, account.UserID); err == nil {
			profile.TeamID = teamID
			if err := m.profiles.Save(ctx, profile); err != nil {
				m.logger.Warn().Err(err).Msg("profile team mirror failed")
			}
		}
	}

	return m.persist(ctx, func(a *models.Account) {
		a.TeamState = teamState
		a.TeamID = teamID
		a.Permissions = permissions
	})
}

func (m *accountManager) Activate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, err := m.accounts.Get(ctx, m.accountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return ErrMissingAccount
	}
	if err != nil {
		return err
	}
	if account.Verified {
		return nil
	}

	result, err := m.backend.Login(ctx, m.accountID, m.creds)
	if err != nil {
		return err
	}

	_, err = m.persist(ctx, func(a *models.Account) {
		a.Verified = true
		a.AccessToken = result.Token
		if result.Cookie != "" {
			a.Cookie = result.Cookie
		}
	})
	return err
}

func (m *accountManager) GetActiveSession(ctx context.Context) (*ActiveSession, error) {
	if session := m.active.Load(); session != nil {
		return session, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, err := m.accounts.Get(ctx, m.accountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !account.LoggedIn() {
		return nil, nil
	}

	if account, err = m.ensureLocked(ctx); err != nil {
		return nil, err
	}
	if !account.RegistrationComplete() {
		return nil, nil
	}

	box, err := m.sessions.Open(m.accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoBoxUnavailable, err)
	}

	session := &ActiveSession{
		AccountID:   m.accountID,
		UserID:      account.UserID,
		ClientID:    account.ClientID,
		TeamID:      account.TeamID,
		Permissions: account.Permissions,
		Crypto:      box,
	}
	m.active.Store(session)
	return session, nil
}

func (m *accountManager) Logout(ctx context.Context, flushCredentials bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logoutLocked(ctx, flushCredentials)
}

func (m *accountManager) logoutLocked(ctx context.Context, flushCredentials bool) error {
	m.active.Store(nil)
	m.backend.SetToken("")
	m.backend.SetCookie("")
	if flushCredentials {
		m.creds = models.Credentials{}
	}

	_, err := m.persist(ctx, func(a *models.Account) {
		a.Cookie = ""
		a.AccessToken = ""
	})
	if err != nil {
		return err
	}

	m.logger.Info().Str("account_id", m.accountID).Bool("flushed", flushCredentials).Msg("logged out")
	m.notifyLogoutHook(flushCredentials)
	return nil
}

func (m *accountManager) HandleDeviceRevoked(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Warn().Str("account_id", m.accountID).Msg("registered client revoked by server")
	if err := m.logoutLocked(ctx, false); err != nil {
		return err
	}
	return m.sessions.Delete(m.accountID)
}

func (m *accountManager) HandleSelfDeleted(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Warn().Str("account_id", m.accountID).Msg("own profile deleted, removing account")
	if err := m.logoutLocked(ctx, true); err != nil {
		return err
	}
	if err := m.sessions.Delete(m.accountID); err != nil {
		return err
	}
	// TODO(MKhiriev): purge the account's message history once the message
	// store lands; for now only the account record is removed.
	if err := m.accounts.Remove(ctx, m.accountID); err != nil {
		return err
	}
	m.snapshot.Store(nil)
	m.publishLoggedIn(false)
	return nil
}

func (m *accountManager) IsLoggedIn() bool {
	if account := m.snapshot.Load(); account != nil {
		return account.LoggedIn()
	}
	return false
}

func (m *accountManager) ActiveSessionSnapshot() *ActiveSession {
	return m.active.Load()
}

func (m *accountManager) LoggedInSignal() (<-chan bool, func()) {
	m.loggedInMu.Lock()
	defer m.loggedInMu.Unlock()

	ch := make(chan bool, 1)
	ch <- m.loggedIn
	id := m.nextSub
	m.nextSub++
	m.loggedInSubs[id] = ch

	return ch, func() {
		m.loggedInMu.Lock()
		defer m.loggedInMu.Unlock()
		if sub, ok := m.loggedInSubs[id]; ok {
			delete(m.loggedInSubs, id)
			close(sub)
		}
	}
}

func (m *accountManager) RegistrationEvents() <-chan models.ClientState {
	return m.events
}

func (m *accountManager) HasPassword() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creds.HasPassword()
}

func (m *accountManager) SetLogoutHook(fn func(accountID string, flushed bool)) {
	m.hookMu.Lock()
	defer m.hookMu.Unlock()
	m.logoutHook = fn
}

// Run mirrors committed account record writes into the lock-free views, so
// writes made outside the manager (the profile sync-back watch, tooling) are
// reflected too.
func (m *accountManager) Run(ctx context.Context) {
	updates, cancel := m.accounts.Signal(m.accountID)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case account, ok := <-updates:
			if !ok {
				return
			}
			m.refreshDerived(account)
		}
	}
}

// persist commits a record mutation and refreshes the derived views. The
// client invariant is enforced on every write path: a client id is stored
// only alongside the registered state.
func (m *accountManager) persist(ctx context.Context, transform func(*models.Account)) (models.Account, error) {
	account, err := m.accounts.UpdateOrCreate(ctx, m.accountID, func(a *models.Account) {
		transform(a)
		if a.ClientState != models.ClientStateRegistered {
			a.ClientID = ""
		}
		if a.TeamState == "" {
			a.TeamState = models.TeamUnchecked
		}
		if a.ClientState == "" {
			a.ClientState = models.ClientStateUnknown
		}
	}, models.Account{ID: m.accountID, ClientState: models.ClientStateUnknown, TeamState: models.TeamUnchecked})
	if err != nil {
		return models.Account{}, err
	}
	m.refreshDerived(account)
	return account, nil
}

// refreshDerived stores the latest committed record as the read snapshot,
// republishes the logged-in flag and drops the cached active session when
// the identity it was built for no longer matches.
func (m *accountManager) refreshDerived(account models.Account) {
	record := account
	m.snapshot.Store(&record)
	m.publishLoggedIn(account.LoggedIn())

	if session := m.active.Load(); session != nil {
		current := sessionKey{userID: account.UserID, clientID: account.ClientID, teamID: account.TeamID}
		if session.key() != current {
			m.active.CompareAndSwap(session, nil)
			m.logger.Debug().Str("account_id", m.accountID).Msg("active session invalidated")
		}
	}
}

func (m *accountManager) publishLoggedIn(loggedIn bool) {
	m.loggedInMu.Lock()
	defer m.loggedInMu.Unlock()

	if loggedIn == m.loggedIn {
		return
	}
	m.loggedIn = loggedIn
	for _, sub := range m.loggedInSubs {
		select {
		case sub <- loggedIn:
		default:
			// slow subscriber keeps only the freshest value
			select {
			case <-sub:
			default:
			}
			sub <- loggedIn
		}
	}
}

func (m *accountManager) notifyRegistrationState(state models.ClientState) {
	select {
	case m.events <- state:
	default:
		m.logger.Warn().Str("client_state", string(state)).Msg("registration event dropped, channel full")
	}
}

func (m *accountManager) notifyLogoutHook(flushed bool) {
	m.hookMu.Lock()
	hook := m.logoutHook
	m.hookMu.Unlock()
	if hook != nil {
		hook(m.accountID, flushed)
	}
}
