package models

import "time"

// ClientState describes how far device (client) registration has progressed
// for an account. It is persisted as a plain string so the local database
// stays readable during debugging.
type ClientState string

const (
	// ClientStateUnknown means registration has not been attempted yet, or
	// the previous registration was invalidated (e.g. the local crypto
	// session was wiped).
	ClientStateUnknown ClientState = "unknown"

	// ClientStatePasswordMissing means the backend refused to register the
	// device because it requires the account password to be re-entered.
	ClientStatePasswordMissing ClientState = "password-missing"

	// ClientStateLimitReached means the backend refused to register the
	// device because the account already has the maximum number of clients.
	ClientStateLimitReached ClientState = "limit-reached"

	// ClientStateRegistered means the device was registered successfully and
	// Account.ClientID refers to a persisted [DeviceClient].
	ClientStateRegistered ClientState = "registered"
)

// TeamState describes whether the account's team affiliation has been
// resolved against the backend.
//
// The state only ever moves forward: TeamUnchecked → {TeamNone | TeamResolved}.
// It never returns to TeamUnchecked.
type TeamState string

const (
	// TeamUnchecked means the backend has not been asked yet.
	TeamUnchecked TeamState = "unchecked"

	// TeamNone means the backend reported the account belongs to no team.
	TeamNone TeamState = "none"

	// TeamResolved means the account belongs to the team identified by
	// Account.TeamID.
	TeamResolved TeamState = "resolved"
)

// Account is the persisted per-account authentication and registration state.
// One record exists per logical account; it is the single source of truth the
// session manager and all derived views are computed from.
//
// Invariants maintained by the session manager:
//   - ClientID is non-empty only when ClientState == ClientStateRegistered.
//   - TeamState never transitions back to TeamUnchecked.
type Account struct {
	// ID is the account identifier, assigned locally on first login attempt.
	ID string `json:"id"`

	// Cookie is the opaque bearer cookie returned by the credentials
	// provider. A non-empty cookie is what "logged in" means.
	Cookie string `json:"-"`

	// AccessToken is the short-lived bearer token for backend calls.
	// It is re-obtained from the cookie when expired.
	AccessToken Token `json:"-"`

	// Verified reports whether email/phone activation has completed.
	// While false the account is in the pending-activation state and the
	// activation poller keeps retrying.
	Verified bool `json:"verified"`

	// UserID is the backend user identifier, set once the self profile has
	// been resolved. Empty until then.
	UserID string `json:"user_id"`

	// ClientID refers to the registered [DeviceClient] for this account.
	// Empty unless ClientState is ClientStateRegistered.
	ClientID string `json:"client_id"`

	// ClientState is the device registration state, see [ClientState].
	ClientState ClientState `json:"client_state"`

	// TeamState is the team affiliation resolution state, see [TeamState].
	TeamState TeamState `json:"team_state"`

	// TeamID identifies the team the account belongs to.
	// Empty unless TeamState is TeamResolved.
	TeamID string `json:"team_id"`

	// Permissions is the bitmask of team permissions fetched after team
	// resolution. Zero when unknown (a failed permissions fetch degrades to
	// "no permissions known" rather than failing registration).
	Permissions int64 `json:"permissions"`

	// Email, Phone and Handle mirror the self profile's contact fields so
	// components reading only the account record see current contact info.
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Handle string `json:"handle"`

	// PendingPassword reports whether a password is held in memory for this
	// account, which makes activation polling worthwhile. The password
	// itself never touches the record store.
	PendingPassword bool `json:"-"`

	// CreatedAt and UpdatedAt are maintained by the account store.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoggedIn reports whether the account holds a credential cookie.
func (a Account) LoggedIn() bool {
	return a.Cookie != ""
}

// RegistrationComplete reports whether every registration step has finished:
// the account is verified, the self profile is resolved and a device client
// is registered.
func (a Account) RegistrationComplete() bool {
	return a.Verified && a.UserID != "" && a.ClientID != ""
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
