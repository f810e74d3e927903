package models

import "time"

// LoginResult is the structured outcome of a successful credentials-provider
// login or token refresh.
type LoginResult struct {
	// Token is the fresh access token.
	Token Token `json:"token"`

	// Cookie is the long-lived bearer cookie. May be empty on a pure token
	// refresh, in which case the previously stored cookie stays valid.
	Cookie string `json:"cookie"`
}

// SelfProfileResponse is the decoded backend payload for the self user.
type SelfProfileResponse struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Handle  string `json:"handle"`
	Deleted bool   `json:"deleted"`
}

// TeamResponse is the decoded backend payload for the self-team lookup.
type TeamResponse struct {
	// HasTeam reports whether the account belongs to a team at all.
	HasTeam bool `json:"has_team"`

	// TeamID identifies the team when HasTeam is true.
	TeamID string `json:"team_id"`
}

// PermissionsResponse is the decoded backend payload for a team permissions
// lookup.
type PermissionsResponse struct {
	// Self is the permissions bitmask of the user within the team.
	Self int64 `json:"self"`
}

// ClientRegistrationResult is the structured outcome of a device registration
// attempt. Transitional refusals (limit reached, password required) are
// results, not errors: the caller persists the state and moves on.
type ClientRegistrationResult struct {
	// State is the resulting registration state.
	State ClientState `json:"state"`

	// Client is the registered device. Nil unless State is
	// ClientStateRegistered.
	Client *DeviceClient `json:"client,omitempty"`
}

// ClientRegistrationRequest is the payload sent when registering this device.
type ClientRegistrationRequest struct {
	Password string    `json:"password,omitempty"`
	Label    string    `json:"label"`
	Time     time.Time `json:"time"`
}
