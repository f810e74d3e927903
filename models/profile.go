package models

// ConnectionSelf is the connection status stored on the profile mirror of the
// account's own user.
const ConnectionSelf = "self"

// UserProfile is the local mirror of the backend self-user profile. It is
// written during the self-profile registration step and kept in sync with the
// account record's contact fields in both directions: profile→record on
// external change, record→profile on explicit update calls.
type UserProfile struct {
	// UserID is the backend user identifier, matching Account.UserID.
	UserID string `json:"user_id"`

	// Name is the display name.
	Name string `json:"name"`

	// Email, Phone and Handle are the user's contact fields.
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Handle string `json:"handle"`

	// TeamID mirrors the resolved team affiliation, if any.
	TeamID string `json:"team_id"`

	// Deleted is set when the backend reports the user as deleted. The
	// self-deleted watch reacts to the transition into this state.
	Deleted bool `json:"deleted"`

	// Connection is the relationship to the local account. The self user
	// always carries [ConnectionSelf].
	Connection string `json:"connection"`
}

// TableName returns the name of the database table
// associated with the UserProfile model.
func (p UserProfile) TableName() string {
	return "user_profiles"
}
