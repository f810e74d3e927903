package models

// Credentials carries the user-supplied login material for one account.
// Exactly one of Email, Phone or Handle identifies the account; Password is
// optional (a cookie-only refresh carries none). Credentials live in the
// session manager's memory and are passed explicitly to the credentials
// provider; they are never persisted.
type Credentials struct {
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Handle string `json:"handle,omitempty"`

	// Password is the account password. Required for device registration
	// re-authentication and for activation polling to make sense.
	Password string `json:"password,omitempty"`

	// Label is the device label used when registering a client.
	Label string `json:"label,omitempty"`
}

// HasPassword reports whether a password is available, which gates the
// activation poller (verification is only awaitable with a password).
func (c Credentials) HasPassword() bool {
	return c.Password != ""
}

// Empty reports whether no identifying credential is present.
func (c Credentials) Empty() bool {
	return c.Email == "" && c.Phone == "" && c.Handle == ""
}
