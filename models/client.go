package models

import "time"

// DeviceClient represents one registered device for an account. The account
// record references it weakly via Account.ClientID; the client row is looked
// up, never embedded.
type DeviceClient struct {
	// ID is the backend-assigned client identifier.
	ID string `json:"id"`

	// AccountID is the owning account.
	AccountID string `json:"account_id"`

	// Label is the human-readable device label sent during registration
	// (e.g. "work laptop").
	Label string `json:"label"`

	// SignalingKey is the push-signaling key material. It is empty right
	// after registration and filled in by a best-effort follow-up call.
	SignalingKey string `json:"signaling_key"`

	// RegisteredAt is when the backend accepted the registration.
	RegisteredAt time.Time `json:"registered_at"`
}

// HasSignalingKey reports whether the post-registration follow-up call has
// completed for this client.
func (c DeviceClient) HasSignalingKey() bool {
	return c.SignalingKey != ""
}

// TableName returns the name of the database table
// associated with the DeviceClient model.
func (c DeviceClient) TableName() string {
	return "device_clients"
}
