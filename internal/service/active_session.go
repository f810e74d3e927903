package service

import "github.com/MKhiriev/go-session-keeper/internal/crypto"

// ActiveSession is the materialized, ready-to-use view of a fully registered
// account: the resolved identity plus an open crypto session. Instances are
// immutable; the manager caches the latest one and hands out the same pointer
// until the underlying identity changes.
type ActiveSession struct {
	AccountID   string
	UserID      string
	ClientID    string
	TeamID      string
	Permissions int64
	Crypto      *crypto.Session
}

// sessionKey is the identity triple a cached session is keyed by. A record
// write that changes any component invalidates the cache.
type sessionKey struct {
	userID   string
	clientID string
	teamID   string
}

func (s *ActiveSession) key() sessionKey {
	return sessionKey{userID: s.UserID, clientID: s.ClientID, teamID: s.TeamID}
}
