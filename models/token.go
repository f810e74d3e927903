package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the compact serialized access token issued by the credentials
// provider. The client never verifies the signature (it has no key for that);
// it only inspects the expiry claim to decide whether the token can still be
// attached to requests or must be refreshed from the cookie.
type Token string

// String returns the compact serialization. It implements [fmt.Stringer].
func (t Token) String() string {
	return string(t)
}

// Empty reports whether no token is held.
func (t Token) Empty() bool {
	return t == ""
}

// Expired reports whether the token is unusable at the given instant.
//
// An empty token, a token that cannot be parsed, or a token without an "exp"
// claim all count as expired: in every one of those cases the caller must
// refresh before making authenticated requests.
func (t Token) Expired(now time.Time) bool {
	if t == "" {
		return true
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(string(t), jwt.MapClaims{})
	if err != nil {
		return true
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return !now.Before(exp.Time)
}
