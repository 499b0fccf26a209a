package bintoken

import (
	"time"

	"github.com/google/uuid"
)

// Claims is a ready-made payload carrying the registered claim set. All
// temporal fields are Unix timestamps in seconds. Custom payloads can embed
// Claims to inherit the expiration capability:
//
//	type SessionPayload struct {
//	    bintoken.Claims
//	    Role string `msgpack:"role"`
//	}
type Claims struct {
	ID        string `msgpack:"jti,omitempty"` // Unique token identifier
	Subject   string `msgpack:"sub,omitempty"` // Typically a user or entity identifier
	Issuer    string `msgpack:"iss,omitempty"` // Who issued the token
	Audience  string `msgpack:"aud,omitempty"` // Intended recipient(s)
	ExpiresAt int64  `msgpack:"exp,omitempty"` // When the token expires
	NotBefore int64  `msgpack:"nbf,omitempty"` // When the token becomes valid
	IssuedAt  int64  `msgpack:"iat,omitempty"` // When the token was created
}

// Expiration returns the expiration timestamp, satisfying Expirable.
func (c Claims) Expiration() int64 {
	return c.ExpiresAt
}

// NewClaims builds claims for the subject with a fresh random ID, the issue
// time set to now, and the expiration set ttl from now.
func NewClaims(subject string, ttl time.Duration) Claims {
	now := timeNow()
	return Claims{
		ID:        uuid.NewString(),
		Subject:   subject,
		ExpiresAt: now.Add(ttl).Unix(),
		IssuedAt:  now.Unix(),
	}
}
