package domain

import "time"

// Credential is the bearer token representing an authenticated session plus
// the client's local view of its expiry. A Credential is either absent
// (unauthenticated) or present and unexpired; expired is treated identically
// to absent everywhere.
type Credential struct {
	Token     string
	ExpiresAt time.Time // zero when the token carried no exp claim
}

// Valid reports whether the credential can still be presented at now.
// Nil credentials are never valid.
func (c *Credential) Valid(now time.Time) bool {
	if c == nil || c.Token == "" {
		return false
	}
	if c.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(c.ExpiresAt)
}
