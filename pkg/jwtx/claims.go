package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports a token that could not be decoded at all.
var ErrMalformed = errors.New("jwtx: malformed token")

// Claims are the access-token claims the club platform is known to emit.
// The backend signs tokens; this client only decodes them to pre-fill the
// cached profile, so every field here is optional and best-effort.
type Claims struct {
	jwt.RegisteredClaims

	// Role carries a single role tag on newer tokens.
	Role string `json:"role,omitempty"`

	// Roles carries the Spring-style role list, e.g. ["ROLE_ADMIN"].
	Roles []string `json:"roles,omitempty"`

	// Authorities mirrors Spring Security's GrantedAuthority serialization.
	Authorities []Authority `json:"authorities,omitempty"`

	Email   string `json:"email,omitempty"`
	Nom     string `json:"nom,omitempty"`
	Prenom  string `json:"prenom,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// Authority is a single granted-authority object.
type Authority struct {
	Authority string `json:"authority"`
}

// DecodeUnverified decodes token claims without verifying the signature.
// The backend remains the authority on token validity; the client only needs
// the claims for display defaults and a local expiry check, so signature
// verification (which would require the backend's keys) is deliberately
// skipped.
func DecodeUnverified(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformed
	}

	return claims, nil
}

// ExpiresAtTime returns the exp claim as a time, and whether it was present.
func (c *Claims) ExpiresAtTime() (time.Time, bool) {
	if c.ExpiresAt == nil {
		return time.Time{}, false
	}
	return c.ExpiresAt.Time, true
}

// Expired reports whether the token's exp claim has passed at now.
// A token without an exp claim is not considered expired here.
func (c *Claims) Expired(now time.Time) bool {
	exp, ok := c.ExpiresAtTime()
	if !ok {
		return false
	}
	return now.After(exp)
}

// AuthorityStrings flattens the authorities list to plain strings.
func (c *Claims) AuthorityStrings() []string {
	if len(c.Authorities) == 0 {
		return nil
	}

	out := make([]string, 0, len(c.Authorities))
	for _, a := range c.Authorities {
		out = append(out, a.Authority)
	}
	return out
}
