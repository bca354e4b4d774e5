package clubapi

import (
	"context"
	"sync"
	"time"
)

// Session is an authenticated handle on the backend. The club platform
// issues no refresh tokens; when the bearer token expires the session is
// dead and the caller must log in again.
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// Token returns the bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt returns the client-side expiry of the token.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Expired reports whether the token has passed its client-side expiry at now.
// A zero expiry means the token carried no exp claim and is assumed live.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.expiresAt.IsZero() && now.After(s.expiresAt)
}

// Me fetches the authenticated user's profile from the backend.
func (s *Session) Me(ctx context.Context) (*UserPayload, error) {
	var out UserPayload
	if err := s.getJSON(ctx, "/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
