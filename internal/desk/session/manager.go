// Package session owns the client's single authenticated session: the
// sealed credential and cached profile in the local state store, written at
// login, read on every protected entry, cleared at logout. The manager is
// dependency-injected rather than ambient global state so tests can
// substitute the store and backend freely.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/itbsclubs/clubdesk/internal/desk/gate"
	"github.com/itbsclubs/clubdesk/internal/desk/store"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/itbsclubs/clubdesk/pkg/cryptox"
	"github.com/pquerna/otp/totp"
)

// ErrMFARequired is returned from Login when the backend demands a second
// factor and no TOTP secret is configured to answer it.
var ErrMFARequired = errors.New("session: second factor required but no TOTP secret configured")

// Manager is the token store. Login and logout are the only writers; both
// run under the mutex, so reads never observe a half-written session.
type Manager struct {
	mu sync.Mutex

	api    *clubapi.SDKClient
	store  store.Store
	box    *cryptox.Box
	logger *slog.Logger

	// defaultTTL bounds a credential whose token carries no exp claim.
	defaultTTL time.Duration

	// totpSecret, when set, answers MFA challenges automatically.
	totpSecret string

	now func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefaultTTL sets the fallback credential lifetime.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(m *Manager) { m.defaultTTL = ttl }
}

// WithTOTPSecret configures the stored second-factor secret.
func WithTOTPSecret(secret string) Option {
	return func(m *Manager) { m.totpSecret = secret }
}

// withClock overrides time for tests.
func withClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager wires a session manager.
func NewManager(api *clubapi.SDKClient, st store.Store, box *cryptox.Box, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		api:        api,
		store:      st,
		box:        box,
		logger:     logger,
		defaultTTL: 12 * time.Hour,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Client exposes the unauthenticated API client for the public endpoints
// that exist before any session does, such as platform applications.
func (m *Manager) Client() *clubapi.SDKClient {
	return m.api
}

// LoginResult is what a completed login hands to the boundary adapter.
type LoginResult struct {
	Profile  domain.UserProfile
	Decision gate.Decision
}

// Login authenticates against the backend, resolves and caches the profile,
// and returns the post-login decision. The credential is stored in every
// successful branch, including a student pending activation: the user is
// authenticated either way, only dashboard entry differs.
func (m *Manager) Login(ctx context.Context, email, password string) (LoginResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		resp, err = m.answerMFAChallenge(ctx, err)
		if err != nil {
			return LoginResult{}, err
		}
	}

	now := m.now()
	cred, profile := resolveProfile(resp, now, m.defaultTTL)

	sealed, err := m.box.Seal([]byte(cred.Token))
	if err != nil {
		return LoginResult{}, fmt.Errorf("seal credential: %w", err)
	}

	rec := store.SessionRecord{
		SealedToken: sealed,
		ExpiresAt:   cred.ExpiresAt,
		Profile:     profile,
		UpdatedAt:   now,
	}
	if err := m.store.Sessions().Put(ctx, rec); err != nil {
		return LoginResult{}, fmt.Errorf("persist session: %w", err)
	}

	decision := gate.PostLogin(profile)
	m.logger.Info("login",
		"role", string(profile.Role),
		"enabled", profile.Enabled,
		"redirect", decision.Path,
	)
	return LoginResult{Profile: profile, Decision: decision}, nil
}

// answerMFAChallenge completes a login the backend answered with an MFA
// challenge, generating the one-time code from the configured secret.
func (m *Manager) answerMFAChallenge(ctx context.Context, loginErr error) (*clubapi.LoginResponse, error) {
	var mfaErr *clubapi.MFARequiredError
	if !errors.As(loginErr, &mfaErr) {
		return nil, loginErr
	}
	if m.totpSecret == "" {
		return nil, ErrMFARequired
	}

	code, err := totp.GenerateCode(m.totpSecret, m.now())
	if err != nil {
		return nil, fmt.Errorf("generate totp code: %w", err)
	}

	return m.api.LoginTOTP(ctx, mfaErr.MFAToken, code)
}

// Refresh re-fetches the profile from the backend's current-user endpoint
// and updates the stored record. The credential itself is untouched. A
// missing session returns store.ErrNotFound.
func (m *Manager) Refresh(ctx context.Context) (domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.store.Sessions().Get(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}
	token, err := m.box.Open(rec.SealedToken)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("unseal credential: %w", err)
	}

	user, err := m.api.NewSession(string(token), rec.ExpiresAt).Me(ctx)
	if err != nil {
		return domain.UserProfile{}, err
	}

	_, profile := resolveProfile(&clubapi.LoginResponse{Token: string(token), User: user}, m.now(), 0)
	rec.Profile = profile
	rec.UpdatedAt = m.now()
	if err := m.store.Sessions().Put(ctx, rec); err != nil {
		return domain.UserProfile{}, fmt.Errorf("persist session: %w", err)
	}

	return profile, nil
}

// Current reads the stored session. A missing record returns (nil, zero,
// nil): being unauthenticated is a state, not an error.
func (m *Manager) Current(ctx context.Context) (*domain.Credential, domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current(ctx)
}

func (m *Manager) current(ctx context.Context) (*domain.Credential, domain.UserProfile, error) {
	rec, err := m.store.Sessions().Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.UserProfile{}, nil
	}
	if err != nil {
		return nil, domain.UserProfile{}, fmt.Errorf("read session: %w", err)
	}

	token, err := m.box.Open(rec.SealedToken)
	if err != nil {
		// Wrong passphrase or corrupt state file; treat as unauthenticated
		m.logger.Warn("stored credential unreadable, clearing session", "error", err)
		_ = m.store.Sessions().Clear(ctx)
		return nil, domain.UserProfile{}, nil
	}

	cred := &domain.Credential{Token: string(token), ExpiresAt: rec.ExpiresAt}
	return cred, rec.Profile, nil
}

// Enter runs the access gate for a protected-area entry and, when allowed,
// returns the API session the area should use.
func (m *Manager) Enter(ctx context.Context) (gate.Decision, *clubapi.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cred, profile, err := m.current(ctx)
	if err != nil {
		return gate.Decision{}, nil, err
	}

	decision := gate.Access(cred, profile.Role, m.now())
	if decision.Kind != gate.KindAllow {
		return decision, nil, nil
	}

	return decision, m.api.NewSession(cred.Token, cred.ExpiresAt), nil
}

// Logout clears the stored session and cached resources. Clearing an
// already-empty store succeeds.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logout(ctx)
}

func (m *Manager) logout(ctx context.Context) error {
	if err := m.store.Sessions().Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := m.store.Cache().Purge(ctx); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}

	m.logger.Info("logout")
	return nil
}

// ForceLogout handles a backend 401/403 on an already-allowed page: the
// session is cleared and the caller follows the returned redirect. The
// second return mirrors gate.Escalate and is false when err was not an
// authentication rejection.
func (m *Manager) ForceLogout(ctx context.Context, cause error) (gate.Decision, bool) {
	decision, ok := gate.Escalate(cause)
	if !ok {
		return gate.Decision{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.logout(ctx); err != nil {
		m.logger.Error("forced logout failed", "error", err)
	}
	return decision, true
}
