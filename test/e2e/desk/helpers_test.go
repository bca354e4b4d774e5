package desk_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/itbsclubs/clubdesk/internal/desk/notify"
	"github.com/itbsclubs/clubdesk/internal/desk/service"
	"github.com/itbsclubs/clubdesk/internal/desk/session"
	"github.com/itbsclubs/clubdesk/internal/desk/store/drivers/sqlite"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/itbsclubs/clubdesk/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakePlatform is an in-process stand-in for the club platform backend,
// covering the endpoints the flows below touch.
type fakePlatform struct {
	mu       sync.Mutex
	accounts map[string]fakeAccount
	clubs    []clubapi.Club
	revoked  bool // when true, every authenticated route answers 401
}

type fakeAccount struct {
	passwordHash []byte
	user         clubapi.UserPayload
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{accounts: map[string]fakeAccount{}}
}

func (p *fakePlatform) addAccount(t *testing.T, email, password string, user clubapi.UserPayload) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	p.mu.Lock()
	defer p.mu.Unlock()
	user.Email = email
	p.accounts[email] = fakeAccount{passwordHash: hash, user: user}
}

func (p *fakePlatform) revokeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.revoked = true
}

func (p *fakePlatform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r.URL.Path == "/auth/login" {
		var req clubapi.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"message":"requête invalide"}`, http.StatusBadRequest)
			return
		}

		account, ok := p.accounts[req.Email]
		if !ok || bcrypt.CompareHashAndPassword(account.passwordHash, []byte(req.Password)) != nil {
			http.Error(w, `{"message":"identifiants invalides"}`, http.StatusUnauthorized)
			return
		}

		user := account.user
		_ = json.NewEncoder(w).Encode(clubapi.LoginResponse{
			Token: "token-" + req.Email,
			User:  &user,
		})
		return
	}

	if p.revoked {
		http.Error(w, `{"message":"session expirée"}`, http.StatusUnauthorized)
		return
	}

	switch r.URL.Path {
	case "/clubs":
		_ = json.NewEncoder(w).Encode(p.clubs)
	default:
		http.Error(w, `{"message":"introuvable"}`, http.StatusNotFound)
	}
}

// stack is everything a flow test needs, wired the way the client wires it.
type stack struct {
	platform *fakePlatform
	store    *sqlite.Store
	sessions *session.Manager
	services *service.Services
	notices  *notify.Recorder
}

func newStack(t *testing.T) *stack {
	t.Helper()

	platform := newFakePlatform()
	srv := httptest.NewServer(platform)
	t.Cleanup(srv.Close)

	api := clubapi.NewSDKClient(srv.URL)
	api.Limiter = nil

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := session.NewManager(api, st, cryptox.NewBox("e2e"), logger)
	notices := &notify.Recorder{}

	return &stack{
		platform: platform,
		store:    st,
		sessions: sessions,
		services: service.New(sessions, st, notices, logger),
		notices:  notices,
	}
}
