package desk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/itbsclubs/clubdesk/internal/desk/gate"
	"github.com/itbsclubs/clubdesk/internal/desk/nav"
	"github.com/itbsclubs/clubdesk/internal/desk/service"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// TestModeratorLoginFlow walks an enabled moderator from login to their
// dashboard and menu.
func TestModeratorLoginFlow(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	s.platform.addAccount(t, "mod@itbs.tn", "secret", clubapi.UserPayload{
		ID:      1,
		Prenom:  "Sami",
		Nom:     "Ben Ali",
		Role:    "MODERATEUR",
		Enabled: boolPtr(true),
	})

	res, err := s.sessions.Login(ctx, "mod@itbs.tn", "secret")
	require.NoError(t, err)

	require.Equal(t, domain.RoleModerator, res.Profile.Role)
	require.Equal(t, gate.KindRedirect, res.Decision.Kind)
	require.Equal(t, "/dashboard-moderateur", res.Decision.Path)

	labels := make([]string, 0, 8)
	for _, entry := range nav.Build(res.Profile.Role) {
		labels = append(labels, entry.Label)
	}
	require.Equal(t, []string{
		"Tableau de bord",
		"Mon Club",
		"Membres",
		"Événements",
		"Blogs",
		"Demandes",
		"Comptes en attente",
		"Déconnexion",
	}, labels)

	// The session survives a process restart: Current reads it back.
	cred, profile, err := s.sessions.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-mod@itbs.tn", cred.Token)
	require.Equal(t, "Sami Ben Ali", profile.DisplayName)
}

// TestDisabledStudentLoginFlow verifies that a not-yet-activated student is
// authenticated but held at the login page with the pending notice.
func TestDisabledStudentLoginFlow(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	s.platform.addAccount(t, "etu@itbs.tn", "secret", clubapi.UserPayload{
		ID:      2,
		Prenom:  "Amine",
		Nom:     "Trabelsi",
		Role:    "ETUDIANT",
		Enabled: boolPtr(false),
	})

	res, err := s.sessions.Login(ctx, "etu@itbs.tn", "secret")
	require.NoError(t, err)

	require.Equal(t, domain.RoleStudent, res.Profile.Role)
	require.Equal(t, gate.KindNotice, res.Decision.Kind)
	require.Equal(t, gate.PendingActivationNotice, res.Decision.Notice)

	// Authenticated even though not authorized into the dashboard.
	cred, _, err := s.sessions.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	require.Equal(t, "token-etu@itbs.tn", cred.Token)
}

// TestBadPasswordFlow verifies nothing is persisted on a rejected login.
func TestBadPasswordFlow(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	s.platform.addAccount(t, "mod@itbs.tn", "secret", clubapi.UserPayload{
		Role:    "MODERATEUR",
		Enabled: boolPtr(true),
	})

	_, err := s.sessions.Login(ctx, "mod@itbs.tn", "wrong")
	require.Error(t, err)
	var apiErr *clubapi.APIError
	require.ErrorAs(t, err, &apiErr)

	cred, _, err := s.sessions.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, cred)
}

// TestRevokedSessionFlow verifies a backend 401 mid-session forces a logout
// and sends the user back to the login page.
func TestRevokedSessionFlow(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	s.platform.addAccount(t, "admin@itbs.tn", "secret", clubapi.UserPayload{
		Role:    "ADMIN",
		Enabled: boolPtr(true),
	})
	s.platform.clubs = []clubapi.Club{{ID: 1, Nom: "Club Robotique"}}

	_, err := s.sessions.Login(ctx, "admin@itbs.tn", "secret")
	require.NoError(t, err)

	clubs, err := s.services.Clubs(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 1)

	s.platform.revokeAll()

	_, err = s.services.Clubs(ctx)
	var redirect *service.RedirectError
	require.ErrorAs(t, err, &redirect)
	require.Equal(t, nav.LoginPath, redirect.Decision.Path)

	cred, _, err := s.sessions.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, cred, "session cleared after the forced logout")
}

// TestLogoutFlow verifies logout clears the session and the cache.
func TestLogoutFlow(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	s.platform.addAccount(t, "admin@itbs.tn", "secret", clubapi.UserPayload{
		Role:    "ADMIN",
		Enabled: boolPtr(true),
	})
	s.platform.clubs = []clubapi.Club{{ID: 1, Nom: "Club Echecs"}}

	_, err := s.sessions.Login(ctx, "admin@itbs.tn", "secret")
	require.NoError(t, err)
	_, err = s.services.Clubs(ctx)
	require.NoError(t, err)

	require.NoError(t, s.sessions.Logout(ctx))

	cred, _, err := s.sessions.Current(ctx)
	require.NoError(t, err)
	require.Nil(t, cred)

	// Cached lists do not outlive the session.
	_, err = s.services.Clubs(ctx)
	require.Error(t, err)
	var redirect *service.RedirectError
	require.True(t, errors.As(err, &redirect))
}
