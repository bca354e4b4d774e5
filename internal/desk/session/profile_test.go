package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/itbsclubs/clubdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwtx.Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-key"))
	require.NoError(t, err)
	return signed
}

func TestResolveProfile(t *testing.T) {
	t.Parallel()

	now := time.Now().Truncate(time.Second)

	t.Run("embedded user wins over claims", func(t *testing.T) {
		enabled := true
		token := signToken(t, jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "99"},
			Roles:            []string{"ROLE_ADMIN"},
			Email:            "claims@itbs.tn",
		})

		cred, profile := resolveProfile(&clubapi.LoginResponse{
			Token: token,
			User: &clubapi.UserPayload{
				ID: 7, Prenom: "Sami", Nom: "Ben Salah",
				Email: "sami@itbs.tn", Role: "MODERATEUR", Enabled: &enabled,
			},
		}, now, time.Hour)

		require.Equal(t, token, cred.Token)
		require.Equal(t, int64(7), profile.ID)
		require.Equal(t, "Sami Ben Salah", profile.DisplayName)
		require.Equal(t, "sami@itbs.tn", profile.Email)
		require.Equal(t, domain.RoleModerator, profile.Role)
		require.True(t, profile.Enabled)
	})

	t.Run("claims fill fields the user object misses", func(t *testing.T) {
		token := signToken(t, jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
			Roles:            []string{"ROLE_ADMIN"},
			Email:            "admin@itbs.tn",
		})

		_, profile := resolveProfile(&clubapi.LoginResponse{
			Token: token,
			User:  &clubapi.UserPayload{Nom: "Trabelsi"},
		}, now, time.Hour)

		require.Equal(t, int64(42), profile.ID)
		require.Equal(t, "Trabelsi", profile.DisplayName)
		require.Equal(t, "admin@itbs.tn", profile.Email)
		require.Equal(t, domain.RoleAdmin, profile.Role)
	})

	t.Run("token-only response resolves entirely from claims", func(t *testing.T) {
		exp := now.Add(30 * time.Minute)
		token := signToken(t, jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "5",
				ExpiresAt: jwt.NewNumericDate(exp),
			},
			Authorities: []jwtx.Authority{{Authority: "ROLE_MODERATEUR"}},
		})

		cred, profile := resolveProfile(&clubapi.LoginResponse{Token: token}, now, time.Hour)

		require.WithinDuration(t, exp, cred.ExpiresAt, time.Second)
		require.Equal(t, int64(5), profile.ID)
		require.Equal(t, domain.RoleModerator, profile.Role)
	})

	t.Run("no role anywhere defaults to student", func(t *testing.T) {
		token := signToken(t, jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "3"},
		})

		_, profile := resolveProfile(&clubapi.LoginResponse{Token: token}, now, time.Hour)
		require.Equal(t, domain.RoleStudent, profile.Role)
	})

	t.Run("opaque token still yields a usable profile", func(t *testing.T) {
		cred, profile := resolveProfile(&clubapi.LoginResponse{
			Token: "opaque-session-token",
			User:  &clubapi.UserPayload{ID: 2, Role: "ADMIN"},
		}, now, time.Hour)

		// No exp claim: the default TTL bounds the credential
		require.WithinDuration(t, now.Add(time.Hour), cred.ExpiresAt, time.Second)
		require.Equal(t, domain.RoleAdmin, profile.Role)
	})

	t.Run("missing enabled flag defaults to activated", func(t *testing.T) {
		_, profile := resolveProfile(&clubapi.LoginResponse{
			Token: "opaque",
			User:  &clubapi.UserPayload{Role: "ETUDIANT"},
		}, now, time.Hour)
		require.True(t, profile.Enabled)
	})

	t.Run("explicit disabled flag survives", func(t *testing.T) {
		disabled := false
		_, profile := resolveProfile(&clubapi.LoginResponse{
			Token: "opaque",
			User:  &clubapi.UserPayload{Role: "ETUDIANT", Enabled: &disabled},
		}, now, time.Hour)
		require.False(t, profile.Enabled)
	})
}
