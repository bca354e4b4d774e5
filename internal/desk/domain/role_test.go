package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveRole(t *testing.T) {
	t.Parallel()

	t.Run("direct role field wins", func(t *testing.T) {
		role := ResolveRole(RoleSources{
			Role:        "ADMIN",
			Roles:       []string{"ROLE_ETUDIANT"},
			Authorities: []string{"ROLE_MODERATEUR"},
		})
		require.Equal(t, RoleAdmin, role)
	})

	t.Run("falls back to roles list then authorities", func(t *testing.T) {
		require.Equal(t, RoleModerator, ResolveRole(RoleSources{
			Roles:       []string{"ROLE_MODERATEUR", "ROLE_ETUDIANT"},
			Authorities: []string{"ROLE_ADMIN"},
		}))
		require.Equal(t, RoleAdmin, ResolveRole(RoleSources{
			Authorities: []string{"ROLE_ADMIN"},
		}))
	})

	t.Run("no role information defaults to student", func(t *testing.T) {
		require.Equal(t, RoleStudent, ResolveRole(RoleSources{}))
		require.Equal(t, RoleStudent, ResolveRole(RoleSources{Roles: []string{}}))
	})

	t.Run("unrecognized strings fail closed to student", func(t *testing.T) {
		for _, raw := range []string{"SUPERADMIN", "role_x", "ROLE_", "moderator ", "ADMINISTRATOR"} {
			got := ResolveRole(RoleSources{Role: raw})
			if raw == "moderator " {
				// trailing space is trimmed, so this one is recognized
				require.Equal(t, RoleModerator, got)
				continue
			}
			require.Equal(t, RoleStudent, got, "raw=%q", raw)
		}
	})

	t.Run("prefix stripped and case insensitive", func(t *testing.T) {
		for _, raw := range []string{"ROLE_admin", "Admin", "admin", "ROLE_ADMIN"} {
			require.Equal(t, RoleAdmin, ResolveRole(RoleSources{Role: raw}), "raw=%q", raw)
		}
		require.Equal(t, RoleModerator, ResolveRole(RoleSources{Role: "moderateur"}))
		require.Equal(t, RoleStudent, ResolveRole(RoleSources{Role: "Etudiant"}))
	})

	t.Run("always returns a member of the closed set", func(t *testing.T) {
		inputs := []RoleSources{
			{},
			{Role: "???"},
			{Roles: []string{"whatever"}},
			{Authorities: []string{""}},
			{Role: "role_moderateur"},
		}
		for _, src := range inputs {
			got := ResolveRole(src)
			require.Contains(t, []Role{RoleAdmin, RoleModerator, RoleStudent}, got)
		}
	})
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	_, ok := ParseRole("SUPERADMIN")
	require.False(t, ok)

	role, ok := ParseRole("ROLE_ETUDIANT")
	require.True(t, ok)
	require.Equal(t, RoleStudent, role)
}
