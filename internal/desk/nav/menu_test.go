package nav

import (
	"testing"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/stretchr/testify/require"
)

func labels(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("every role ends with logout and is non-empty", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleModerator, domain.RoleStudent} {
			menu := Build(role)
			require.NotEmpty(t, menu, "role=%s", role)
			last := menu[len(menu)-1]
			require.Equal(t, "Déconnexion", last.Label)
			require.Equal(t, LoginPath, last.Path)
		}
	})

	t.Run("role blocks are pairwise different", func(t *testing.T) {
		admin := labels(Build(domain.RoleAdmin))
		moderator := labels(Build(domain.RoleModerator))
		student := labels(Build(domain.RoleStudent))

		require.NotEqual(t, admin[:len(admin)-1], moderator[:len(moderator)-1])
		require.NotEqual(t, admin[:len(admin)-1], student[:len(student)-1])
		require.NotEqual(t, moderator[:len(moderator)-1], student[:len(student)-1])
	})

	t.Run("moderator menu order", func(t *testing.T) {
		require.Equal(t, []string{
			"Tableau de bord",
			"Mon Club",
			"Membres",
			"Événements",
			"Blogs",
			"Demandes",
			"Comptes en attente",
			"Déconnexion",
		}, labels(Build(domain.RoleModerator)))
	})

	t.Run("idempotent with stable content", func(t *testing.T) {
		first := Build(domain.RoleAdmin)
		second := Build(domain.RoleAdmin)
		require.Equal(t, first, second)

		// Mutating a returned menu must not leak into later builds
		first[0].Label = "mutated"
		require.Equal(t, second, Build(domain.RoleAdmin))
	})

	t.Run("unknown role yields only logout", func(t *testing.T) {
		menu := Build(domain.Role("GHOST"))
		require.Len(t, menu, 1)
		require.Equal(t, "Déconnexion", menu[0].Label)
	})
}

func TestRoot(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/dashboard", Root(domain.RoleAdmin))
	require.Equal(t, "/dashboard-moderateur", Root(domain.RoleModerator))
	require.Equal(t, "/dashboard-etudiant", Root(domain.RoleStudent))
}
