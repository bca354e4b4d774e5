package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/itbsclubs/clubdesk/internal/desk/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
	return s
}

func TestSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("empty store reports not found", func(t *testing.T) {
		_, err := s.Sessions().Get(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("put then get round trips", func(t *testing.T) {
		expires := time.Now().Add(time.Hour).Truncate(time.Second).UTC()
		rec := store.SessionRecord{
			SealedToken: []byte{0x01, 0x02},
			ExpiresAt:   expires,
			Profile: domain.UserProfile{
				ID:          7,
				DisplayName: "Sami Ben Salah",
				Email:       "sami@itbs.tn",
				Role:        domain.RoleModerator,
				Enabled:     true,
			},
		}
		require.NoError(t, s.Sessions().Put(ctx, rec))

		got, err := s.Sessions().Get(ctx)
		require.NoError(t, err)
		require.Equal(t, rec.SealedToken, got.SealedToken)
		require.Equal(t, expires, got.ExpiresAt)
		require.Equal(t, rec.Profile, got.Profile)
		require.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("put replaces the single row", func(t *testing.T) {
		rec := store.SessionRecord{
			SealedToken: []byte{0xff},
			Profile:     domain.UserProfile{Role: domain.RoleStudent, Enabled: false},
		}
		require.NoError(t, s.Sessions().Put(ctx, rec))

		got, err := s.Sessions().Get(ctx)
		require.NoError(t, err)
		require.Equal(t, []byte{0xff}, got.SealedToken)
		require.Equal(t, domain.RoleStudent, got.Profile.Role)
		require.False(t, got.Profile.Enabled)
		require.True(t, got.ExpiresAt.IsZero())
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, s.Sessions().Clear(ctx))
		require.NoError(t, s.Sessions().Clear(ctx))

		_, err := s.Sessions().Get(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCache(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("miss reports not found", func(t *testing.T) {
		_, err := s.Cache().Get(ctx, "clubs")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("put upserts by key", func(t *testing.T) {
		at := time.Now().Truncate(time.Second).UTC()
		require.NoError(t, s.Cache().Put(ctx, "clubs", []byte(`[{"id":1}]`), at))
		require.NoError(t, s.Cache().Put(ctx, "clubs", []byte(`[{"id":2}]`), at.Add(time.Minute)))

		got, err := s.Cache().Get(ctx, "clubs")
		require.NoError(t, err)
		require.Equal(t, []byte(`[{"id":2}]`), got.Payload)
		require.Equal(t, at.Add(time.Minute), got.FetchedAt)
	})

	t.Run("purge drops everything", func(t *testing.T) {
		require.NoError(t, s.Cache().Put(ctx, "events:student", []byte(`[]`), time.Now()))
		require.NoError(t, s.Cache().Purge(ctx))

		_, err := s.Cache().Get(ctx, "clubs")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Cache().Get(ctx, "events:student")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
