package service

import (
	"testing"

	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/stretchr/testify/require"
)

func TestFilterFeed(t *testing.T) {
	posts := []clubapi.Blog{
		{ID: 1, ClubID: 10, Categorie: "SPORT"},
		{ID: 2, ClubID: 20, Categorie: "TECH"},
		{ID: 3, ClubID: 10, Categorie: "TECH"},
		{ID: 4, ClubID: 30},
	}

	t.Run("zero values leave the feed untouched", func(t *testing.T) {
		require.Len(t, FilterFeed(posts, 0, ""), 4)
	})

	t.Run("club filter", func(t *testing.T) {
		out := FilterFeed(posts, 10, "")
		require.Len(t, out, 2)
		require.Equal(t, int64(1), out[0].ID)
		require.Equal(t, int64(3), out[1].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		out := FilterFeed(posts, 0, "TECH")
		require.Len(t, out, 2)
	})

	t.Run("both filters compose", func(t *testing.T) {
		out := FilterFeed(posts, 10, "TECH")
		require.Len(t, out, 1)
		require.Equal(t, int64(3), out[0].ID)
	})

	t.Run("no match yields an empty, non-nil slice", func(t *testing.T) {
		out := FilterFeed(posts, 99, "")
		require.NotNil(t, out)
		require.Empty(t, out)
	})
}
