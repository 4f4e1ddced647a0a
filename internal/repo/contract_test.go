package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charleslimjh/tp/internal/domain"
	"github.com/charleslimjh/tp/internal/repo"
)

func eatery(t *testing.T, name string, tags ...string) *domain.Eatery {
	t.Helper()
	e, err := domain.ParseEatery(name, "94351253", "Chinese", "Blk 20 Ghim Moh Road, #01-02", tags...)
	require.NoError(t, err)
	return e
}

// runContract exercises the behaviour every EateryRepo backend shares.
// newRepo must return an empty store.
func runContract(t *testing.T, newRepo func(t *testing.T) repo.EateryRepo) {
	ctx := context.Background()

	t.Run("empty store loads nothing", func(t *testing.T) {
		r := newRepo(t)

		got, err := r.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("round trip keeps order and fields", func(t *testing.T) {
		r := newRepo(t)
		want := []*domain.Eatery{
			eatery(t, "Zam Zam", "halal", "cheap"),
			eatery(t, "Ah Hock"),
			eatery(t, "Ah Hock", "supper"),
		}

		require.NoError(t, r.Save(ctx, want))
		got, err := r.Load(ctx)

		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.True(t, want[i].Equal(got[i]), "eatery %d: want %s, got %s", i, want[i], got[i])
		}
	})

	t.Run("save replaces the previous guide", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Save(ctx, []*domain.Eatery{eatery(t, "Old", "gone")}))

		require.NoError(t, r.Save(ctx, []*domain.Eatery{eatery(t, "New")}))
		got, err := r.Load(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "New", got[0].Name().String())
		assert.Zero(t, got[0].Tags().Len())
	})

	t.Run("save empty clears the store", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Save(ctx, []*domain.Eatery{eatery(t, "Old")}))

		require.NoError(t, r.Save(ctx, nil))
		got, err := r.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
