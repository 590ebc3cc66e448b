// AngelaMos | 2026
// seed_test.go

package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/loyalty"
	"github.com/carterperez-dev/templates/loyalty/internal/seed"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/task"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	db := store.New()
	repos := loyalty.NewRepositories(db)

	require.NoError(t, seed.Load(ctx, db, repos))

	users, err := repos.Users.List(ctx, user.ListUsersParams{})
	require.NoError(t, err)
	require.Len(t, users, 6)
	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "6", users[5].ID)

	tasks, err := repos.Tasks.List(ctx, task.Filter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 8)

	rewards, err := repos.Rewards.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rewards, 5)

	achievements, err := repos.Achievements.List(ctx)
	require.NoError(t, err)
	assert.Len(t, achievements, 5)

	entries, err := repos.Ledger.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}

func TestLoadTwiceChangesNothing(t *testing.T) {
	ctx := context.Background()
	db := store.New()
	repos := loyalty.NewRepositories(db)

	require.NoError(t, seed.Load(ctx, db, repos))

	err := seed.Load(ctx, db, repos)
	require.ErrorIs(t, err, core.ErrDuplicateKey)

	users, err := repos.Users.List(ctx, user.ListUsersParams{})
	require.NoError(t, err)
	assert.Len(t, users, 6)
}

func TestFixtureBalancesAreNonNegative(t *testing.T) {
	for _, u := range seed.Users() {
		assert.GreaterOrEqual(t, u.Balance, int64(0), u.Email)
	}
}
