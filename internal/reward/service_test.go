// AngelaMos | 2026
// service_test.go

package reward_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/ledger"
	"github.com/carterperez-dev/templates/loyalty/internal/reward"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

type fixture struct {
	rewards *reward.Service
	users   *user.Service
	ledger  *ledger.Service
	repo    reward.Repository
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	db := store.New()

	userRepo := user.NewRepository(db)
	for _, u := range []user.User{
		{ID: "1", Email: "admin@yamaha.co.id", Name: "Admin Yamaha", Balance: 0, Role: user.RoleAdmin},
		{ID: "2", Email: "budi.santoso@gmail.com", Name: "Budi Santoso", Balance: 1200, Role: user.RoleCustomer},
	} {
		require.NoError(t, userRepo.Seed(ctx, &u))
	}

	repo := reward.NewRepository(db)
	validUntil := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	for _, rw := range []reward.Reward{
		{ID: "1", Title: "Voucher Service Gratis", Points: 500, Stock: 50, ValidUntil: validUntil},
		{ID: "2", Title: "Helm Yamaha Original", Points: 1000, Stock: 1, ValidUntil: validUntil},
		{ID: "3", Title: "Jaket Yamaha Racing", Points: 100, Stock: 0, ValidUntil: validUntil},
	} {
		require.NoError(t, repo.Seed(ctx, &rw))
	}

	users := user.NewService(db, userRepo, nil)
	entries := ledger.NewService(db, ledger.NewRepository(db), users)

	return fixture{
		rewards: reward.NewService(db, repo, users, entries),
		users:   users,
		ledger:  entries,
		repo:    repo,
	}
}

func (f fixture) state(t *testing.T, userID, rewardID string) (int64, int, int) {
	t.Helper()
	ctx := context.Background()

	u, err := f.users.GetByID(ctx, userID)
	require.NoError(t, err)
	rw, err := f.rewards.GetByID(ctx, rewardID)
	require.NoError(t, err)
	entries, err := f.ledger.List(ctx, userID)
	require.NoError(t, err)

	return u.Balance, rw.Stock, len(entries)
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tx, err := f.rewards.Redeem(ctx, "2", "1")
	require.NoError(t, err)

	assert.Equal(t, ledger.TypeWithdrawal, tx.Type)
	assert.Equal(t, ledger.StatusCompleted, tx.Status)
	assert.Equal(t, int64(-500), tx.Amount)
	assert.Equal(t, "Penukaran reward: Voucher Service Gratis", tx.Description)

	balance, stock, entries := f.state(t, "2", "1")
	assert.Equal(t, int64(700), balance)
	assert.Equal(t, 49, stock)
	assert.Equal(t, 1, entries)
}

func TestRedeemInsufficientBalance(t *testing.T) {
	f := setup(t)

	_, err := f.rewards.Redeem(context.Background(), "1", "1")
	require.ErrorIs(t, err, core.ErrInsufficientBalance)
	assert.True(t, core.IsPrecondition(err))

	balance, stock, entries := f.state(t, "1", "1")
	assert.Zero(t, balance)
	assert.Equal(t, 50, stock)
	assert.Zero(t, entries)
}

func TestRedeemLastUnitThenOutOfStock(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.rewards.Redeem(ctx, "2", "2")
	require.NoError(t, err)

	balance, stock, _ := f.state(t, "2", "2")
	assert.Equal(t, int64(200), balance)
	assert.Zero(t, stock)

	_, err = f.rewards.Redeem(ctx, "2", "3")
	require.ErrorIs(t, err, core.ErrOutOfStock)

	balance, stock, entries := f.state(t, "2", "3")
	assert.Equal(t, int64(200), balance)
	assert.Zero(t, stock)
	assert.Equal(t, 1, entries)
}

func TestRedeemUnknown(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.rewards.Redeem(ctx, "404", "1")
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = f.rewards.Redeem(ctx, "2", "404")
	require.ErrorIs(t, err, core.ErrNotFound)

	balance, _, entries := f.state(t, "2", "1")
	assert.Equal(t, int64(1200), balance)
	assert.Zero(t, entries)
}

func TestRedeemFreeReward(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	require.NoError(t, f.repo.Seed(ctx, &reward.Reward{
		ID: "4", Title: "Stiker Yamaha", Points: 0, Stock: 3,
	}))

	tx, err := f.rewards.Redeem(ctx, "1", "4")
	require.NoError(t, err)
	assert.Zero(t, tx.Amount)
	assert.Equal(t, "Penukaran reward: Stiker Yamaha", tx.Description)

	balance, stock, entries := f.state(t, "1", "4")
	assert.Zero(t, balance)
	assert.Equal(t, 2, stock)
	assert.Equal(t, 1, entries)
}

func TestConcurrentRedeem(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	const workers = 10

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
		failures  = make(chan error, workers)
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.rewards.Redeem(ctx, "2", "1"); err != nil {
				failures <- err
				return
			}
			successes.Add(1)
		}()
	}
	wg.Wait()
	close(failures)

	for err := range failures {
		require.ErrorIs(t, err, core.ErrInsufficientBalance)
	}

	ok := successes.Load()
	assert.Equal(t, int64(2), ok)

	balance, stock, entries := f.state(t, "2", "1")
	assert.Equal(t, 1200-ok*500, balance)
	assert.GreaterOrEqual(t, balance, int64(0))
	assert.Equal(t, 50-int(ok), stock)
	assert.Equal(t, int(ok), entries)
}

func TestTakeOneFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	rw, err := f.repo.TakeOne(ctx, "3")
	require.NoError(t, err)
	assert.Zero(t, rw.Stock)
}

func TestList(t *testing.T) {
	f := setup(t)

	all, err := f.rewards.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ID)
}
