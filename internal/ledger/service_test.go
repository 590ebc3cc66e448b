// AngelaMos | 2026
// service_test.go

package ledger_test

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
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

var testNow = time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)

type fixture struct {
	ledger *ledger.Service
	users  *user.Service
}

func setup(t *testing.T) fixture {
	t.Helper()

	db := store.New(store.WithClock(func() time.Time { return testNow }))
	userRepo := user.NewRepository(db)
	require.NoError(t, userRepo.Seed(context.Background(), &user.User{
		ID: "2", Email: "budi.santoso@gmail.com", Name: "Budi Santoso",
		Balance: 275000, Role: user.RoleCustomer,
	}))

	users := user.NewService(db, userRepo, nil)
	return fixture{
		ledger: ledger.NewService(db, ledger.NewRepository(db), users),
		users:  users,
	}
}

func balance(t *testing.T, f fixture, id string) int64 {
	t.Helper()
	u, err := f.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	return u.Balance
}

var bca = ledger.BankInfo{
	BankName:      "BCA",
	AccountNumber: "1234567890",
	AccountHolder: "Budi Santoso",
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tx, err := f.ledger.Withdraw(ctx, "2", 100000, bca)
	require.NoError(t, err)

	assert.Equal(t, ledger.TypeWithdrawal, tx.Type)
	assert.Equal(t, ledger.StatusPending, tx.Status)
	assert.Equal(t, int64(-100000), tx.Amount)
	assert.Equal(t, "Penarikan saldo ke rekening BCA ****7890", tx.Description)
	assert.NotContains(t, tx.Description, "123456")
	assert.Equal(t, int64(175000), balance(t, f, "2"))

	entries, err := f.ledger.List(ctx, "2")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, tx.ID, entries[0].ID)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.ledger.Withdraw(ctx, "2", 275001, bca)
	require.ErrorIs(t, err, core.ErrInsufficientBalance)

	assert.Equal(t, int64(275000), balance(t, f, "2"))

	entries, err := f.ledger.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWithdrawExactBalance(t *testing.T) {
	f := setup(t)

	_, err := f.ledger.Withdraw(context.Background(), "2", 275000, bca)
	require.NoError(t, err)
	assert.Zero(t, balance(t, f, "2"))
}

func TestWithdrawValidation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tests := []struct {
		name   string
		amount int64
		bank   ledger.BankInfo
	}{
		{"zero amount", 0, bca},
		{"negative amount", -5, bca},
		{"missing bank", 1000, ledger.BankInfo{AccountNumber: "1234"}},
		{"short account", 1000, ledger.BankInfo{BankName: "BCA", AccountNumber: "12"}},
		{"non numeric account", 1000, ledger.BankInfo{BankName: "BCA", AccountNumber: "12ab34"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.Withdraw(ctx, "2", tt.amount, tt.bank)
			require.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}

	assert.Equal(t, int64(275000), balance(t, f, "2"))
}

func TestWithdrawUnknownUser(t *testing.T) {
	f := setup(t)

	_, err := f.ledger.Withdraw(context.Background(), "404", 1000, bca)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tx, err := f.ledger.Credit(ctx, "2", 75000, "Reward dari tugas: Review Service Yamaha NMAX")
	require.NoError(t, err)

	assert.True(t, tx.IsCompletedReward())
	assert.Equal(t, int64(75000), tx.Amount)
	assert.Equal(t, int64(350000), balance(t, f, "2"))
}

func TestCreateRecordsWithoutMovingBalance(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tx, err := f.ledger.Create(ctx, ledger.CreateTransactionRequest{
		UserID:      "2",
		Type:        ledger.TypeReward,
		Amount:      25000,
		Status:      ledger.StatusPending,
		Description: "Bonus referral",
	})
	require.NoError(t, err)
	assert.Equal(t, testNow, tx.CreatedAt)
	assert.Equal(t, int64(275000), balance(t, f, "2"))

	_, err = f.ledger.Create(ctx, ledger.CreateTransactionRequest{
		UserID: "2", Type: "refund", Amount: 1, Status: ledger.StatusPending, Description: "x",
	})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCreateRejectsMismatchedSign(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tests := []struct {
		name   string
		kind   string
		amount int64
	}{
		{"negative reward", ledger.TypeReward, -25000},
		{"positive withdrawal", ledger.TypeWithdrawal, 25000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.Create(ctx, ledger.CreateTransactionRequest{
				UserID:      "2",
				Type:        tt.kind,
				Amount:      tt.amount,
				Status:      ledger.StatusCompleted,
				Description: "Koreksi manual",
			})
			require.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}

	tx, err := f.ledger.Create(ctx, ledger.CreateTransactionRequest{
		UserID:      "2",
		Type:        ledger.TypeWithdrawal,
		Amount:      -25000,
		Status:      ledger.StatusFailed,
		Description: "Penarikan gagal",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-25000), tx.Amount)

	entries, err := f.ledger.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, tx.ID, entries[0].ID)
	assert.Equal(t, int64(275000), balance(t, f, "2"))
}

func TestCreateUnknownUser(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.ledger.Create(ctx, ledger.CreateTransactionRequest{
		UserID:      "404",
		Type:        ledger.TypeReward,
		Amount:      25000,
		Status:      ledger.StatusPending,
		Description: "Bonus referral",
	})
	require.ErrorIs(t, err, core.ErrNotFound)

	entries, err := f.ledger.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDebitZeroAmount(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tx, err := f.ledger.Debit(ctx, "2", 0, ledger.StatusCompleted, "Penukaran reward: Stiker Yamaha")
	require.NoError(t, err)
	assert.Zero(t, tx.Amount)
	assert.Equal(t, int64(275000), balance(t, f, "2"))

	_, err = f.ledger.Debit(ctx, "2", -1, ledger.StatusCompleted, "x")
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestConcurrentWithdrawals(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	const (
		workers = 20
		amount  = int64(50000)
		start   = int64(275000)
	)

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
		lowest    atomic.Int64
		failures  = make(chan error, workers)
		stop      = make(chan struct{})
		watched   = make(chan struct{})
	)
	lowest.Store(start)

	go func() {
		defer close(watched)
		for {
			select {
			case <-stop:
				return
			default:
			}
			if u, err := f.users.GetByID(ctx, "2"); err == nil && u.Balance < lowest.Load() {
				lowest.Store(u.Balance)
			}
		}
	}()

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.ledger.Withdraw(ctx, "2", amount, bca); err != nil {
				failures <- err
				return
			}
			successes.Add(1)
		}()
	}
	wg.Wait()
	close(stop)
	<-watched
	close(failures)

	for err := range failures {
		require.ErrorIs(t, err, core.ErrInsufficientBalance)
	}

	ok := successes.Load()
	assert.Equal(t, start/amount, ok)

	final := balance(t, f, "2")
	assert.Equal(t, start-ok*amount, final)
	assert.GreaterOrEqual(t, final, int64(0))
	assert.GreaterOrEqual(t, lowest.Load(), int64(0))

	entries, err := f.ledger.List(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, entries, int(ok))
	for _, e := range entries {
		assert.Equal(t, -amount, e.Amount)
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := store.New()
	repo := ledger.NewRepository(db)

	day := func(d int) time.Time { return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC) }
	for _, tx := range []ledger.Transaction{
		{ID: "1", UserID: "2", CreatedAt: day(16)},
		{ID: "2", UserID: "2", CreatedAt: day(14)},
		{ID: "3", UserID: "3", CreatedAt: day(12)},
		{ID: "4", UserID: "3", CreatedAt: day(18)},
	} {
		require.NoError(t, repo.Seed(ctx, &tx))
	}

	all, err := repo.List(ctx, "")
	require.NoError(t, err)

	got := make([]string, 0, len(all))
	for _, tx := range all {
		got = append(got, tx.ID)
	}
	assert.Equal(t, []string{"4", "1", "2", "3"}, got)

	mine, err := repo.List(ctx, "3")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "4", mine[0].ID)
}
