// AngelaMos | 2026
// repository.go

package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

type Repository interface {
	Append(ctx context.Context, t *Transaction) error
	Seed(ctx context.Context, t *Transaction) error
	List(ctx context.Context, userID string) ([]Transaction, error)
	SumCompletedRewards(ctx context.Context, since time.Time) int64
	CompletedRewardsByUser(ctx context.Context) map[string]int64
	UsersWithRewardsSince(ctx context.Context, since time.Time) map[string]struct{}
}

type repository struct {
	entries *store.Table[Transaction]
}

func NewRepository(db *store.DB) Repository {
	return &repository{
		entries: store.NewTable(
			db,
			"transactions",
			func(t *Transaction) string { return t.ID },
			nil,
		),
	}
}

// Append adds an entry at the front of the ledger. There is no update or
// delete: entries are immutable once written.
func (r *repository) Append(ctx context.Context, t *Transaction) error {
	if err := r.entries.Prepend(ctx, *t); err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

func (r *repository) Seed(ctx context.Context, t *Transaction) error {
	if err := r.entries.Append(ctx, *t); err != nil {
		return fmt.Errorf("seed transaction: %w", err)
	}
	return nil
}

// List returns entries newest first, limited to userID when it is set.
func (r *repository) List(
	ctx context.Context,
	userID string,
) ([]Transaction, error) {
	out := r.entries.Filter(ctx, func(t *Transaction) bool {
		return userID == "" || t.UserID == userID
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

// SumCompletedRewards totals completed reward credits created at or after
// since. A zero since covers the whole ledger.
func (r *repository) SumCompletedRewards(
	ctx context.Context,
	since time.Time,
) int64 {
	var sum int64
	for _, t := range r.entries.Filter(ctx, func(t *Transaction) bool {
		return t.IsCompletedReward() && !t.CreatedAt.Before(since)
	}) {
		sum += t.Amount
	}
	return sum
}

func (r *repository) CompletedRewardsByUser(
	ctx context.Context,
) map[string]int64 {
	totals := make(map[string]int64)
	for _, t := range r.entries.Filter(ctx, func(t *Transaction) bool {
		return t.IsCompletedReward()
	}) {
		totals[t.UserID] += t.Amount
	}
	return totals
}

func (r *repository) UsersWithRewardsSince(
	ctx context.Context,
	since time.Time,
) map[string]struct{} {
	users := make(map[string]struct{})
	for _, t := range r.entries.Filter(ctx, func(t *Transaction) bool {
		return t.Type == TypeReward && !t.CreatedAt.Before(since)
	}) {
		users[t.UserID] = struct{}{}
	}
	return users
}
