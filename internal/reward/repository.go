// AngelaMos | 2026
// repository.go

package reward

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

type Repository interface {
	Seed(ctx context.Context, r *Reward) error
	GetByID(ctx context.Context, id string) (*Reward, error)
	List(ctx context.Context) ([]Reward, error)
	TakeOne(ctx context.Context, id string) (*Reward, error)
}

type repository struct {
	rewards *store.Table[Reward]
}

func NewRepository(db *store.DB) Repository {
	return &repository{
		rewards: store.NewTable(db, "rewards", func(r *Reward) string { return r.ID }, nil),
	}
}

func (r *repository) Seed(ctx context.Context, rw *Reward) error {
	if err := r.rewards.Append(ctx, *rw); err != nil {
		return fmt.Errorf("seed reward: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Reward, error) {
	rw, ok := r.rewards.Find(ctx, id)
	if !ok {
		return nil, fmt.Errorf("get reward %q: %w", id, core.ErrNotFound)
	}
	return &rw, nil
}

func (r *repository) List(ctx context.Context) ([]Reward, error) {
	return r.rewards.All(ctx), nil
}

// TakeOne decrements stock by one, never below zero.
func (r *repository) TakeOne(ctx context.Context, id string) (*Reward, error) {
	rw, err := r.rewards.Update(ctx, id, func(rw *Reward) error {
		rw.Stock = max(0, rw.Stock-1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("take reward stock: %w", err)
	}
	return &rw, nil
}
