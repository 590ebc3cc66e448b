// AngelaMos | 2026
// service.go

package reward

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/ledger"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type Debitor interface {
	Debit(
		ctx context.Context,
		userID string,
		amount int64,
		status, description string,
	) (*ledger.Transaction, error)
}

type Service struct {
	db     *store.DB
	repo   Repository
	users  UserLookup
	debits Debitor
}

func NewService(db *store.DB, repo Repository, users UserLookup, debits Debitor) *Service {
	return &Service{db: db, repo: repo, users: users, debits: debits}
}

func (s *Service) List(ctx context.Context) ([]Reward, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Reward, error) {
	return s.repo.GetByID(ctx, id)
}

// Redeem exchanges balance for one unit of a catalog reward. The balance
// debit, the ledger entry and the stock decrement commit together; a missing
// user or reward, a short balance or an empty stock changes nothing.
func (s *Service) Redeem(
	ctx context.Context,
	userID, rewardID string,
) (*ledger.Transaction, error) {
	var entry *ledger.Transaction

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		u, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("redeem reward: %w", err)
		}

		rw, err := s.repo.GetByID(ctx, rewardID)
		if err != nil {
			return fmt.Errorf("redeem reward: %w", err)
		}

		if u.Balance < rw.Points {
			return fmt.Errorf(
				"redeem reward %q: need %d, have %d: %w",
				rw.ID, rw.Points, u.Balance, core.ErrInsufficientBalance,
			)
		}

		if !rw.InStock() {
			return fmt.Errorf("redeem reward %q: %w", rw.ID, core.ErrOutOfStock)
		}

		entry, err = s.debits.Debit(
			ctx,
			userID,
			rw.Points,
			ledger.StatusCompleted,
			"Penukaran reward: "+rw.Title,
		)
		if err != nil {
			return fmt.Errorf("redeem reward: %w", err)
		}

		_, err = s.repo.TakeOne(ctx, rw.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}
