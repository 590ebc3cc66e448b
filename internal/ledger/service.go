// AngelaMos | 2026
// service.go

package ledger

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

// Accounts resolves users and applies a signed delta to a balance atomically.
type Accounts interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	AdjustBalance(ctx context.Context, id string, delta int64) (*user.User, error)
}

type Service struct {
	db       *store.DB
	repo     Repository
	accounts Accounts
}

func NewService(db *store.DB, repo Repository, accounts Accounts) *Service {
	return &Service{db: db, repo: repo, accounts: accounts}
}

func (s *Service) List(ctx context.Context, userID string) ([]Transaction, error) {
	return s.repo.List(ctx, userID)
}

// Create records an entry for an existing user without touching any
// balance. Reward amounts must be positive and withdrawal amounts negative.
func (s *Service) Create(
	ctx context.Context,
	req CreateTransactionRequest,
) (*Transaction, error) {
	if err := core.ValidateStruct("create transaction", req); err != nil {
		return nil, err
	}
	if err := checkSign(req.Type, req.Amount); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	t := s.newEntry(req.UserID, req.Type, req.Amount, req.Status, req.Description)

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.GetByID(ctx, req.UserID); err != nil {
			return err
		}
		return s.repo.Append(ctx, t)
	})
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return t, nil
}

// Credit adds amount to the user's balance and appends a completed reward
// entry, as one unit of work.
func (s *Service) Credit(
	ctx context.Context,
	userID string,
	amount int64,
	description string,
) (*Transaction, error) {
	if amount < 0 {
		return nil, fmt.Errorf("credit %d: %w", amount, core.ErrInvalidInput)
	}

	return s.post(ctx, userID, amount, TypeReward, StatusCompleted, description)
}

// Debit removes amount from the user's balance and appends a withdrawal
// entry carrying -amount. A zero amount still records the entry. It fails
// with core.ErrInsufficientBalance when the balance is short, leaving both
// balance and ledger untouched.
func (s *Service) Debit(
	ctx context.Context,
	userID string,
	amount int64,
	status, description string,
) (*Transaction, error) {
	if amount < 0 {
		return nil, fmt.Errorf("debit %d: %w", amount, core.ErrInvalidInput)
	}

	return s.post(ctx, userID, -amount, TypeWithdrawal, status, description)
}

// Withdraw moves amount out to the given bank account. The entry stays
// pending until settled and names only the last four account digits.
func (s *Service) Withdraw(
	ctx context.Context,
	userID string,
	amount int64,
	bank BankInfo,
) (*Transaction, error) {
	in := withdrawalInput{Amount: amount, Bank: bank}
	if err := core.ValidateStruct("process withdrawal", in); err != nil {
		return nil, err
	}

	description := fmt.Sprintf(
		"Penarikan saldo ke rekening %s %s",
		bank.BankName,
		core.MaskAccount(bank.AccountNumber),
	)

	t, err := s.Debit(ctx, userID, amount, StatusPending, description)
	if err != nil {
		return nil, fmt.Errorf("process withdrawal: %w", err)
	}

	return t, nil
}

func (s *Service) post(
	ctx context.Context,
	userID string,
	delta int64,
	kind, status, description string,
) (*Transaction, error) {
	t := s.newEntry(userID, kind, delta, status, description)

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.AdjustBalance(ctx, userID, delta); err != nil {
			return err
		}
		return s.repo.Append(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) newEntry(
	userID, kind string,
	amount int64,
	status, description string,
) *Transaction {
	return &Transaction{
		ID:          s.db.NewID(),
		UserID:      userID,
		Type:        kind,
		Amount:      amount,
		Status:      status,
		Description: description,
		CreatedAt:   s.db.Now(),
	}
}

func checkSign(kind string, amount int64) error {
	switch {
	case kind == TypeReward && amount <= 0:
		return fmt.Errorf("reward amount %d must be positive: %w", amount, core.ErrInvalidInput)
	case kind == TypeWithdrawal && amount >= 0:
		return fmt.Errorf("withdrawal amount %d must be negative: %w", amount, core.ErrInvalidInput)
	}
	return nil
}
