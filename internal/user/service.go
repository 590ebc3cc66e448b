// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

const (
	welcomeTitle   = "Selamat Datang di Yamaha Member!"
	welcomeMessage = "Terima kasih telah bergabung. Mulai selesaikan tugas pertama Anda dan dapatkan reward menarik!"
)

// Notifier delivers a system notification to a user.
type Notifier interface {
	NotifySystem(ctx context.Context, userID, title, message string) error
}

type Service struct {
	db       *store.DB
	repo     Repository
	notifier Notifier
}

func NewService(db *store.DB, repo Repository, notifier Notifier) *Service {
	return &Service{db: db, repo: repo, notifier: notifier}
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, normalizeEmail(email))
}

func (s *Service) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, error) {
	return s.repo.List(ctx, params)
}

// Register creates a customer with a zero balance and greets them. Both
// writes land together or not at all.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*User, error) {
	if err := core.ValidateStruct("register user", req); err != nil {
		return nil, err
	}

	user := &User{
		ID:        s.db.NewID(),
		Email:     normalizeEmail(req.Email),
		Name:      strings.TrimSpace(req.Name),
		Phone:     req.Phone,
		Balance:   0,
		Role:      RoleCustomer,
		CreatedAt: s.db.Now(),
	}

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		if s.repo.ExistsByEmail(ctx, user.Email) {
			return fmt.Errorf("register user: email %q: %w", user.Email, core.ErrDuplicateKey)
		}

		if err := s.repo.Create(ctx, user); err != nil {
			return err
		}

		if s.notifier == nil {
			return nil
		}
		return s.notifier.NotifySystem(ctx, user.ID, welcomeTitle, welcomeMessage)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	if err := core.ValidateStruct("update user", req); err != nil {
		return nil, err
	}

	var updated *User
	err := s.db.InTx(ctx, func(ctx context.Context) error {
		if req.Email != nil {
			other, err := s.repo.GetByEmail(ctx, normalizeEmail(*req.Email))
			if err == nil && other.ID != id {
				return fmt.Errorf("update user: email %q: %w", other.Email, core.ErrDuplicateKey)
			}
		}

		u, err := s.repo.Update(ctx, id, func(u *User) error {
			req.apply(u)
			return nil
		})
		if err != nil {
			return err
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AdjustBalance adds delta to the user's balance as one read-modify-write.
// A result below zero fails with core.ErrInsufficientBalance and leaves the
// balance unchanged.
func (s *Service) AdjustBalance(
	ctx context.Context,
	id string,
	delta int64,
) (*User, error) {
	return s.repo.Update(ctx, id, func(u *User) error {
		if u.Balance+delta < 0 {
			return fmt.Errorf(
				"adjust balance of %q by %d (have %d): %w",
				id, delta, u.Balance, core.ErrInsufficientBalance,
			)
		}
		u.Balance += delta
		return nil
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
