// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	Seed(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id string, fn func(*User) error) (*User, error)
	List(ctx context.Context, params ListUsersParams) ([]User, error)
	CountCustomers(ctx context.Context) int
	CountCreatedSince(ctx context.Context, since time.Time) int
	ExistsByEmail(ctx context.Context, email string) bool
}

type repository struct {
	users *store.Table[User]
}

func NewRepository(db *store.DB) Repository {
	return &repository{
		users: store.NewTable(db, "users", func(u *User) string { return u.ID }, nil),
	}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	if err := r.users.Prepend(ctx, *user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Seed appends, keeping fixture order.
func (r *repository) Seed(ctx context.Context, user *User) error {
	if err := r.users.Append(ctx, *user); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	user, ok := r.users.Find(ctx, id)
	if !ok {
		return nil, fmt.Errorf("get user %q: %w", id, core.ErrNotFound)
	}
	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	user, ok := r.users.FindFirst(ctx, func(u *User) bool {
		return u.Email == email
	})
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	return &user, nil
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fn func(*User) error,
) (*User, error) {
	user, err := r.users.Update(ctx, id, fn)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, error) {
	search := strings.ToLower(params.Search)

	return r.users.Filter(ctx, func(u *User) bool {
		if params.Role != "" && u.Role != params.Role {
			return false
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			return false
		}
		return true
	}), nil
}

func (r *repository) CountCustomers(ctx context.Context) int {
	return r.users.Count(ctx, func(u *User) bool {
		return u.IsCustomer()
	})
}

func (r *repository) CountCreatedSince(ctx context.Context, since time.Time) int {
	return r.users.Count(ctx, func(u *User) bool {
		return !u.CreatedAt.Before(since)
	})
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) bool {
	_, ok := r.users.FindFirst(ctx, func(u *User) bool {
		return u.Email == email
	})
	return ok
}
