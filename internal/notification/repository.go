// AngelaMos | 2026
// repository.go

package notification

import (
	"context"
	"fmt"
	"sort"

	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	Seed(ctx context.Context, n *Notification) error
	MarkRead(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
}

type repository struct {
	notifications *store.Table[Notification]
}

func NewRepository(db *store.DB) Repository {
	return &repository{
		notifications: store.NewTable(
			db,
			"notifications",
			func(n *Notification) string { return n.ID },
			nil,
		),
	}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	if err := r.notifications.Prepend(ctx, *n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *repository) Seed(ctx context.Context, n *Notification) error {
	if err := r.notifications.Append(ctx, *n); err != nil {
		return fmt.Errorf("seed notification: %w", err)
	}
	return nil
}

func (r *repository) MarkRead(ctx context.Context, id string) error {
	_, err := r.notifications.Update(ctx, id, func(n *Notification) error {
		n.Read = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// ListByUser returns the user's notifications, newest first.
func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Notification, error) {
	out := r.notifications.Filter(ctx, func(n *Notification) bool {
		return n.UserID == userID
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
