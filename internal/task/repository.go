// AngelaMos | 2026
// repository.go

package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

type Repository interface {
	Create(ctx context.Context, task *Task) error
	Seed(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)
	Update(ctx context.Context, id string, fn func(*Task) error) (*Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]Task, error)
	CountByStatus(ctx context.Context, status string) int
	Count(ctx context.Context) int
}

type repository struct {
	tasks *store.Table[Task]
}

func NewRepository(db *store.DB) Repository {
	return &repository{
		tasks: store.NewTable(db, "tasks", func(t *Task) string { return t.ID }, Task.clone),
	}
}

func (r *repository) Create(ctx context.Context, task *Task) error {
	if err := r.tasks.Prepend(ctx, *task); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Seed appends, keeping fixture order.
func (r *repository) Seed(ctx context.Context, task *Task) error {
	if err := r.tasks.Append(ctx, *task); err != nil {
		return fmt.Errorf("seed task: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Task, error) {
	task, ok := r.tasks.Find(ctx, id)
	if !ok {
		return nil, fmt.Errorf("get task %q: %w", id, core.ErrNotFound)
	}
	return &task, nil
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fn func(*Task) error,
) (*Task, error) {
	task, err := r.tasks.Update(ctx, id, fn)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return &task, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Task, error) {
	search := strings.ToLower(filter.Search)

	return r.tasks.Filter(ctx, func(t *Task) bool {
		if filter.Category != "" && filter.Category != FilterAll &&
			t.Category != filter.Category {
			return false
		}
		if filter.Status != "" && filter.Status != FilterAll &&
			t.Status != filter.Status {
			return false
		}
		if search != "" && !matches(t, search) {
			return false
		}
		return true
	}), nil
}

func (r *repository) CountByStatus(ctx context.Context, status string) int {
	return r.tasks.Count(ctx, func(t *Task) bool {
		return t.Status == status
	})
}

func (r *repository) Count(ctx context.Context) int {
	return r.tasks.Len(ctx)
}

func matches(t *Task, lowered string) bool {
	return strings.Contains(strings.ToLower(t.Title), lowered) ||
		strings.Contains(strings.ToLower(t.Description), lowered)
}
