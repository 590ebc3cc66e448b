// AngelaMos | 2026
// repository.go

package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	Seed(ctx context.Context, s *Submission) error
	GetByID(ctx context.Context, id string) (*Submission, error)
	Update(ctx context.Context, id string, fn func(*Submission) error) (*Submission, error)
	List(ctx context.Context, filter Filter) ([]Submission, error)
	Count(ctx context.Context) int
	CountByStatus(ctx context.Context, status string) int
	CountApprovedSince(ctx context.Context, since time.Time) int
	ApprovedByUser(ctx context.Context) map[string]int
}

type repository struct {
	submissions *store.Table[Submission]
}

func NewRepository(db *store.DB) Repository {
	return &repository{
		submissions: store.NewTable(
			db,
			"submissions",
			func(s *Submission) string { return s.ID },
			Submission.clone,
		),
	}
}

func (r *repository) Create(ctx context.Context, s *Submission) error {
	if err := r.submissions.Prepend(ctx, *s); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

func (r *repository) Seed(ctx context.Context, s *Submission) error {
	if err := r.submissions.Append(ctx, *s); err != nil {
		return fmt.Errorf("seed submission: %w", err)
	}
	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Submission, error) {
	s, ok := r.submissions.Find(ctx, id)
	if !ok {
		return nil, fmt.Errorf("get submission %q: %w", id, core.ErrNotFound)
	}
	return &s, nil
}

func (r *repository) Update(
	ctx context.Context,
	id string,
	fn func(*Submission) error,
) (*Submission, error) {
	s, err := r.submissions.Update(ctx, id, fn)
	if err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return &s, nil
}

func (r *repository) List(
	ctx context.Context,
	filter Filter,
) ([]Submission, error) {
	return r.submissions.Filter(ctx, func(s *Submission) bool {
		if filter.TaskID != "" && s.TaskID != filter.TaskID {
			return false
		}
		if filter.UserID != "" && s.UserID != filter.UserID {
			return false
		}
		if filter.Status != "" && s.Status != filter.Status {
			return false
		}
		return true
	}), nil
}

func (r *repository) Count(ctx context.Context) int {
	return r.submissions.Len(ctx)
}

func (r *repository) CountByStatus(ctx context.Context, status string) int {
	return r.submissions.Count(ctx, func(s *Submission) bool {
		return s.Status == status
	})
}

func (r *repository) CountApprovedSince(ctx context.Context, since time.Time) int {
	return r.submissions.Count(ctx, func(s *Submission) bool {
		return s.IsApproved() && s.ReviewedAt != nil && !s.ReviewedAt.Before(since)
	})
}

func (r *repository) ApprovedByUser(ctx context.Context) map[string]int {
	counts := make(map[string]int)
	for _, s := range r.submissions.Filter(ctx, func(s *Submission) bool {
		return s.IsApproved()
	}) {
		counts[s.UserID]++
	}
	return counts
}
