// AngelaMos | 2026
// achievement.go

package achievement

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`
	Reward      int64  `json:"reward"`
	Category    string `json:"category"`
}

// UserAchievement is an achievement annotated with one user's progress.
type UserAchievement struct {
	Achievement
	Completed bool `json:"completed"`
	Progress  int  `json:"progress"`
}

type ApprovalCounter interface {
	ApprovedCount(ctx context.Context, userID string) (int, error)
}

type Repository interface {
	Seed(ctx context.Context, a *Achievement) error
	List(ctx context.Context) ([]Achievement, error)
}

type repository struct {
	catalog *store.Table[Achievement]
}

func NewRepository(db *store.DB) Repository {
	return &repository{
		catalog: store.NewTable(
			db,
			"achievements",
			func(a *Achievement) string { return a.ID },
			nil,
		),
	}
}

func (r *repository) Seed(ctx context.Context, a *Achievement) error {
	if err := r.catalog.Append(ctx, *a); err != nil {
		return fmt.Errorf("seed achievement: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Achievement, error) {
	return r.catalog.All(ctx), nil
}

type Service struct {
	repo     Repository
	approved ApprovalCounter
}

func NewService(repo Repository, approved ApprovalCounter) *Service {
	return &Service{repo: repo, approved: approved}
}

func (s *Service) List(ctx context.Context) ([]Achievement, error) {
	return s.repo.List(ctx)
}

// ForUser scores every achievement against the user's approved
// submissions. Progress is capped at the requirement.
func (s *Service) ForUser(
	ctx context.Context,
	userID string,
) ([]UserAchievement, error) {
	done, err := s.approved.ApprovedCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user achievements: %w", err)
	}

	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user achievements: %w", err)
	}

	out := make([]UserAchievement, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, UserAchievement{
			Achievement: a,
			Completed:   done >= a.Requirement,
			Progress:    min(done, a.Requirement),
		})
	}

	return out, nil
}
