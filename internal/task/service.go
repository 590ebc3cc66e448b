// AngelaMos | 2026
// service.go

package task

import (
	"context"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

type Service struct {
	db   *store.DB
	repo Repository
}

func NewService(db *store.DB, repo Repository) *Service {
	return &Service{db: db, repo: repo}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Task, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateTaskRequest,
) (*Task, error) {
	if err := core.ValidateStruct("create task", req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	task := &Task{
		ID:           s.db.NewID(),
		Title:        req.Title,
		Description:  req.Description,
		Reward:       req.Reward,
		Deadline:     req.Deadline,
		Category:     req.Category,
		Requirements: append([]string(nil), req.Requirements...),
		Status:       status,
		CreatedBy:    req.CreatedBy,
		CreatedAt:    s.db.Now(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateTaskRequest,
) (*Task, error) {
	if err := core.ValidateStruct("update task", req); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, func(t *Task) error {
		req.apply(t)
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Search matches title and description, case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]Task, error) {
	return s.repo.List(ctx, Filter{Search: query})
}

func (s *Service) CountActive(ctx context.Context) int {
	return s.repo.CountByStatus(ctx, StatusActive)
}

func (s *Service) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}
