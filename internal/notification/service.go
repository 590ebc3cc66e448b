// AngelaMos | 2026
// service.go

package notification

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

func (s *Service) ListForUser(
	ctx context.Context,
	userID string,
) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateNotificationRequest,
) (*Notification, error) {
	if err := core.ValidateStruct("create notification", req); err != nil {
		return nil, err
	}

	n := &Notification{
		ID:        s.db.NewID(),
		UserID:    req.UserID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Read:      req.Read,
		CreatedAt: s.db.Now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Service) Notify(
	ctx context.Context,
	userID, kind, title, message string,
) error {
	_, err := s.Create(ctx, CreateNotificationRequest{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	})
	return err
}

func (s *Service) NotifySystem(
	ctx context.Context,
	userID, title, message string,
) error {
	return s.Notify(ctx, userID, TypeSystem, title, message)
}
