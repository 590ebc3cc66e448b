// AngelaMos | 2026
// service.go

package submission

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/ledger"
	"github.com/carterperez-dev/templates/loyalty/internal/notification"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/task"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

type TaskLookup interface {
	GetByID(ctx context.Context, id string) (*task.Task, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type RewardCreditor interface {
	Credit(
		ctx context.Context,
		userID string,
		amount int64,
		description string,
	) (*ledger.Transaction, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, message string) error
}

type Service struct {
	db       *store.DB
	repo     Repository
	tasks    TaskLookup
	users    UserLookup
	credits  RewardCreditor
	notifier Notifier
}

type Deps struct {
	Tasks    TaskLookup
	Users    UserLookup
	Credits  RewardCreditor
	Notifier Notifier
}

func NewService(db *store.DB, repo Repository, deps Deps) *Service {
	return &Service{
		db:       db,
		repo:     repo,
		tasks:    deps.Tasks,
		users:    deps.Users,
		credits:  deps.Credits,
		notifier: deps.Notifier,
	}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Submission, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Submission, error) {
	return s.repo.GetByID(ctx, id)
}

// Create files a pending submission against an existing task and user.
func (s *Service) Create(
	ctx context.Context,
	req CreateSubmissionRequest,
) (*Submission, error) {
	if err := core.ValidateStruct("create submission", req); err != nil {
		return nil, err
	}

	sub := &Submission{
		ID:          s.db.NewID(),
		TaskID:      req.TaskID,
		UserID:      req.UserID,
		Content:     req.Content.toContent(),
		Status:      StatusPending,
		SubmittedAt: s.db.Now(),
	}

	err := s.db.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.tasks.GetByID(ctx, req.TaskID); err != nil {
			return fmt.Errorf("create submission: %w", err)
		}
		if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
			return fmt.Errorf("create submission: %w", err)
		}
		return s.repo.Create(ctx, sub)
	})
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// Update edits the content of a pending submission. Reviewed submissions
// are frozen and fail with core.ErrAlreadyReviewed.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateSubmissionRequest,
) (*Submission, error) {
	if err := core.ValidateStruct("update submission", req); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, func(sub *Submission) error {
		if !sub.IsPending() {
			return fmt.Errorf(
				"update submission %q (status %s): %w",
				sub.ID, sub.Status, core.ErrAlreadyReviewed,
			)
		}
		if req.Content != nil {
			sub.Content = req.Content.toContent()
		}
		return nil
	})
}

// Review moves a pending submission to approved or rejected. Approval
// credits the task reward to the submitter through the ledger. The status
// change, the credit and the notification commit together; a submission
// that was already reviewed fails with core.ErrAlreadyReviewed.
func (s *Service) Review(
	ctx context.Context,
	id string,
	req ReviewRequest,
) (*Submission, error) {
	if err := core.ValidateStruct("review submission", req); err != nil {
		return nil, err
	}

	var reviewed *Submission
	err := s.db.InTx(ctx, func(ctx context.Context) error {
		sub, err := s.repo.Update(ctx, id, func(sub *Submission) error {
			if !sub.IsPending() {
				return fmt.Errorf(
					"review submission %q (status %s): %w",
					sub.ID, sub.Status, core.ErrAlreadyReviewed,
				)
			}

			now := s.db.Now()
			sub.Status = req.Status
			sub.Feedback = req.Feedback
			sub.ReviewedAt = &now
			sub.ReviewedBy = req.ReviewerID
			return nil
		})
		if err != nil {
			return err
		}

		t, err := s.tasks.GetByID(ctx, sub.TaskID)
		switch {
		case err == nil && sub.IsApproved():
			err = s.approve(ctx, sub, t)
		case err == nil:
			err = s.reject(ctx, sub, t.Title)
		case core.IsNotFound(err) && !sub.IsApproved():
			err = s.reject(ctx, sub, sub.TaskID)
		default:
			err = fmt.Errorf("review submission: %w", err)
		}
		if err != nil {
			return err
		}

		reviewed = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviewed, nil
}

func (s *Service) approve(ctx context.Context, sub *Submission, t *task.Task) error {
	_, err := s.credits.Credit(ctx, sub.UserID, t.Reward, "Reward dari tugas: "+t.Title)
	if err != nil {
		return fmt.Errorf("grant reward: %w", err)
	}

	return s.notify(ctx, sub.UserID,
		"Submission Disetujui",
		fmt.Sprintf(
			"Submission Anda untuk tugas %q telah disetujui. Reward %s telah ditambahkan ke saldo.",
			t.Title, core.FormatMoney(t.Reward),
		),
	)
}

func (s *Service) reject(ctx context.Context, sub *Submission, taskTitle string) error {
	msg := fmt.Sprintf("Submission Anda untuk tugas %q belum dapat disetujui.", taskTitle)
	if sub.Feedback != "" {
		msg += " Catatan: " + sub.Feedback
	}

	return s.notify(ctx, sub.UserID, "Submission Ditolak", msg)
}

func (s *Service) notify(ctx context.Context, userID, title, message string) error {
	if s.notifier == nil {
		return nil
	}
	return s.notifier.Notify(ctx, userID, notification.TypeSubmission, title, message)
}

func (s *Service) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}

func (s *Service) CountPending(ctx context.Context) int {
	return s.repo.CountByStatus(ctx, StatusPending)
}

// ApprovedCount is the number of the user's approved submissions.
func (s *Service) ApprovedCount(ctx context.Context, userID string) (int, error) {
	subs, err := s.repo.List(ctx, Filter{UserID: userID, Status: StatusApproved})
	if err != nil {
		return 0, err
	}
	return len(subs), nil
}
