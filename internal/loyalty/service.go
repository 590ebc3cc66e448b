// AngelaMos | 2026
// service.go

package loyalty

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/templates/loyalty/internal/achievement"
	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/ledger"
	"github.com/carterperez-dev/templates/loyalty/internal/notification"
	"github.com/carterperez-dev/templates/loyalty/internal/reward"
	"github.com/carterperez-dev/templates/loyalty/internal/stats"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/submission"
	"github.com/carterperez-dev/templates/loyalty/internal/task"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

type Options struct {
	// Boundary runs before every operation. Nil means core.NoLatency.
	Boundary core.Boundary
	Logger   *slog.Logger
	Tracer   trace.Tracer
}

// Service is the single entry point for every read and write of the
// loyalty program data.
type Service struct {
	boundary core.Boundary
	logger   *slog.Logger
	tracer   trace.Tracer

	users         *user.Service
	tasks         *task.Service
	submissions   *submission.Service
	notifications *notification.Service
	ledger        *ledger.Service
	rewards       *reward.Service
	achievements  *achievement.Service
	stats         *stats.Service
}

func New(db *store.DB, repos Repositories, opts Options) *Service {
	if opts.Boundary == nil {
		opts.Boundary = core.NoLatency
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = core.Tracer()
	}

	notifications := notification.NewService(db, repos.Notifications)
	users := user.NewService(db, repos.Users, notifications)
	tasks := task.NewService(db, repos.Tasks)
	entries := ledger.NewService(db, repos.Ledger, users)
	submissions := submission.NewService(db, repos.Submissions, submission.Deps{
		Tasks:    tasks,
		Users:    users,
		Credits:  entries,
		Notifier: notifications,
	})

	return &Service{
		boundary:      opts.Boundary,
		logger:        opts.Logger,
		tracer:        opts.Tracer,
		users:         users,
		tasks:         tasks,
		submissions:   submissions,
		notifications: notifications,
		ledger:        entries,
		rewards:       reward.NewService(db, repos.Rewards, users, entries),
		achievements:  achievement.NewService(repos.Achievements, submissions),
		stats: stats.NewService(
			db,
			repos.Users,
			repos.Tasks,
			repos.Submissions,
			repos.Ledger,
		),
	}
}

func call[T any](
	ctx context.Context,
	s *Service,
	op string,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	ctx, span := s.tracer.Start(ctx, "loyalty."+op)
	defer span.End()

	var zero T
	if err := s.boundary.Before(ctx, op); err != nil {
		s.fail(ctx, op, err)
		return zero, err
	}

	res, err := fn(ctx)
	if err != nil {
		s.fail(ctx, op, err)
		return zero, err
	}

	return res, nil
}

func (s *Service) fail(ctx context.Context, op string, err error) {
	core.SetSpanError(ctx, err)

	kind := core.KindOf(err)
	level := slog.LevelWarn
	if kind == core.KindInternal {
		level = slog.LevelError
	}

	s.logger.Log(ctx, level, "operation failed",
		"op", op,
		"kind", kind,
		"error", err,
		"trace_id", core.TraceIDFromContext(ctx),
	)
}

func (s *Service) ListUsers(ctx context.Context) ([]user.User, error) {
	return call(ctx, s, "ListUsers", func(ctx context.Context) ([]user.User, error) {
		return s.users.List(ctx, user.ListUsersParams{})
	})
}

func (s *Service) GetUser(ctx context.Context, id string) (*user.User, error) {
	return call(ctx, s, "GetUser", func(ctx context.Context) (*user.User, error) {
		return s.users.GetByID(ctx, id)
	})
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return call(ctx, s, "GetUserByEmail", func(ctx context.Context) (*user.User, error) {
		return s.users.GetByEmail(ctx, email)
	})
}

func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req user.UpdateUserRequest,
) (*user.User, error) {
	return call(ctx, s, "UpdateUser", func(ctx context.Context) (*user.User, error) {
		return s.users.Update(ctx, id, req)
	})
}

// RegisterUser creates a customer account and its welcome notification.
func (s *Service) RegisterUser(
	ctx context.Context,
	req user.RegisterRequest,
) (*user.User, error) {
	return call(ctx, s, "RegisterUser", func(ctx context.Context) (*user.User, error) {
		u, err := s.users.Register(ctx, req)
		if err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "user registered", "user_id", u.ID)
		return u, nil
	})
}

func (s *Service) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	return call(ctx, s, "ListTasks", func(ctx context.Context) ([]task.Task, error) {
		return s.tasks.List(ctx, filter)
	})
}

func (s *Service) GetTask(ctx context.Context, id string) (*task.Task, error) {
	return call(ctx, s, "GetTask", func(ctx context.Context) (*task.Task, error) {
		return s.tasks.GetByID(ctx, id)
	})
}

func (s *Service) CreateTask(
	ctx context.Context,
	req task.CreateTaskRequest,
) (*task.Task, error) {
	return call(ctx, s, "CreateTask", func(ctx context.Context) (*task.Task, error) {
		return s.tasks.Create(ctx, req)
	})
}

func (s *Service) UpdateTask(
	ctx context.Context,
	id string,
	req task.UpdateTaskRequest,
) (*task.Task, error) {
	return call(ctx, s, "UpdateTask", func(ctx context.Context) (*task.Task, error) {
		return s.tasks.Update(ctx, id, req)
	})
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	_, err := call(ctx, s, "DeleteTask", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.tasks.Delete(ctx, id)
	})
	return err
}

func (s *Service) ListSubmissions(
	ctx context.Context,
	filter submission.Filter,
) ([]submission.Submission, error) {
	return call(ctx, s, "ListSubmissions", func(ctx context.Context) ([]submission.Submission, error) {
		return s.submissions.List(ctx, filter)
	})
}

func (s *Service) GetSubmission(
	ctx context.Context,
	id string,
) (*submission.Submission, error) {
	return call(ctx, s, "GetSubmission", func(ctx context.Context) (*submission.Submission, error) {
		return s.submissions.GetByID(ctx, id)
	})
}

func (s *Service) CreateSubmission(
	ctx context.Context,
	req submission.CreateSubmissionRequest,
) (*submission.Submission, error) {
	return call(ctx, s, "CreateSubmission", func(ctx context.Context) (*submission.Submission, error) {
		return s.submissions.Create(ctx, req)
	})
}

func (s *Service) UpdateSubmission(
	ctx context.Context,
	id string,
	req submission.UpdateSubmissionRequest,
) (*submission.Submission, error) {
	return call(ctx, s, "UpdateSubmission", func(ctx context.Context) (*submission.Submission, error) {
		return s.submissions.Update(ctx, id, req)
	})
}

// ReviewSubmission approves or rejects a pending submission. Approval
// grants the task reward to the submitter exactly once.
func (s *Service) ReviewSubmission(
	ctx context.Context,
	id string,
	req submission.ReviewRequest,
) (*submission.Submission, error) {
	return call(ctx, s, "ReviewSubmission", func(ctx context.Context) (*submission.Submission, error) {
		sub, err := s.submissions.Review(ctx, id, req)
		if err != nil {
			return nil, err
		}

		core.AddSpanEvent(ctx, "submission.reviewed",
			attribute.String("submission.id", sub.ID),
			attribute.String("submission.status", sub.Status),
		)
		s.logger.InfoContext(ctx, "submission reviewed",
			"submission_id", sub.ID,
			"status", sub.Status,
			"user_id", sub.UserID,
			"reviewer_id", sub.ReviewedBy,
		)
		return sub, nil
	})
}

func (s *Service) ListNotifications(
	ctx context.Context,
	userID string,
) ([]notification.Notification, error) {
	return call(ctx, s, "ListNotifications", func(ctx context.Context) ([]notification.Notification, error) {
		return s.notifications.ListForUser(ctx, userID)
	})
}

func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := call(ctx, s, "MarkNotificationRead", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.notifications.MarkRead(ctx, id)
	})
	return err
}

func (s *Service) CreateNotification(
	ctx context.Context,
	req notification.CreateNotificationRequest,
) (*notification.Notification, error) {
	return call(ctx, s, "CreateNotification", func(ctx context.Context) (*notification.Notification, error) {
		return s.notifications.Create(ctx, req)
	})
}

// ListTransactions returns ledger entries newest first. An empty userID
// lists the whole ledger.
func (s *Service) ListTransactions(
	ctx context.Context,
	userID string,
) ([]ledger.Transaction, error) {
	return call(ctx, s, "ListTransactions", func(ctx context.Context) ([]ledger.Transaction, error) {
		return s.ledger.List(ctx, userID)
	})
}

func (s *Service) CreateTransaction(
	ctx context.Context,
	req ledger.CreateTransactionRequest,
) (*ledger.Transaction, error) {
	return call(ctx, s, "CreateTransaction", func(ctx context.Context) (*ledger.Transaction, error) {
		return s.ledger.Create(ctx, req)
	})
}

func (s *Service) ProcessWithdrawal(
	ctx context.Context,
	userID string,
	amount int64,
	bank ledger.BankInfo,
) (*ledger.Transaction, error) {
	return call(ctx, s, "ProcessWithdrawal", func(ctx context.Context) (*ledger.Transaction, error) {
		t, err := s.ledger.Withdraw(ctx, userID, amount, bank)
		if err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "withdrawal requested",
			"user_id", userID,
			"amount", amount,
			"transaction_id", t.ID,
		)
		return t, nil
	})
}

func (s *Service) ListRewards(ctx context.Context) ([]reward.Reward, error) {
	return call(ctx, s, "ListRewards", func(ctx context.Context) ([]reward.Reward, error) {
		return s.rewards.List(ctx)
	})
}

func (s *Service) GetReward(ctx context.Context, id string) (*reward.Reward, error) {
	return call(ctx, s, "GetReward", func(ctx context.Context) (*reward.Reward, error) {
		return s.rewards.GetByID(ctx, id)
	})
}

// RedeemReward spends the reward's cost from the user's balance and takes
// one unit of stock. It returns the ledger entry recording the spend.
func (s *Service) RedeemReward(
	ctx context.Context,
	userID, rewardID string,
) (*ledger.Transaction, error) {
	return call(ctx, s, "RedeemReward", func(ctx context.Context) (*ledger.Transaction, error) {
		t, err := s.rewards.Redeem(ctx, userID, rewardID)
		if err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "reward redeemed",
			"user_id", userID,
			"reward_id", rewardID,
			"amount", t.Amount,
		)
		return t, nil
	})
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	return call(ctx, s, "Leaderboard", func(ctx context.Context) ([]stats.LeaderboardEntry, error) {
		return s.stats.Leaderboard(ctx, limit)
	})
}

func (s *Service) ListAchievements(ctx context.Context) ([]achievement.Achievement, error) {
	return call(ctx, s, "ListAchievements", func(ctx context.Context) ([]achievement.Achievement, error) {
		return s.achievements.List(ctx)
	})
}

func (s *Service) UserAchievements(
	ctx context.Context,
	userID string,
) ([]achievement.UserAchievement, error) {
	return call(ctx, s, "UserAchievements", func(ctx context.Context) ([]achievement.UserAchievement, error) {
		return s.achievements.ForUser(ctx, userID)
	})
}

func (s *Service) DashboardStats(ctx context.Context) (*stats.Dashboard, error) {
	return call(ctx, s, "DashboardStats", func(ctx context.Context) (*stats.Dashboard, error) {
		return s.stats.Dashboard(ctx)
	})
}

func (s *Service) Statistics(ctx context.Context) (*stats.Statistics, error) {
	return call(ctx, s, "Statistics", func(ctx context.Context) (*stats.Statistics, error) {
		return s.stats.Statistics(ctx)
	})
}

func (s *Service) SearchAll(ctx context.Context, query string) (*stats.SearchResult, error) {
	return call(ctx, s, "SearchAll", func(ctx context.Context) (*stats.SearchResult, error) {
		return s.stats.Search(ctx, query)
	})
}
