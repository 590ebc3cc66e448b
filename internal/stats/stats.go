// AngelaMos | 2026
// stats.go

package stats

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/carterperez-dev/templates/loyalty/internal/ledger"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/submission"
	"github.com/carterperez-dev/templates/loyalty/internal/task"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

const (
	DefaultLeaderboardLimit = 10
	activeWindow            = 30 * 24 * time.Hour
)

type Dashboard struct {
	TotalUsers         int     `json:"total_users"`
	ActiveTasks        int     `json:"active_tasks"`
	PendingSubmissions int     `json:"pending_submissions"`
	TotalRewards       int64   `json:"total_rewards"`
	Monthly            Monthly `json:"monthly_stats"`
}

// Monthly covers the calendar month to date.
type Monthly struct {
	NewUsers       int   `json:"new_users"`
	CompletedTasks int   `json:"completed_tasks"`
	TotalRewards   int64 `json:"total_rewards"`
}

type Statistics struct {
	TotalUsers         int   `json:"total_users"`
	TotalTasks         int   `json:"total_tasks"`
	TotalSubmissions   int   `json:"total_submissions"`
	PendingSubmissions int   `json:"pending_submissions"`
	TotalRewards       int64 `json:"total_rewards"`
	ActiveUsers        int   `json:"active_users"`
	CompletionRate     int   `json:"completion_rate"`
}

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar,omitempty"`
	Points         int64  `json:"points"`
	CompletedTasks int    `json:"completed_tasks"`
}

type SearchResult struct {
	Tasks []task.Task `json:"tasks"`
	Users []user.User `json:"users"`
}

type Service struct {
	db          *store.DB
	users       user.Repository
	tasks       task.Repository
	submissions submission.Repository
	ledger      ledger.Repository
}

func NewService(
	db *store.DB,
	users user.Repository,
	tasks task.Repository,
	submissions submission.Repository,
	entries ledger.Repository,
) *Service {
	return &Service{
		db:          db,
		users:       users,
		tasks:       tasks,
		submissions: submissions,
		ledger:      entries,
	}
}

// Dashboard recomputes the admin dashboard from the current collections.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	monthStart := startOfMonth(s.db.Now())

	var d Dashboard
	err := s.db.View(ctx, func(ctx context.Context) error {
		d = Dashboard{
			TotalUsers:         s.users.CountCustomers(ctx),
			ActiveTasks:        s.tasks.CountByStatus(ctx, task.StatusActive),
			PendingSubmissions: s.submissions.CountByStatus(ctx, submission.StatusPending),
			TotalRewards:       s.ledger.SumCompletedRewards(ctx, time.Time{}),
			Monthly: Monthly{
				NewUsers:       s.users.CountCreatedSince(ctx, monthStart),
				CompletedTasks: s.submissions.CountApprovedSince(ctx, monthStart),
				TotalRewards:   s.ledger.SumCompletedRewards(ctx, monthStart),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	since := s.db.Now().Add(-activeWindow)

	var st Statistics
	err := s.db.View(ctx, func(ctx context.Context) error {
		total := s.submissions.Count(ctx)
		approved := s.submissions.CountByStatus(ctx, submission.StatusApproved)

		st = Statistics{
			TotalUsers:         s.users.CountCustomers(ctx),
			TotalTasks:         s.tasks.Count(ctx),
			TotalSubmissions:   total,
			PendingSubmissions: s.submissions.CountByStatus(ctx, submission.StatusPending),
			TotalRewards:       s.ledger.SumCompletedRewards(ctx, time.Time{}),
			ActiveUsers:        len(s.ledger.UsersWithRewardsSince(ctx, since)),
		}
		if total > 0 {
			st.CompletionRate = approved * 100 / total
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &st, nil
}

// Leaderboard ranks customers by completed reward points, then by approved
// submissions, then by name. A non-positive limit means
// DefaultLeaderboardLimit.
func (s *Service) Leaderboard(
	ctx context.Context,
	limit int,
) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	var entries []LeaderboardEntry
	err := s.db.View(ctx, func(ctx context.Context) error {
		customers, err := s.users.List(ctx, user.ListUsersParams{Role: user.RoleCustomer})
		if err != nil {
			return err
		}

		points := s.ledger.CompletedRewardsByUser(ctx)
		approved := s.submissions.ApprovedByUser(ctx)

		entries = make([]LeaderboardEntry, 0, len(customers))
		for _, u := range customers {
			entries = append(entries, LeaderboardEntry{
				UserID:         u.ID,
				Name:           u.Name,
				Avatar:         u.Avatar,
				Points:         points[u.ID],
				CompletedTasks: approved[u.ID],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b LeaderboardEntry) int {
		return cmp.Or(
			cmp.Compare(b.Points, a.Points),
			cmp.Compare(b.CompletedTasks, a.CompletedTasks),
			cmp.Compare(a.Name, b.Name),
		)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// Search matches tasks on title or description and users on name or email,
// case-insensitively.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	var res SearchResult
	err := s.db.View(ctx, func(ctx context.Context) error {
		tasks, err := s.tasks.List(ctx, task.Filter{Search: query})
		if err != nil {
			return err
		}

		users, err := s.users.List(ctx, user.ListUsersParams{Search: query})
		if err != nil {
			return err
		}

		res = SearchResult{Tasks: tasks, Users: users}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
