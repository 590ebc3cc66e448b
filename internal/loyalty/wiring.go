// AngelaMos | 2026
// wiring.go

package loyalty

import (
	"github.com/carterperez-dev/templates/loyalty/internal/achievement"
	"github.com/carterperez-dev/templates/loyalty/internal/ledger"
	"github.com/carterperez-dev/templates/loyalty/internal/notification"
	"github.com/carterperez-dev/templates/loyalty/internal/reward"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/submission"
	"github.com/carterperez-dev/templates/loyalty/internal/task"
	"github.com/carterperez-dev/templates/loyalty/internal/user"
)

// Repositories are the collections of one store.
type Repositories struct {
	Users         user.Repository
	Tasks         task.Repository
	Submissions   submission.Repository
	Notifications notification.Repository
	Ledger        ledger.Repository
	Rewards       reward.Repository
	Achievements  achievement.Repository
}

func NewRepositories(db *store.DB) Repositories {
	return Repositories{
		Users:         user.NewRepository(db),
		Tasks:         task.NewRepository(db),
		Submissions:   submission.NewRepository(db),
		Notifications: notification.NewRepository(db),
		Ledger:        ledger.NewRepository(db),
		Rewards:       reward.NewRepository(db),
		Achievements:  achievement.NewRepository(db),
	}
}
