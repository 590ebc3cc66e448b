// AngelaMos | 2026
// entity.go

package task

import (
	"slices"
	"time"
)

type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Reward       int64     `json:"reward"`
	Deadline     time.Time `json:"deadline"`
	Category     string    `json:"category"`
	Requirements []string  `json:"requirements"`
	Status       string    `json:"status"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func (t *Task) IsActive() bool {
	return t.Status == StatusActive
}

func (t Task) clone() Task {
	t.Requirements = slices.Clone(t.Requirements)
	return t
}

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusExpired   = "expired"
)

// Categories used by the seeded catalog. Category is free-form; these are
// not enforced.
const (
	CategoryService  = "service"
	CategorySocial   = "social"
	CategorySurvey   = "survey"
	CategoryTestRide = "testride"
	CategoryContent  = "content"
	CategoryEvent    = "event"
	CategoryReferral = "referral"
	CategoryWorkshop = "workshop"
)

// FilterAll disables a category or status filter.
const FilterAll = "all"
