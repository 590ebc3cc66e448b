// AngelaMos | 2026
// dto.go

package task

import (
	"time"
)

type CreateTaskRequest struct {
	Title        string    `json:"title"        validate:"required,min=1,max=200"`
	Description  string    `json:"description"  validate:"required,max=5000"`
	Reward       int64     `json:"reward"       validate:"gte=0"`
	Deadline     time.Time `json:"deadline"     validate:"required"`
	Category     string    `json:"category"     validate:"required,max=50"`
	Requirements []string  `json:"requirements" validate:"dive,required"`
	Status       string    `json:"status"       validate:"omitempty,oneof=active completed expired"`
	CreatedBy    string    `json:"created_by"   validate:"required"`
}

type UpdateTaskRequest struct {
	Title        *string    `json:"title,omitempty"        validate:"omitempty,min=1,max=200"`
	Description  *string    `json:"description,omitempty"  validate:"omitempty,max=5000"`
	Reward       *int64     `json:"reward,omitempty"       validate:"omitempty,gte=0"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Category     *string    `json:"category,omitempty"     validate:"omitempty,min=1,max=50"`
	Requirements []string   `json:"requirements,omitempty" validate:"omitempty,dive,required"`
	Status       *string    `json:"status,omitempty"       validate:"omitempty,oneof=active completed expired"`
}

// Filter narrows a task listing. Empty fields, and "all" for Category or
// Status, do not filter.
type Filter struct {
	Category string `json:"category"`
	Status   string `json:"status"`
	Search   string `json:"search"`
}

func (r UpdateTaskRequest) apply(t *Task) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Reward != nil {
		t.Reward = *r.Reward
	}
	if r.Deadline != nil {
		t.Deadline = *r.Deadline
	}
	if r.Category != nil {
		t.Category = *r.Category
	}
	if r.Requirements != nil {
		t.Requirements = append([]string(nil), r.Requirements...)
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
}
