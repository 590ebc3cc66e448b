// AngelaMos | 2026
// entity.go

package submission

import (
	"slices"
	"time"
)

type Content struct {
	Text   string   `json:"text,omitempty"`
	Images []string `json:"images,omitempty"`
	Videos []string `json:"videos,omitempty"`
}

type Submission struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	UserID      string     `json:"user_id"`
	Content     Content    `json:"content"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy  string     `json:"reviewed_by,omitempty"`
	Feedback    string     `json:"feedback,omitempty"`
}

func (s *Submission) IsPending() bool {
	return s.Status == StatusPending
}

func (s *Submission) IsApproved() bool {
	return s.Status == StatusApproved
}

func (s Submission) clone() Submission {
	s.Content.Images = slices.Clone(s.Content.Images)
	s.Content.Videos = slices.Clone(s.Content.Videos)
	if s.ReviewedAt != nil {
		at := *s.ReviewedAt
		s.ReviewedAt = &at
	}
	return s
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
