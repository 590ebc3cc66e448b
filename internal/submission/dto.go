// AngelaMos | 2026
// dto.go

package submission

type ContentRequest struct {
	Text   string   `json:"text,omitempty"   validate:"omitempty,max=10000"`
	Images []string `json:"images,omitempty" validate:"omitempty,max=20,dive,url"`
	Videos []string `json:"videos,omitempty" validate:"omitempty,max=5,dive,url"`
}

type CreateSubmissionRequest struct {
	TaskID  string         `json:"task_id" validate:"required"`
	UserID  string         `json:"user_id" validate:"required"`
	Content ContentRequest `json:"content"`
}

// UpdateSubmissionRequest edits a submission's payload. Status only changes
// through a review.
type UpdateSubmissionRequest struct {
	Content *ContentRequest `json:"content,omitempty"`
}

type ReviewRequest struct {
	Status     string `json:"status"      validate:"required,oneof=approved rejected"`
	Feedback   string `json:"feedback"    validate:"omitempty,max=2000"`
	ReviewerID string `json:"reviewer_id" validate:"omitempty"`
}

// Filter narrows a submission listing. Every field is optional; set fields
// must all match.
type Filter struct {
	TaskID string `json:"task_id"`
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

func (c ContentRequest) toContent() Content {
	return Content{
		Text:   c.Text,
		Images: append([]string(nil), c.Images...),
		Videos: append([]string(nil), c.Videos...),
	}
}
