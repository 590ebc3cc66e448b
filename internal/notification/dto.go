// AngelaMos | 2026
// dto.go

package notification

type CreateNotificationRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Title   string `json:"title"   validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
	Type    string `json:"type"    validate:"required,oneof=task submission reward system"`
	Read    bool   `json:"read"`
}
