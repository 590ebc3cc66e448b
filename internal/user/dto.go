// AngelaMos | 2026
// dto.go

package user

type RegisterRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Name  string `json:"name"  validate:"required,min=1,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

// UpdateUserRequest merges every non-nil field into the stored user. Balance
// is deliberately absent: it only moves through the ledger.
type UpdateUserRequest struct {
	Email  *string `json:"email,omitempty"  validate:"omitempty,email,max=255"`
	Name   *string `json:"name,omitempty"   validate:"omitempty,min=1,max=100"`
	Phone  *string `json:"phone,omitempty"  validate:"omitempty,max=32"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,url"`
	Role   *string `json:"role,omitempty"   validate:"omitempty,oneof=customer admin"`
}

type ListUsersParams struct {
	Search string `json:"search"`
	Role   string `json:"role"`
}

func (r UpdateUserRequest) apply(u *User) {
	if r.Email != nil {
		u.Email = normalizeEmail(*r.Email)
	}
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Phone != nil {
		u.Phone = *r.Phone
	}
	if r.Avatar != nil {
		u.Avatar = *r.Avatar
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
}
