// AngelaMos | 2026
// entity.go

package reward

import (
	"time"
)

// Reward is a catalog item bought with balance. Points is its cost in the
// same unit as the user's balance.
type Reward struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Points      int64     `json:"points"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Stock       int       `json:"stock"`
	ValidUntil  time.Time `json:"valid_until"`
}

func (r *Reward) InStock() bool {
	return r.Stock > 0
}
