// AngelaMos | 2026
// entity.go

package ledger

import (
	"time"
)

// Transaction is one append-only ledger entry. Amount is positive for
// credits and negative for debits.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *Transaction) IsCompletedReward() bool {
	return t.Type == TypeReward && t.Status == StatusCompleted
}

const (
	TypeReward     = "reward"
	TypeWithdrawal = "withdrawal"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
