// AngelaMos | 2026
// dto.go

package ledger

type CreateTransactionRequest struct {
	UserID      string `json:"user_id"     validate:"required"`
	Type        string `json:"type"        validate:"required,oneof=reward withdrawal"`
	Amount      int64  `json:"amount"      validate:"ne=0"`
	Status      string `json:"status"      validate:"required,oneof=pending completed failed"`
	Description string `json:"description" validate:"required,max=500"`
}

type BankInfo struct {
	BankName      string `json:"bank_name"      validate:"required,max=100"`
	AccountNumber string `json:"account_number" validate:"required,numeric,min=4,max=34"`
	AccountHolder string `json:"account_holder" validate:"omitempty,max=100"`
}

type withdrawalInput struct {
	Amount int64    `validate:"gt=0"`
	Bank   BankInfo `validate:"required"`
}
