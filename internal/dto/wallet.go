package dto

import "time"

type IssueAccountResponseDTO struct {
	AccountID string `json:"account_id" example:"seller-42"`
	CardID    string `json:"card_id" example:"8b9e2f6c-6f0a-4c8e-9a1d-2f3b4c5d6e7f"`
	// The full card number is returned once, at issuance; every other
	// response carries the masked form.
	CardNumber string    `json:"card_number" example:"4218 0042 7316 9958"`
	Tier       string    `json:"tier" example:"standard"`
	Status     string    `json:"status" example:"active"`
	IssuedAt   time.Time `json:"issued_at" example:"2025-01-14T12:00:00+03:00"`
}

type AccountResponseDTO struct {
	AccountID       string    `json:"account_id" example:"seller-42"`
	Card            string    `json:"card" example:"4218********9958"`
	Balance         string    `json:"balance" example:"1250.50"`
	Tier            string    `json:"tier" example:"premium"`
	TotalEarnings   string    `json:"total_earnings" example:"150000"`
	MonthlyEarnings string    `json:"monthly_earnings" example:"42000"`
	Status          string    `json:"status" example:"active"`
	IssuedAt        time.Time `json:"issued_at" example:"2025-01-14T12:00:00+03:00"`
}

type BalanceResponseDTO struct {
	Balance string `json:"balance" example:"1250.50"`
}

type ApplyTransactionRequestDTO struct {
	Kind        string `json:"kind" example:"purchase"`
	Amount      string `json:"amount" example:"150.00"`
	Description string `json:"description,omitempty" example:"order payout"`
	OrderID     string `json:"order_id,omitempty" example:"2377225624"`
	ProductID   string `json:"product_id,omitempty" example:"prod-17"`
}

type TransactionResponseDTO struct {
	TransactionID string    `json:"transaction_id" example:"0194612e-5b9a-7cc3-a1f0-3f6f0a4c8e9a"`
	Kind          string    `json:"kind" example:"purchase"`
	Amount        string    `json:"amount" example:"150.00"`
	Status        string    `json:"status" example:"completed"`
	OccurredAt    time.Time `json:"occurred_at" example:"2025-01-14T12:00:00+03:00"`
	Description   string    `json:"description,omitempty" example:"order payout"`
	OrderID       string    `json:"order_id,omitempty" example:"2377225624"`
	ProductID     string    `json:"product_id,omitempty" example:"prod-17"`
}

type WithdrawRequestDTO struct {
	Method string `json:"method" example:"bank_transfer"`
	Amount string `json:"amount" example:"500"`
}

type WithdrawResponseDTO struct {
	Transaction    TransactionResponseDTO `json:"transaction"`
	Method         string                 `json:"method" example:"bank_transfer"`
	Fee            string                 `json:"fee" example:"2.5"`
	NetSettlement  string                 `json:"net_settlement" example:"497.5"`
	ProcessingTime string                 `json:"processing_time" example:"1-3 business days"`
}

type WithdrawalMethodDTO struct {
	ID             string `json:"id" example:"bank_transfer"`
	Name           string `json:"name" example:"Bank Transfer"`
	FeePercent     string `json:"fee_percent" example:"0.5"`
	ProcessingTime string `json:"processing_time" example:"1-3 business days"`
}
