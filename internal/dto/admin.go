package dto

import "time"

type SetSellerStatusRequestDTO struct {
	Status  string `json:"status" example:"active"`
	Comment string `json:"comment,omitempty" example:"documents verified"`
}

type SellerStatusResponseDTO struct {
	SellerID  string    `json:"seller_id" example:"seller-42"`
	Status    string    `json:"status" example:"active"`
	Comment   string    `json:"comment,omitempty" example:"documents verified"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-01-14T12:00:00+03:00"`
}

type SetAccountStatusRequestDTO struct {
	Status string `json:"status" example:"blocked"`
}

type LedgerAuditResponseDTO struct {
	AccountID  string `json:"account_id" example:"seller-42"`
	Consistent bool   `json:"consistent" example:"true"`
	Stored     string `json:"stored" example:"1250.50"`
	Computed   string `json:"computed" example:"1250.50"`
}
