package dto

type DiscountPreviewResponseDTO struct {
	Amount      string `json:"amount" example:"200"`
	Channel     string `json:"channel" example:"wallet"`
	Discount    string `json:"discount" example:"10"`
	FinalAmount string `json:"final_amount" example:"190"`
}
