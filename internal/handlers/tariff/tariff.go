package tariff

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sellora/sellerwallet/internal/dto"
	tariffcalc "github.com/sellora/sellerwallet/internal/tariff"
	"github.com/sellora/sellerwallet/pkg/utils"
)

type Discounter interface {
	Discount(amount decimal.Decimal, channel tariffcalc.PaymentChannel) decimal.Decimal
	FinalAmount(amount decimal.Decimal, channel tariffcalc.PaymentChannel) decimal.Decimal
}

type TariffHandler struct {
	discounter Discounter
}

func New(discounter Discounter) *TariffHandler {
	return &TariffHandler{
		discounter: discounter,
	}
}

// DiscountPreview godoc
//
//	@Summary		Preview payment discount
//	@Description	Compute the wallet-payment discount and final amount for a given amount and payment channel. Gateway payments carry no discount.
//	@Tags			Tariff
//	@Produce		json
//	@Param			amount	query		string								true	"Payment amount"
//	@Param			channel	query		string								true	"Payment channel: wallet or gateway"
//	@Success		200		{object}	dto.DiscountPreviewResponseDTO	"Discount preview"
//	@Failure		422		{object}	utils.Response					"Invalid amount or channel"
//	@Router			/api/tariff/preview [get]
func (h *TariffHandler) DiscountPreview(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil || !amount.IsPositive() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount")
		return
	}
	channel := tariffcalc.PaymentChannel(r.URL.Query().Get("channel"))
	if !channel.Valid() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment channel")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DiscountPreviewResponseDTO{
		Amount:      amount.String(),
		Channel:     string(channel),
		Discount:    h.discounter.Discount(amount, channel).String(),
		FinalAmount: h.discounter.FinalAmount(amount, channel).String(),
	})
}
