package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/sellora/sellerwallet/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// WithdrawalFee is the method's percentage cut of the gross amount.
func WithdrawalFee(amount decimal.Decimal, method domain.WithdrawalMethod) decimal.Decimal {
	return amount.Mul(method.FeePercent).Div(hundred)
}

// NetSettlement is what the seller receives after the fee.
func NetSettlement(amount decimal.Decimal, method domain.WithdrawalMethod) decimal.Decimal {
	return amount.Sub(WithdrawalFee(amount, method))
}

type PaymentChannel string

const (
	ChannelWallet  PaymentChannel = "wallet"
	ChannelGateway PaymentChannel = "gateway"
)

func (c PaymentChannel) Valid() bool {
	return c == ChannelWallet || c == ChannelGateway
}

// Discounter computes the wallet-payment discount. A single rate applies
// everywhere the discount is shown or settled; gateway-routed payments
// carry no discount.
type Discounter struct {
	percent decimal.Decimal
}

func NewDiscounter(percent decimal.Decimal) *Discounter {
	return &Discounter{percent: percent}
}

func (d *Discounter) Discount(amount decimal.Decimal, channel PaymentChannel) decimal.Decimal {
	if channel != ChannelWallet {
		return decimal.Zero
	}
	return amount.Mul(d.percent).Div(hundred)
}

func (d *Discounter) FinalAmount(amount decimal.Decimal, channel PaymentChannel) decimal.Decimal {
	return amount.Sub(d.Discount(amount, channel))
}
