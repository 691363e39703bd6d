package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
	TierElite    Tier = "elite"
)

type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountBlocked AccountStatus = "blocked"
	AccountExpired AccountStatus = "expired"
)

type SellerStatus string

const (
	SellerPendingReview SellerStatus = "pending_review"
	SellerActive        SellerStatus = "active"
	SellerRejected      SellerStatus = "rejected"
	SellerBlocked       SellerStatus = "blocked"
	SellerResubmitted   SellerStatus = "resubmitted"
)

type TransactionKind string

const (
	KindPurchase   TransactionKind = "purchase"
	KindWithdrawal TransactionKind = "withdrawal"
	KindBonus      TransactionKind = "bonus"
	KindRefund     TransactionKind = "refund"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// Account is a seller's wallet record. Balance and Tier are materialized
// views over the completed transactions; they are never set by callers.
type Account struct {
	AccountID       string          `json:"account_id"`
	CardID          string          `json:"card_id"`
	CardNumber      string          `json:"card_number"`
	Balance         decimal.Decimal `json:"balance"`
	Tier            Tier            `json:"tier"`
	MonthlyEarnings decimal.Decimal `json:"monthly_earnings"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	// EarningsPeriod is the "2006-01" month MonthlyEarnings accumulates in.
	EarningsPeriod string        `json:"earnings_period"`
	Status         AccountStatus `json:"status"`
	IssuedAt       time.Time     `json:"issued_at"`
}

// MaskedCard keeps the first and last four digits visible. The full number
// leaves the ledger only once, in the issue response.
func (a *Account) MaskedCard() string {
	if len(a.CardNumber) != 16 {
		return a.CardNumber
	}
	return a.CardNumber[:4] + strings.Repeat("*", 8) + a.CardNumber[12:]
}

// Transaction is one append-only ledger entry. Amount is a positive
// magnitude; the balance effect is determined by Kind alone.
type Transaction struct {
	TransactionID string            `json:"transaction_id"`
	AccountID     string            `json:"account_id"`
	Kind          TransactionKind   `json:"kind"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurred_at"`
	Description   string            `json:"description,omitempty"`
	OrderID       string            `json:"order_id,omitempty"`
	ProductID     string            `json:"product_id,omitempty"`
}

// Credits reports whether the kind increases the balance.
func (k TransactionKind) Credits() bool {
	return k == KindPurchase || k == KindBonus
}

func (k TransactionKind) Valid() bool {
	switch k {
	case KindPurchase, KindWithdrawal, KindBonus, KindRefund:
		return true
	}
	return false
}

// AccountRecord is the persisted shape of an account: current state plus
// its append-only transaction log (chronological). Both live under one
// store key so a single compare-and-set covers state and history.
type AccountRecord struct {
	Account      Account       `json:"account"`
	Transactions []Transaction `json:"transactions"`
}

// WithdrawalMethod is reference data consulted for settlement math,
// never mutated by the ledger.
type WithdrawalMethod struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	FeePercent     decimal.Decimal `json:"fee_percent"`
	ProcessingTime string          `json:"processing_time"`
}

// StatusEvent is broadcast on the status channel when a seller's
// moderation status changes.
type StatusEvent struct {
	SellerID   string       `json:"seller_id"`
	Status     SellerStatus `json:"status"`
	Comment    string       `json:"comment,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}
