package accountservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sellora/sellerwallet/internal/domain"
	statusrepo "github.com/sellora/sellerwallet/internal/repo/status-repo"
	"github.com/sellora/sellerwallet/internal/storage"
	"github.com/sellora/sellerwallet/internal/tariff"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockStatusRepo, *MockMethodRepo, *MockCardGenerator) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	statusRepo := NewMockStatusRepo(ctrl)
	methodRepo := NewMockMethodRepo(ctrl)
	cards := NewMockCardGenerator(ctrl)
	service := New(accountRepo, statusRepo, methodRepo, cards, tariff.NewClassifier(tariff.DefaultThresholds()), 2)
	defer ctrl.Finish()
	return service, accountRepo, statusRepo, methodRepo, cards
}

func activeSeller(sellerID string) *statusrepo.Record {
	return &statusrepo.Record{SellerID: sellerID, Status: domain.SellerActive, UpdatedAt: time.Now()}
}

func activeRecord(accountID string, balance int64) *domain.AccountRecord {
	return &domain.AccountRecord{
		Account: domain.Account{
			AccountID:       accountID,
			CardID:          "card-id",
			CardNumber:      "4218000000000001",
			Balance:         decimal.NewFromInt(balance),
			Tier:            domain.TierStandard,
			MonthlyEarnings: decimal.Zero,
			TotalEarnings:   decimal.Zero,
			EarningsPeriod:  time.Now().Format(periodLayout),
			Status:          domain.AccountActive,
			IssuedAt:        time.Now(),
		},
	}
}

func TestIssue(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(accountRepo *MockAccountRepo, cards *MockCardGenerator)
		expectedError error
	}{
		{
			name: "Successful issuance",
			prepareMock: func(accountRepo *MockAccountRepo, cards *MockCardGenerator) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(nil, int64(0), nil)
				accountRepo.EXPECT().CardNumbers(gomock.Any()).Return(map[string]struct{}{}, int64(0), nil)
				cards.EXPECT().Generate(gomock.Any()).Return("4218111122223333", nil)
				accountRepo.EXPECT().ReserveCardNumber(gomock.Any(), gomock.Any(), "4218111122223333", int64(0)).Return(nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				accountRepo.EXPECT().AccountIDs(gomock.Any()).Return(nil, int64(0), nil)
				accountRepo.EXPECT().RegisterAccountID(gomock.Any(), gomock.Any(), "seller-1", int64(0)).Return(nil)
			},
		},
		{
			name: "Duplicate account",
			prepareMock: func(accountRepo *MockAccountRepo, cards *MockCardGenerator) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeRecord("seller-1", 0), int64(1), nil)
			},
			expectedError: ErrDuplicateAccount,
		},
		{
			name: "Concurrent create surfaces duplicate",
			prepareMock: func(accountRepo *MockAccountRepo, cards *MockCardGenerator) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(nil, int64(0), nil)
				accountRepo.EXPECT().CardNumbers(gomock.Any()).Return(map[string]struct{}{}, int64(0), nil)
				cards.EXPECT().Generate(gomock.Any()).Return("4218111122223333", nil)
				accountRepo.EXPECT().ReserveCardNumber(gomock.Any(), gomock.Any(), "4218111122223333", int64(0)).Return(nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storage.ErrVersionConflict)
			},
			expectedError: ErrDuplicateAccount,
		},
		{
			name: "Card reservation conflict retries and succeeds",
			prepareMock: func(accountRepo *MockAccountRepo, cards *MockCardGenerator) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(nil, int64(0), nil)
				accountRepo.EXPECT().CardNumbers(gomock.Any()).Return(map[string]struct{}{}, int64(0), nil)
				cards.EXPECT().Generate(gomock.Any()).Return("4218111122223333", nil)
				accountRepo.EXPECT().ReserveCardNumber(gomock.Any(), gomock.Any(), "4218111122223333", int64(0)).Return(storage.ErrVersionConflict)
				accountRepo.EXPECT().CardNumbers(gomock.Any()).Return(map[string]struct{}{"4218111122223333": {}}, int64(1), nil)
				cards.EXPECT().Generate(gomock.Any()).Return("4218444455556666", nil)
				accountRepo.EXPECT().ReserveCardNumber(gomock.Any(), gomock.Any(), "4218444455556666", int64(1)).Return(nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				accountRepo.EXPECT().AccountIDs(gomock.Any()).Return([]string{}, int64(1), nil)
				accountRepo.EXPECT().RegisterAccountID(gomock.Any(), gomock.Any(), "seller-1", int64(1)).Return(nil)
			},
		},
		{
			name: "Generator exhaustion is permanent",
			prepareMock: func(accountRepo *MockAccountRepo, cards *MockCardGenerator) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(nil, int64(0), nil)
				accountRepo.EXPECT().CardNumbers(gomock.Any()).Return(map[string]struct{}{}, int64(0), nil)
				cards.EXPECT().Generate(gomock.Any()).Return("", errors.New("exhausted card number generation attempts"))
			},
			expectedError: errors.New("exhausted card number generation attempts"),
		},
		{
			name: "Index registration failure does not fail issuance",
			prepareMock: func(accountRepo *MockAccountRepo, cards *MockCardGenerator) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(nil, int64(0), nil)
				accountRepo.EXPECT().CardNumbers(gomock.Any()).Return(map[string]struct{}{}, int64(0), nil)
				cards.EXPECT().Generate(gomock.Any()).Return("4218111122223333", nil)
				accountRepo.EXPECT().ReserveCardNumber(gomock.Any(), gomock.Any(), "4218111122223333", int64(0)).Return(nil)
				accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				accountRepo.EXPECT().AccountIDs(gomock.Any()).Return(nil, int64(0), errors.New("index unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _, cards := NewMock(t)
			tt.prepareMock(accountRepo, cards)

			account, err := service.Issue(context.Background(), "seller-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "seller-1", account.AccountID)
				assert.NotEmpty(t, account.CardID)
				assert.Len(t, account.CardNumber, 16)
				assert.True(t, account.Balance.IsZero())
				assert.Equal(t, domain.TierStandard, account.Tier)
				assert.Equal(t, domain.AccountActive, account.Status)
			}
		})
	}
}

func TestApplyTransactionValidation(t *testing.T) {
	tests := []struct {
		name          string
		kind          domain.TransactionKind
		amount        decimal.Decimal
		prepareMock   func(statusRepo *MockStatusRepo)
		expectedError error
	}{
		{
			name:          "Unknown kind",
			kind:          domain.TransactionKind("gift"),
			amount:        decimal.NewFromInt(10),
			expectedError: ErrInvalidKind,
		},
		{
			name:          "Zero amount",
			kind:          domain.KindPurchase,
			amount:        decimal.Zero,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount",
			kind:          domain.KindPurchase,
			amount:        decimal.NewFromInt(-5),
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Seller pending review is gated",
			kind:   domain.KindPurchase,
			amount: decimal.NewFromInt(10),
			prepareMock: func(statusRepo *MockStatusRepo) {
				statusRepo.EXPECT().Get(gomock.Any(), "seller-1").
					Return(&statusrepo.Record{SellerID: "seller-1", Status: domain.SellerPendingReview}, int64(1), nil)
			},
			expectedError: ErrAccountNotActive,
		},
		{
			name:   "Seller with no moderation record is gated",
			kind:   domain.KindPurchase,
			amount: decimal.NewFromInt(10),
			prepareMock: func(statusRepo *MockStatusRepo) {
				statusRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(nil, int64(0), nil)
			},
			expectedError: ErrAccountNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, statusRepo, _, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(statusRepo)
			}

			txn, err := service.ApplyTransaction(context.Background(), "seller-1", tt.kind, tt.amount, TransactionMeta{})
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, txn)
		})
	}
}

func TestApplyTransactionFold(t *testing.T) {
	tests := []struct {
		name            string
		kind            domain.TransactionKind
		amount          int64
		startBalance    int64
		expectedBalance string
		expectedTotal   string
		expectedTier    domain.Tier
	}{
		{
			name:            "Purchase credits and counts as earnings",
			kind:            domain.KindPurchase,
			amount:          100,
			startBalance:    50,
			expectedBalance: "150",
			expectedTotal:   "100",
			expectedTier:    domain.TierStandard,
		},
		{
			name:            "Bonus credits without earnings",
			kind:            domain.KindBonus,
			amount:          100,
			startBalance:    50,
			expectedBalance: "150",
			expectedTotal:   "0",
			expectedTier:    domain.TierStandard,
		},
		{
			name:            "Withdrawal debits",
			kind:            domain.KindWithdrawal,
			amount:          30,
			startBalance:    50,
			expectedBalance: "20",
			expectedTotal:   "0",
			expectedTier:    domain.TierStandard,
		},
		{
			name:            "Refund debits",
			kind:            domain.KindRefund,
			amount:          30,
			startBalance:    50,
			expectedBalance: "20",
			expectedTotal:   "0",
			expectedTier:    domain.TierStandard,
		},
		{
			name:            "Debit past zero clamps",
			kind:            domain.KindWithdrawal,
			amount:          80,
			startBalance:    50,
			expectedBalance: "0",
			expectedTotal:   "0",
			expectedTier:    domain.TierStandard,
		},
		{
			name:            "Large purchase promotes the tier",
			kind:            domain.KindPurchase,
			amount:          30_000,
			startBalance:    0,
			expectedBalance: "30000",
			expectedTotal:   "30000",
			expectedTier:    domain.TierPremium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, statusRepo, _, _ := NewMock(t)

			statusRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeSeller("seller-1"), int64(1), nil)
			accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeRecord("seller-1", tt.startBalance), int64(1), nil)

			var saved *domain.AccountRecord
			accountRepo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).
				DoAndReturn(func(_ context.Context, rec *domain.AccountRecord, _ int64) error {
					saved = rec
					return nil
				})

			txn, err := service.ApplyTransaction(context.Background(), "seller-1", tt.kind, decimal.NewFromInt(tt.amount), TransactionMeta{Description: "test"})
			assert.NoError(t, err)
			assert.NotEmpty(t, txn.TransactionID)
			assert.Equal(t, domain.TransactionCompleted, txn.Status)

			assert.True(t, decimal.RequireFromString(tt.expectedBalance).Equal(saved.Account.Balance), "balance %s", saved.Account.Balance)
			assert.True(t, decimal.RequireFromString(tt.expectedTotal).Equal(saved.Account.TotalEarnings), "total %s", saved.Account.TotalEarnings)
			assert.Equal(t, tt.expectedTier, saved.Account.Tier)
			assert.Len(t, saved.Transactions, 1)
			assert.Equal(t, txn.TransactionID, saved.Transactions[0].TransactionID)
		})
	}
}

func TestApplyTransactionAccountGates(t *testing.T) {
	tests := []struct {
		name          string
		record        *domain.AccountRecord
		expectedError error
	}{
		{name: "Account not found", record: nil, expectedError: ErrAccountNotFound},
		{
			name: "Blocked account",
			record: func() *domain.AccountRecord {
				rec := activeRecord("seller-1", 0)
				rec.Account.Status = domain.AccountBlocked
				return rec
			}(),
			expectedError: ErrAccountNotActive,
		},
		{
			name: "Expired account",
			record: func() *domain.AccountRecord {
				rec := activeRecord("seller-1", 0)
				rec.Account.Status = domain.AccountExpired
				return rec
			}(),
			expectedError: ErrAccountNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, statusRepo, _, _ := NewMock(t)

			statusRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeSeller("seller-1"), int64(1), nil)
			accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(tt.record, int64(1), nil)

			txn, err := service.ApplyTransaction(context.Background(), "seller-1", domain.KindPurchase, decimal.NewFromInt(10), TransactionMeta{})
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, txn)
		})
	}
}

// A concurrent writer bumps the version between read and write; the
// service must re-read and fold onto the fresh state, losing nothing.
func TestApplyTransactionConflictRetry(t *testing.T) {
	service, accountRepo, statusRepo, _, _ := NewMock(t)

	statusRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeSeller("seller-1"), int64(1), nil)

	// First attempt reads version 1, write conflicts. Second attempt
	// reads the winner's state at version 2 and succeeds.
	accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeRecord("seller-1", 100), int64(1), nil)
	accountRepo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).Return(storage.ErrVersionConflict)
	accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeRecord("seller-1", 170), int64(2), nil)

	var saved *domain.AccountRecord
	accountRepo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).
		DoAndReturn(func(_ context.Context, rec *domain.AccountRecord, _ int64) error {
			saved = rec
			return nil
		})

	txn, err := service.ApplyTransaction(context.Background(), "seller-1", domain.KindBonus, decimal.NewFromInt(30), TransactionMeta{})
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(saved.Account.Balance), "fold must apply on the fresh read, got %s", saved.Account.Balance)
	assert.Equal(t, txn.TransactionID, saved.Transactions[0].TransactionID)
}

func TestApplyTransactionRetriesExhausted(t *testing.T) {
	service, accountRepo, statusRepo, _, _ := NewMock(t)

	statusRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeSeller("seller-1"), int64(1), nil)
	accountRepo.EXPECT().Get(gomock.Any(), "seller-1").
		DoAndReturn(func(_ context.Context, _ string) (*domain.AccountRecord, int64, error) {
			return activeRecord("seller-1", 100), 1, nil
		}).Times(3)
	accountRepo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).Return(storage.ErrVersionConflict).Times(3)

	txn, err := service.ApplyTransaction(context.Background(), "seller-1", domain.KindPurchase, decimal.NewFromInt(10), TransactionMeta{})
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.Nil(t, txn)
}

// The monthly counter resets when a purchase lands in a new period, but
// an earned tier is never taken back.
func TestApplyTransactionMonthlyRollover(t *testing.T) {
	service, accountRepo, statusRepo, _, _ := NewMock(t)

	rec := activeRecord("seller-1", 0)
	rec.Account.EarningsPeriod = "2026-07"
	rec.Account.MonthlyEarnings = decimal.NewFromInt(40_000)
	rec.Account.TotalEarnings = decimal.NewFromInt(40_000)
	rec.Account.Tier = domain.TierPremium

	statusRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeSeller("seller-1"), int64(1), nil)
	accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(rec, int64(3), nil)

	var saved *domain.AccountRecord
	accountRepo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(3)).
		DoAndReturn(func(_ context.Context, rec *domain.AccountRecord, _ int64) error {
			saved = rec
			return nil
		})

	_, err := service.ApplyTransaction(context.Background(), "seller-1", domain.KindPurchase, decimal.NewFromInt(100), TransactionMeta{})
	assert.NoError(t, err)

	assert.Equal(t, time.Now().Format(periodLayout), saved.Account.EarningsPeriod)
	assert.True(t, decimal.NewFromInt(100).Equal(saved.Account.MonthlyEarnings), "monthly counter must restart, got %s", saved.Account.MonthlyEarnings)
	assert.Equal(t, domain.TierPremium, saved.Account.Tier, "promotion is sticky across the reset")
}

func TestReplayBalance(t *testing.T) {
	txns := []domain.Transaction{
		{Kind: domain.KindPurchase, Amount: decimal.NewFromInt(100), Status: domain.TransactionCompleted},
		{Kind: domain.KindWithdrawal, Amount: decimal.NewFromInt(30), Status: domain.TransactionCompleted},
		{Kind: domain.KindRefund, Amount: decimal.NewFromInt(200), Status: domain.TransactionCompleted},
		{Kind: domain.KindBonus, Amount: decimal.NewFromInt(25), Status: domain.TransactionCompleted},
		{Kind: domain.KindPurchase, Amount: decimal.NewFromInt(999), Status: domain.TransactionFailed},
	}

	// 100 - 30 = 70, refund clamps to 0, bonus lands on 25; the failed
	// purchase never counts.
	balance := ReplayBalance(txns)
	assert.True(t, decimal.NewFromInt(25).Equal(balance), "got %s", balance)
}

func TestWithdraw(t *testing.T) {
	service, accountRepo, statusRepo, methodRepo, _ := NewMock(t)

	method := &domain.WithdrawalMethod{
		ID:             "bank_transfer",
		Name:           "Bank Transfer",
		FeePercent:     decimal.RequireFromString("0.5"),
		ProcessingTime: "1-3 business days",
	}
	methodRepo.EXPECT().GetByID(gomock.Any(), "bank_transfer").Return(method, nil)
	statusRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeSeller("seller-1"), int64(1), nil)
	accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeRecord("seller-1", 1000), int64(1), nil)

	var saved *domain.AccountRecord
	accountRepo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).
		DoAndReturn(func(_ context.Context, rec *domain.AccountRecord, _ int64) error {
			saved = rec
			return nil
		})

	receipt, err := service.Withdraw(context.Background(), "seller-1", "bank_transfer", decimal.NewFromInt(500))
	assert.NoError(t, err)

	assert.True(t, decimal.RequireFromString("2.5").Equal(receipt.Fee), "fee %s", receipt.Fee)
	assert.True(t, decimal.RequireFromString("497.5").Equal(receipt.NetSettlement), "net %s", receipt.NetSettlement)
	assert.Equal(t, "1-3 business days", receipt.ProcessingTime)
	assert.Equal(t, domain.KindWithdrawal, receipt.Transaction.Kind)

	// The full gross amount leaves the balance; the fee is the method's
	// cut of the settlement, not an extra debit.
	assert.True(t, decimal.NewFromInt(500).Equal(saved.Account.Balance), "balance %s", saved.Account.Balance)
}

func TestWithdrawUnknownMethod(t *testing.T) {
	service, _, _, methodRepo, _ := NewMock(t)

	wantErr := errors.New("withdrawal method not found")
	methodRepo.EXPECT().GetByID(gomock.Any(), "cheque").Return(nil, wantErr)

	receipt, err := service.Withdraw(context.Background(), "seller-1", "cheque", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, receipt)
}

func TestGetAccount(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(accountRepo *MockAccountRepo)
		expectedError error
	}{
		{
			name: "Existing account",
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeRecord("seller-1", 42), int64(1), nil)
			},
		},
		{
			name: "Missing account",
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(nil, int64(0), nil)
			},
			expectedError: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _, _ := NewMock(t)
			tt.prepareMock(accountRepo)

			account, err := service.GetAccount(context.Background(), "seller-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, account)
			} else {
				assert.NoError(t, err)
				assert.True(t, decimal.NewFromInt(42).Equal(account.Balance))
			}
		})
	}
}

func TestGetHistoryReverseChronological(t *testing.T) {
	service, accountRepo, _, _, _ := NewMock(t)

	rec := activeRecord("seller-1", 0)
	rec.Transactions = []domain.Transaction{
		{TransactionID: "txn-1"},
		{TransactionID: "txn-2"},
		{TransactionID: "txn-3"},
	}
	accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(rec, int64(1), nil)

	history, err := service.GetHistory(context.Background(), "seller-1")
	assert.NoError(t, err)
	assert.Equal(t, "txn-3", history[0].TransactionID)
	assert.Equal(t, "txn-2", history[1].TransactionID)
	assert.Equal(t, "txn-1", history[2].TransactionID)
}

func TestAuditLedger(t *testing.T) {
	tests := []struct {
		name       string
		balance    int64
		consistent bool
	}{
		{name: "Materialized balance matches the fold", balance: 70, consistent: true},
		{name: "Drifted balance is flagged", balance: 99, consistent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _, _ := NewMock(t)

			rec := activeRecord("seller-1", tt.balance)
			rec.Transactions = []domain.Transaction{
				{Kind: domain.KindPurchase, Amount: decimal.NewFromInt(100), Status: domain.TransactionCompleted},
				{Kind: domain.KindWithdrawal, Amount: decimal.NewFromInt(30), Status: domain.TransactionCompleted},
			}
			accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(rec, int64(1), nil)

			consistent, stored, computed, err := service.AuditLedger(context.Background(), "seller-1")
			assert.NoError(t, err)
			assert.Equal(t, tt.consistent, consistent)
			assert.True(t, decimal.NewFromInt(tt.balance).Equal(stored))
			assert.True(t, decimal.NewFromInt(70).Equal(computed))
		})
	}
}

func TestSetStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        domain.AccountStatus
		prepareMock   func(accountRepo *MockAccountRepo)
		expectedError error
	}{
		{
			name:   "Block an active account",
			status: domain.AccountBlocked,
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(activeRecord("seller-1", 0), int64(1), nil)
				accountRepo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).
					DoAndReturn(func(_ context.Context, rec *domain.AccountRecord, _ int64) error {
						assert.Equal(t, domain.AccountBlocked, rec.Account.Status)
						return nil
					})
			},
		},
		{
			name:          "Unknown status value",
			status:        domain.AccountStatus("frozen"),
			expectedError: ErrInvalidStatus,
		},
		{
			name:   "Missing account",
			status: domain.AccountActive,
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().Get(gomock.Any(), "seller-1").Return(nil, int64(0), nil)
			},
			expectedError: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(accountRepo)
			}

			err := service.SetStatus(context.Background(), "seller-1", tt.status)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListWithdrawalMethods(t *testing.T) {
	service, _, _, methodRepo, _ := NewMock(t)

	methods := []domain.WithdrawalMethod{{ID: "bank_transfer"}, {ID: "e_wallet"}}
	methodRepo.EXPECT().List(gomock.Any()).Return(methods, nil)

	got, err := service.ListWithdrawalMethods(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, methods, got)
}
