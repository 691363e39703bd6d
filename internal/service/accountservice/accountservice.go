package accountservice

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/domain"
	statusrepo "github.com/sellora/sellerwallet/internal/repo/status-repo"
	"github.com/sellora/sellerwallet/internal/storage"
	"github.com/sellora/sellerwallet/internal/tariff"
)

const periodLayout = "2006-01"

type AccountRepo interface {
	Get(ctx context.Context, accountID string) (*domain.AccountRecord, int64, error)
	Create(ctx context.Context, rec *domain.AccountRecord) error
	Save(ctx context.Context, rec *domain.AccountRecord, version int64) error
	CardNumbers(ctx context.Context) (map[string]struct{}, int64, error)
	ReserveCardNumber(ctx context.Context, numbers map[string]struct{}, number string, version int64) error
	AccountIDs(ctx context.Context) ([]string, int64, error)
	RegisterAccountID(ctx context.Context, ids []string, id string, version int64) error
}

type StatusRepo interface {
	Get(ctx context.Context, sellerID string) (*statusrepo.Record, int64, error)
}

type MethodRepo interface {
	List(ctx context.Context) ([]domain.WithdrawalMethod, error)
	GetByID(ctx context.Context, id string) (*domain.WithdrawalMethod, error)
}

type CardGenerator interface {
	Generate(existing map[string]struct{}) (string, error)
}

var (
	ErrDuplicateAccount       = errors.New("account already exists")
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccountNotActive       = errors.New("account not active")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidKind            = errors.New("invalid transaction kind")
	ErrInvalidStatus          = errors.New("invalid account status")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// Service is the account manager: the sole mutator of ledger state.
// Every mutation is a read-compute-compare-and-set cycle against the
// durable store, retried with backoff and surfaced as
// ErrConcurrentModification when retries run out.
type Service struct {
	accountRepo AccountRepo
	statusRepo  StatusRepo
	methodRepo  MethodRepo
	cards       CardGenerator
	classifier  *tariff.Classifier
	maxRetries  uint64
}

func New(accountRepo AccountRepo, statusRepo StatusRepo, methodRepo MethodRepo, cards CardGenerator, classifier *tariff.Classifier, maxRetries uint64) *Service {
	return &Service{
		accountRepo: accountRepo,
		statusRepo:  statusRepo,
		methodRepo:  methodRepo,
		cards:       cards,
		classifier:  classifier,
		maxRetries:  maxRetries,
	}
}

// TransactionMeta carries the optional cross-references recorded with a
// transaction. They are lookup data only.
type TransactionMeta struct {
	Description string
	OrderID     string
	ProductID   string
}

// WithdrawalReceipt is the settlement breakdown returned from Withdraw.
type WithdrawalReceipt struct {
	Transaction    domain.Transaction
	Method         domain.WithdrawalMethod
	Fee            decimal.Decimal
	NetSettlement  decimal.Decimal
	ProcessingTime string
}

func (s *Service) withRetry(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxInterval = 250 * time.Millisecond

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, s.maxRetries), ctx))
	if errors.Is(err, storage.ErrVersionConflict) {
		return ErrConcurrentModification
	}
	return err
}

// retryable keeps version conflicts retryable and wraps everything else
// as permanent so business errors surface immediately.
func retryable(err error) error {
	if errors.Is(err, storage.ErrVersionConflict) {
		return err
	}
	return backoff.Permanent(err)
}

// Issue allocates a card and creates the account with a zero balance and
// the standard tier. The card number is reserved in the global issued set
// first, so two sessions can never hand out the same number.
func (s *Service) Issue(ctx context.Context, accountID string) (*domain.Account, error) {
	existing, _, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	var number string
	err = s.withRetry(ctx, func() error {
		numbers, version, err := s.accountRepo.CardNumbers(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		n, err := s.cards.Generate(numbers)
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := s.accountRepo.ReserveCardNumber(ctx, numbers, n, version); err != nil {
			return retryable(err)
		}
		number = n
		return nil
	})
	if err != nil {
		zap.L().Error("failed to reserve card number", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}

	now := time.Now()
	rec := &domain.AccountRecord{
		Account: domain.Account{
			AccountID:       accountID,
			CardID:          uuid.NewString(),
			CardNumber:      number,
			Balance:         decimal.Zero,
			Tier:            domain.TierStandard,
			MonthlyEarnings: decimal.Zero,
			TotalEarnings:   decimal.Zero,
			EarningsPeriod:  now.Format(periodLayout),
			Status:          domain.AccountActive,
			IssuedAt:        now,
		},
	}
	if err := s.accountRepo.Create(ctx, rec); err != nil {
		if errors.Is(err, storage.ErrVersionConflict) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	// The account index only feeds administrative sweeps; a failure here
	// must not fail the issuance itself.
	err = s.withRetry(ctx, func() error {
		ids, version, err := s.accountRepo.AccountIDs(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		return retryable(s.accountRepo.RegisterAccountID(ctx, ids, accountID, version))
	})
	if err != nil {
		zap.L().Warn("failed to register account in index", zap.String("account_id", accountID), zap.Error(err))
	}

	zap.L().Info("account issued", zap.String("account_id", accountID), zap.String("card", rec.Account.MaskedCard()))
	account := rec.Account
	return &account, nil
}

// ApplyTransaction validates, gates on the durable seller status, and
// folds one completed transaction into the account under compare-and-set.
// Debits clamp at zero instead of failing; callers that must detect
// shortfalls check GetBalance first.
func (s *Service) ApplyTransaction(ctx context.Context, accountID string, kind domain.TransactionKind, amount decimal.Decimal, meta TransactionMeta) (*domain.Transaction, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := s.gateSellerActive(ctx, accountID); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	txn := domain.Transaction{
		TransactionID: id.String(),
		AccountID:     accountID,
		Kind:          kind,
		Amount:        amount,
		Status:        domain.TransactionCompleted,
		OccurredAt:    time.Now(),
		Description:   meta.Description,
		OrderID:       meta.OrderID,
		ProductID:     meta.ProductID,
	}

	err = s.withRetry(ctx, func() error {
		rec, version, err := s.accountRepo.Get(ctx, accountID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if rec == nil {
			return backoff.Permanent(ErrAccountNotFound)
		}
		if rec.Account.Status != domain.AccountActive {
			return backoff.Permanent(ErrAccountNotActive)
		}
		s.fold(&rec.Account, txn)
		rec.Transactions = append(rec.Transactions, txn)
		return retryable(s.accountRepo.Save(ctx, rec, version))
	})
	if err != nil {
		zap.L().Error("failed to apply transaction",
			zap.String("account_id", accountID),
			zap.String("kind", string(kind)),
			zap.Error(err))
		return nil, err
	}

	return &txn, nil
}

// gateSellerActive re-reads the durable moderation status on every
// mutating call. Events from the status channel are best-effort and are
// never trusted for gating.
func (s *Service) gateSellerActive(ctx context.Context, sellerID string) error {
	rec, _, err := s.statusRepo.Get(ctx, sellerID)
	if err != nil {
		return err
	}
	if rec == nil || rec.Status != domain.SellerActive {
		return ErrAccountNotActive
	}
	return nil
}

// fold applies one completed transaction to the materialized account
// state: purchase and bonus credit, withdrawal and refund debit clamped
// at zero. Purchases also advance the earnings counters and re-classify
// the tier; promotions are sticky.
func (s *Service) fold(acc *domain.Account, txn domain.Transaction) {
	period := txn.OccurredAt.Format(periodLayout)
	if acc.EarningsPeriod != period {
		acc.EarningsPeriod = period
		acc.MonthlyEarnings = decimal.Zero
	}

	if txn.Kind.Credits() {
		acc.Balance = acc.Balance.Add(txn.Amount)
	} else {
		acc.Balance = acc.Balance.Sub(txn.Amount)
		if acc.Balance.IsNegative() {
			acc.Balance = decimal.Zero
		}
	}

	if txn.Kind == domain.KindPurchase {
		acc.TotalEarnings = acc.TotalEarnings.Add(txn.Amount)
		acc.MonthlyEarnings = acc.MonthlyEarnings.Add(txn.Amount)
		acc.Tier = tariff.MaxTier(acc.Tier, s.classifier.Classify(acc.TotalEarnings, acc.MonthlyEarnings))
	}
}

// ReplayBalance recomputes the balance from scratch under the sign rule.
// The materialized balance must always equal this fold.
func ReplayBalance(txns []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range txns {
		if txn.Status != domain.TransactionCompleted {
			continue
		}
		if txn.Kind.Credits() {
			balance = balance.Add(txn.Amount)
		} else {
			balance = balance.Sub(txn.Amount)
			if balance.IsNegative() {
				balance = decimal.Zero
			}
		}
	}
	return balance
}

// Withdraw settles a withdrawal through the given method: the gross
// amount is debited from the balance, and the receipt reports the fee
// and the net amount the seller receives.
func (s *Service) Withdraw(ctx context.Context, accountID, methodID string, amount decimal.Decimal) (*WithdrawalReceipt, error) {
	method, err := s.methodRepo.GetByID(ctx, methodID)
	if err != nil {
		return nil, err
	}

	fee := tariff.WithdrawalFee(amount, *method)
	net := tariff.NetSettlement(amount, *method)

	txn, err := s.ApplyTransaction(ctx, accountID, domain.KindWithdrawal, amount, TransactionMeta{
		Description: "withdrawal via " + method.Name,
	})
	if err != nil {
		return nil, err
	}

	return &WithdrawalReceipt{
		Transaction:    *txn,
		Method:         *method,
		Fee:            fee,
		NetSettlement:  net,
		ProcessingTime: method.ProcessingTime,
	}, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	rec, _, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrAccountNotFound
	}
	account := rec.Account
	return &account, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// GetHistory returns the full ledger in reverse-chronological order.
func (s *Service) GetHistory(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	rec, _, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrAccountNotFound
	}
	history := make([]domain.Transaction, len(rec.Transactions))
	for i, txn := range rec.Transactions {
		history[len(rec.Transactions)-1-i] = txn
	}
	return history, nil
}

// AuditLedger replays the transaction log and compares the fold against
// the materialized balance.
func (s *Service) AuditLedger(ctx context.Context, accountID string) (bool, decimal.Decimal, decimal.Decimal, error) {
	rec, _, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return false, decimal.Zero, decimal.Zero, err
	}
	if rec == nil {
		return false, decimal.Zero, decimal.Zero, ErrAccountNotFound
	}
	computed := ReplayBalance(rec.Transactions)
	return computed.Equal(rec.Account.Balance), rec.Account.Balance, computed, nil
}

// SetStatus is administrative: it is permitted regardless of the current
// account or seller state.
func (s *Service) SetStatus(ctx context.Context, accountID string, status domain.AccountStatus) error {
	switch status {
	case domain.AccountActive, domain.AccountBlocked, domain.AccountExpired:
	default:
		return ErrInvalidStatus
	}

	err := s.withRetry(ctx, func() error {
		rec, version, err := s.accountRepo.Get(ctx, accountID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if rec == nil {
			return backoff.Permanent(ErrAccountNotFound)
		}
		rec.Account.Status = status
		return retryable(s.accountRepo.Save(ctx, rec, version))
	})
	if err != nil {
		zap.L().Error("failed to set account status", zap.String("account_id", accountID), zap.Error(err))
		return err
	}
	zap.L().Info("account status changed", zap.String("account_id", accountID), zap.String("status", string(status)))
	return nil
}

func (s *Service) ListWithdrawalMethods(ctx context.Context) ([]domain.WithdrawalMethod, error) {
	return s.methodRepo.List(ctx)
}
