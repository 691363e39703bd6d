package methodrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/domain"
	"github.com/sellora/sellerwallet/internal/storage"
)

const methodsKey = "withdrawal-methods"

var ErrMethodNotFound = errors.New("withdrawal method not found")

// Repository serves withdrawal-method reference data. The ledger never
// mutates it; Seed installs the defaults once per store.
type Repository struct {
	store storage.Store
}

func New(store storage.Store) *Repository {
	return &Repository{store: store}
}

func defaults() []domain.WithdrawalMethod {
	return []domain.WithdrawalMethod{
		{ID: "bank_transfer", Name: "Bank Transfer", FeePercent: decimal.NewFromFloat(0.5), ProcessingTime: "1-3 business days"},
		{ID: "card_payout", Name: "Card Payout", FeePercent: decimal.NewFromFloat(1.5), ProcessingTime: "up to 24 hours"},
		{ID: "e_wallet", Name: "E-Wallet", FeePercent: decimal.NewFromInt(1), ProcessingTime: "instant"},
	}
}

// Seed writes the default methods unless the record already exists.
func (r *Repository) Seed(ctx context.Context) error {
	value, err := json.Marshal(defaults())
	if err != nil {
		return fmt.Errorf("marshal withdrawal methods: %w", err)
	}
	_, err = r.store.Put(ctx, methodsKey, value, 0)
	if errors.Is(err, storage.ErrVersionConflict) {
		return nil
	}
	return err
}

func (r *Repository) List(ctx context.Context) ([]domain.WithdrawalMethod, error) {
	raw, err := r.store.Get(ctx, methodsKey)
	if err != nil {
		zap.L().Error("failed to get withdrawal methods", zap.Error(err))
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var methods []domain.WithdrawalMethod
	if err := json.Unmarshal(raw.Value, &methods); err != nil {
		return nil, fmt.Errorf("corrupt withdrawal methods record: %w", err)
	}
	return methods, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.WithdrawalMethod, error) {
	methods, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range methods {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, ErrMethodNotFound
}
