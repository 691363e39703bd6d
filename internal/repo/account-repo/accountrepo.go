package accountrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/domain"
	"github.com/sellora/sellerwallet/internal/storage"
)

const (
	accountKeyPrefix = "account:"
	cardIndexKey     = "cards"
	accountIndexKey  = "accounts"
)

type Repository struct {
	store storage.Store
}

func New(store storage.Store) *Repository {
	return &Repository{store: store}
}

func accountKey(accountID string) string {
	return accountKeyPrefix + accountID
}

// Get returns the record and the version to pass back into Save, or
// (nil, 0, nil) when the account does not exist.
func (r *Repository) Get(ctx context.Context, accountID string) (*domain.AccountRecord, int64, error) {
	raw, err := r.store.Get(ctx, accountKey(accountID))
	if err != nil {
		zap.L().Error("failed to get account record", zap.String("account_id", accountID), zap.Error(err))
		return nil, 0, err
	}
	if raw == nil {
		return nil, 0, nil
	}
	var rec domain.AccountRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return nil, 0, fmt.Errorf("corrupt account record %s: %w", accountID, err)
	}
	return &rec, raw.Version, nil
}

// Create writes a brand-new record; storage.ErrVersionConflict means the
// account already exists.
func (r *Repository) Create(ctx context.Context, rec *domain.AccountRecord) error {
	return r.put(ctx, rec, 0)
}

// Save replaces the record if the stored version still matches.
func (r *Repository) Save(ctx context.Context, rec *domain.AccountRecord, version int64) error {
	return r.put(ctx, rec, version)
}

func (r *Repository) put(ctx context.Context, rec *domain.AccountRecord, version int64) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal account record: %w", err)
	}
	if _, err := r.store.Put(ctx, accountKey(rec.Account.AccountID), value, version); err != nil {
		return err
	}
	return nil
}

// CardNumbers returns every card number ever issued, with the version of
// the index record. Uniqueness checks run against this full durable set,
// never a cached one.
func (r *Repository) CardNumbers(ctx context.Context) (map[string]struct{}, int64, error) {
	raw, err := r.store.Get(ctx, cardIndexKey)
	if err != nil {
		zap.L().Error("failed to get card index", zap.Error(err))
		return nil, 0, err
	}
	numbers := make(map[string]struct{})
	if raw == nil {
		return numbers, 0, nil
	}
	var list []string
	if err := json.Unmarshal(raw.Value, &list); err != nil {
		return nil, 0, fmt.Errorf("corrupt card index: %w", err)
	}
	for _, n := range list {
		numbers[n] = struct{}{}
	}
	return numbers, raw.Version, nil
}

// ReserveCardNumber appends number to the issued set, guarded by the
// version obtained from CardNumbers. A conflict means another session
// issued a card in between; the caller re-reads and regenerates.
func (r *Repository) ReserveCardNumber(ctx context.Context, numbers map[string]struct{}, number string, version int64) error {
	list := make([]string, 0, len(numbers)+1)
	for n := range numbers {
		list = append(list, n)
	}
	list = append(list, number)
	value, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal card index: %w", err)
	}
	if _, err := r.store.Put(ctx, cardIndexKey, value, version); err != nil {
		return err
	}
	return nil
}

// AccountIDs lists all issued accounts, for administrative sweeps.
func (r *Repository) AccountIDs(ctx context.Context) ([]string, int64, error) {
	raw, err := r.store.Get(ctx, accountIndexKey)
	if err != nil {
		zap.L().Error("failed to get account index", zap.Error(err))
		return nil, 0, err
	}
	if raw == nil {
		return nil, 0, nil
	}
	var ids []string
	if err := json.Unmarshal(raw.Value, &ids); err != nil {
		return nil, 0, fmt.Errorf("corrupt account index: %w", err)
	}
	return ids, raw.Version, nil
}

// RegisterAccountID adds the id to the account index, guarded by version.
func (r *Repository) RegisterAccountID(ctx context.Context, ids []string, id string, version int64) error {
	ids = append(ids, id)
	value, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal account index: %w", err)
	}
	if _, err := r.store.Put(ctx, accountIndexKey, value, version); err != nil {
		return err
	}
	return nil
}
