package statusrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/domain"
	"github.com/sellora/sellerwallet/internal/storage"
)

const statusKeyPrefix = "status:"

// Record is the durable moderation status of a seller. The live status
// channel is best-effort; this record is what gates ledger mutations.
type Record struct {
	SellerID  string              `json:"seller_id"`
	Status    domain.SellerStatus `json:"status"`
	Comment   string              `json:"comment,omitempty"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type Repository struct {
	store storage.Store
}

func New(store storage.Store) *Repository {
	return &Repository{store: store}
}

func statusKey(sellerID string) string {
	return statusKeyPrefix + sellerID
}

// Get returns (nil, 0, nil) for a seller with no recorded status; callers
// treat that as pending_review.
func (r *Repository) Get(ctx context.Context, sellerID string) (*Record, int64, error) {
	raw, err := r.store.Get(ctx, statusKey(sellerID))
	if err != nil {
		zap.L().Error("failed to get seller status", zap.String("seller_id", sellerID), zap.Error(err))
		return nil, 0, err
	}
	if raw == nil {
		return nil, 0, nil
	}
	var rec Record
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return nil, 0, fmt.Errorf("corrupt status record %s: %w", sellerID, err)
	}
	return &rec, raw.Version, nil
}

func (r *Repository) Save(ctx context.Context, rec *Record, version int64) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal status record: %w", err)
	}
	if _, err := r.store.Put(ctx, statusKey(rec.SellerID), value, version); err != nil {
		return err
	}
	return nil
}
