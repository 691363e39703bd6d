package statusrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sellora/sellerwallet/internal/domain"
	"github.com/sellora/sellerwallet/internal/storage"
	"github.com/sellora/sellerwallet/internal/storage/memstore"
)

func TestGetAbsentSeller(t *testing.T) {
	repo := New(memstore.New())

	rec, version, err := repo.Get(context.Background(), "seller-1")
	assert.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, int64(0), version)
}

func TestSaveAndGet(t *testing.T) {
	repo := New(memstore.New())
	ctx := context.Background()

	now := time.Now().UTC()
	assert.NoError(t, repo.Save(ctx, &Record{
		SellerID:  "seller-1",
		Status:    domain.SellerActive,
		Comment:   "documents verified",
		UpdatedAt: now,
	}, 0))

	rec, version, err := repo.Get(ctx, "seller-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, "seller-1", rec.SellerID)
	assert.Equal(t, domain.SellerActive, rec.Status)
	assert.Equal(t, "documents verified", rec.Comment)
	assert.True(t, now.Equal(rec.UpdatedAt))
}

func TestSaveStaleVersionConflicts(t *testing.T) {
	repo := New(memstore.New())
	ctx := context.Background()

	rec := &Record{SellerID: "seller-1", Status: domain.SellerPendingReview, UpdatedAt: time.Now()}
	assert.NoError(t, repo.Save(ctx, rec, 0))

	rec.Status = domain.SellerActive
	assert.NoError(t, repo.Save(ctx, rec, 1))

	rec.Status = domain.SellerBlocked
	assert.ErrorIs(t, repo.Save(ctx, rec, 1), storage.ErrVersionConflict)

	loaded, _, err := repo.Get(ctx, "seller-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.SellerActive, loaded.Status)
}
