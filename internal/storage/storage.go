package storage

import (
	"context"
	"errors"
)

// Record is a stored value together with the version that guards it.
// Versions start at 1 and increase by one on every successful Put.
type Record struct {
	Value   []byte
	Version int64
}

var (
	// ErrVersionConflict is returned by Put when the stored version no
	// longer matches the expected one, or when a create races an
	// existing record. Callers re-run their read-compute-write cycle.
	ErrVersionConflict = errors.New("storage: version conflict")
)

// Store is the durable key-value contract the ledger persists through.
// It offers no transactions beyond a per-key compare-and-set; every
// multi-step mutation must be designed around that.
type Store interface {
	// Get returns the record for key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) (*Record, error)

	// Put writes value under key. expectedVersion 0 creates the record
	// and fails with ErrVersionConflict if it already exists; a positive
	// expectedVersion updates and fails if the stored version differs.
	// Returns the new version.
	Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
