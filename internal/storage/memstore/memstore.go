package memstore

import (
	"context"
	"sync"

	"github.com/sellora/sellerwallet/internal/storage"
)

type record struct {
	value   []byte
	version int64
}

// Store is an in-memory storage.Store used in tests and single-node
// development runs. The mutex makes each Put a true compare-and-set, so
// concurrent writers observe the same conflict semantics as the
// Postgres-backed store.
type Store struct {
	mu      sync.Mutex
	records map[string]record
}

func New() *Store {
	return &Store{records: make(map[string]record)}
}

func (s *Store) Get(_ context.Context, key string) (*storage.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	value := make([]byte, len(rec.value))
	copy(value, rec.value)
	return &storage.Record{Value: value, Version: rec.version}, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if expectedVersion == 0 {
		if ok {
			return 0, storage.ErrVersionConflict
		}
	} else if !ok || rec.version != expectedVersion {
		return 0, storage.ErrVersionConflict
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	next := rec.version + 1
	s.records[key] = record{value: stored, version: next}
	return next, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
