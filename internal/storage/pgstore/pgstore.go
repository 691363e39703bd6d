package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/pg"
	"github.com/sellora/sellerwallet/internal/storage"
)

// Store persists records in Postgres. The version column carries the
// compare-and-set: creates insert-if-absent, updates match the expected
// version in the WHERE clause, and zero affected rows means conflict.
type Store struct {
	db pg.Database
}

func New(db pg.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key string) (*storage.Record, error) {
	query := `
        SELECT value, version
        FROM records
        WHERE key = $1
    `
	row := s.db.QueryRow(ctx, query, key)
	var rec storage.Record
	err := row.Scan(&rec.Value, &rec.Version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get record", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &rec, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	var (
		row pgx.Row
	)
	if expectedVersion == 0 {
		query := `
            INSERT INTO records (key, value, version)
            VALUES ($1, $2, 1)
            ON CONFLICT (key) DO NOTHING
            RETURNING version
        `
		row = s.db.QueryRow(ctx, query, key, value)
	} else {
		query := `
            UPDATE records
            SET value = $2, version = version + 1
            WHERE key = $1 AND version = $3
            RETURNING version
        `
		row = s.db.QueryRow(ctx, query, key, value, expectedVersion)
	}

	var version int64
	if err := row.Scan(&version); err != nil {
		if err == pgx.ErrNoRows {
			return 0, storage.ErrVersionConflict
		}
		zap.L().Error("failed to put record", zap.String("key", key), zap.Error(err))
		return 0, err
	}
	return version, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query := `
        DELETE FROM records
        WHERE key = $1
    `
	if _, err := s.db.Exec(ctx, query, key); err != nil {
		zap.L().Error("failed to delete record", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
