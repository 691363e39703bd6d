package pgstore

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/sellora/sellerwallet/internal/storage"
)

func NewMock(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	store := New(mockDB)
	return store, mockDB
}

func TestStore_Get(t *testing.T) {
	store, mock := NewMock(t)
	defer mock.Close()

	tests := []struct {
		name      string
		key       string
		mockSetup func()
		expectErr bool
		result    *storage.Record
	}{
		{
			name: "Existing key returns value and version",
			key:  "account:seller-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"value", "version"}).
					AddRow([]byte(`{"balance":"10"}`), int64(3))
				mock.ExpectQuery("SELECT value, version").
					WithArgs("account:seller-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    &storage.Record{Value: []byte(`{"balance":"10"}`), Version: 3},
		},
		{
			name: "Absent key returns nil",
			key:  "account:ghost",
			mockSetup: func() {
				mock.ExpectQuery("SELECT value, version").
					WithArgs("account:ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			key:  "account:seller-1",
			mockSetup: func() {
				mock.ExpectQuery("SELECT value, version").
					WithArgs("account:seller-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rec, err := store.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, rec)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_PutCreate(t *testing.T) {
	store, mock := NewMock(t)
	defer mock.Close()

	tests := []struct {
		name            string
		mockSetup       func()
		expectedVersion int64
		expectedErr     error
	}{
		{
			name: "Fresh key inserts at version 1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"version"}).AddRow(int64(1))
				mock.ExpectQuery("INSERT INTO records").
					WithArgs("k", []byte("v")).
					WillReturnRows(rows)
			},
			expectedVersion: 1,
		},
		{
			name: "Existing key conflicts",
			mockSetup: func() {
				mock.ExpectQuery("INSERT INTO records").
					WithArgs("k", []byte("v")).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: storage.ErrVersionConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			version, err := store.Put(context.Background(), "k", []byte("v"), 0)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedVersion, version)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_PutUpdate(t *testing.T) {
	store, mock := NewMock(t)
	defer mock.Close()

	tests := []struct {
		name            string
		expectedVersion int64
		mockSetup       func()
		resultVersion   int64
		expectedErr     error
	}{
		{
			name:            "Matching version bumps",
			expectedVersion: 3,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"version"}).AddRow(int64(4))
				mock.ExpectQuery("UPDATE records").
					WithArgs("k", []byte("v"), int64(3)).
					WillReturnRows(rows)
			},
			resultVersion: 4,
		},
		{
			name:            "Stale version conflicts",
			expectedVersion: 2,
			mockSetup: func() {
				mock.ExpectQuery("UPDATE records").
					WithArgs("k", []byte("v"), int64(2)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: storage.ErrVersionConflict,
		},
		{
			name:            "Database error",
			expectedVersion: 3,
			mockSetup: func() {
				mock.ExpectQuery("UPDATE records").
					WithArgs("k", []byte("v"), int64(3)).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			version, err := store.Put(context.Background(), "k", []byte("v"), tt.expectedVersion)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.resultVersion != 0:
				assert.NoError(t, err)
				assert.Equal(t, tt.resultVersion, version)
			default:
				assert.Error(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_Delete(t *testing.T) {
	store, mock := NewMock(t)
	defer mock.Close()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Existing key deleted",
			mockSetup: func() {
				mock.ExpectExec("DELETE FROM records").
					WithArgs("k").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("DELETE FROM records").
					WithArgs("k").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := store.Delete(context.Background(), "k")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
