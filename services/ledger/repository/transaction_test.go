package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionbook/ledger/internal/pkg/models"
	"github.com/sessionbook/ledger/services/ledger"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepository, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Create repo without Redis: cache paths are skipped when the client is nil
	repo := &TransactionRepository{
		db: sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func strPtr(s string) *string {
	return &s
}

func TestInsert(t *testing.T) {
	sessionID := uuid.NewString()

	testCases := []struct {
		name        string
		transaction *models.Transaction
		mockSetup   func(mock sqlmock.Sqlmock)
		assertFunc  func(t *testing.T, tx *models.Transaction, err error)
	}{
		{
			name: "Success - Credit Amount Stored As Given",
			transaction: &models.Transaction{
				ID:        uuid.NewString(),
				Title:     "New Transaction",
				Amount:    5000,
				SessionID: strPtr(sessionID),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				createdAt := time.Now()
				rows := sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt)
				mock.ExpectQuery("^INSERT INTO transactions").
					WithArgs(sqlmock.AnyArg(), "New Transaction", 5000.0, sessionID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.NoError(t, err)
				assert.False(t, tx.CreatedAt.IsZero())
			},
		},
		{
			name: "Success - Debit Amount Stored As Given",
			transaction: &models.Transaction{
				ID:        uuid.NewString(),
				Title:     "Groceries",
				Amount:    -250,
				SessionID: strPtr(sessionID),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())
				mock.ExpectQuery("^INSERT INTO transactions").
					WithArgs(sqlmock.AnyArg(), "Groceries", -250.0, sessionID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Failure - Constraint Violation",
			transaction: &models.Transaction{
				ID:        uuid.NewString(),
				Title:     "Duplicate",
				Amount:    10,
				SessionID: strPtr(sessionID),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^INSERT INTO transactions").
					WillReturnError(errors.New("duplicate key value violates unique constraint"))
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to insert transaction")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.Insert(context.Background(), tc.transaction)
			tc.assertFunc(t, tc.transaction, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListBySession(t *testing.T) {
	sessionID := uuid.NewString()

	t.Run("Success - Returns Session Transactions In Insertion Order", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		first := uuid.NewString()
		second := uuid.NewString()
		rows := sqlmock.NewRows([]string{"id", "title", "amount", "created_at", "session_id"}).
			AddRow(first, "First Transaction", 123.0, time.Now().Add(-time.Minute), sessionID).
			AddRow(second, "Second Transaction", 456.0, time.Now(), sessionID)
		mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE session_id").
			WithArgs(sessionID).
			WillReturnRows(rows)

		transactions, err := repo.ListBySession(context.Background(), sessionID)

		assert.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, first, transactions[0].ID)
		assert.Equal(t, second, transactions[1].ID)
		assert.Equal(t, sessionID, *transactions[0].SessionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Empty Session Yields Empty Slice", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "title", "amount", "created_at", "session_id"})
		mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE session_id").
			WithArgs(sessionID).
			WillReturnRows(rows)

		transactions, err := repo.ListBySession(context.Background(), sessionID)

		assert.NoError(t, err)
		assert.NotNil(t, transactions)
		assert.Empty(t, transactions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query Error", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE session_id").
			WithArgs(sessionID).
			WillReturnError(errors.New("connection refused"))

		transactions, err := repo.ListBySession(context.Background(), sessionID)

		assert.Error(t, err)
		assert.Nil(t, transactions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListAll(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	sessionA := uuid.NewString()
	sessionB := uuid.NewString()
	rows := sqlmock.NewRows([]string{"id", "title", "amount", "created_at", "session_id"}).
		AddRow(uuid.NewString(), "Session A Entry", 100.0, time.Now(), sessionA).
		AddRow(uuid.NewString(), "Session B Entry", -40.0, time.Now(), sessionB).
		AddRow(uuid.NewString(), "Orphan Entry", 7.0, time.Now(), nil)
	mock.ExpectQuery("^SELECT (.+) FROM transactions ORDER BY created_at").
		WillReturnRows(rows)

	transactions, err := repo.ListAll(context.Background())

	assert.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Nil(t, transactions[2].SessionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	sessionID := uuid.NewString()
	transactionID := uuid.NewString()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, tx *models.Transaction, err error)
	}{
		{
			name: "Success - Matching Id And Session",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "amount", "created_at", "session_id"}).
					AddRow(transactionID, "New Transaction", 5000.0, time.Now(), sessionID)
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(transactionID, sessionID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.NoError(t, err)
				require.NotNil(t, tx)
				assert.Equal(t, transactionID, tx.ID)
				assert.Equal(t, 5000.0, tx.Amount)
			},
		},
		{
			name: "NotFound - No Matching Row",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "title", "amount", "created_at", "session_id"})
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(transactionID, sessionID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.ErrorIs(t, err, ledger.ErrTransactionNotFound)
				assert.Nil(t, tx)
			},
		},
		{
			name: "Failure - Query Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM transactions WHERE id").
					WithArgs(transactionID, sessionID).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, tx *models.Transaction, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ledger.ErrTransactionNotFound)
				assert.Nil(t, tx)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			tx, err := repo.GetByID(context.Background(), transactionID, sessionID)
			tc.assertFunc(t, tx, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSumBySession(t *testing.T) {
	sessionID := uuid.NewString()

	t.Run("Success - Signed Sum", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(579.0)
		mock.ExpectQuery("^SELECT COALESCE").
			WithArgs(sessionID).
			WillReturnRows(rows)

		total, err := repo.SumBySession(context.Background(), sessionID)

		assert.NoError(t, err)
		assert.Equal(t, 579.0, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Empty Session Sums To Zero", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0)
		mock.ExpectQuery("^SELECT COALESCE").
			WithArgs(sessionID).
			WillReturnRows(rows)

		total, err := repo.SumBySession(context.Background(), sessionID)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query Error", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT COALESCE").
			WithArgs(sessionID).
			WillReturnError(errors.New("connection refused"))

		total, err := repo.SumBySession(context.Background(), sessionID)

		assert.Error(t, err)
		assert.Equal(t, 0.0, total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
