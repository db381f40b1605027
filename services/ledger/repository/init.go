package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/sessionbook/ledger/internal/pkg/database"
	"github.com/sessionbook/ledger/services/ledger"
)

// TransactionRepository implements the TransactionRepo interface backed by
// PostgreSQL, with an optional Redis cache for session summaries
type TransactionRepository struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewTransactionRepository creates a new transaction repository.
// redisClient may be nil; the summary cache is then skipped entirely.
func NewTransactionRepository(db *sqlx.DB, redisClient *database.RedisClient) ledger.TransactionRepo {
	return &TransactionRepository{
		db:          db,
		redisClient: redisClient,
	}
}
