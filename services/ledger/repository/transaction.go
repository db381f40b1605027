package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sessionbook/ledger/internal/pkg/models"
	"github.com/sessionbook/ledger/services/ledger"
)

const summaryCacheTTL = 5 * time.Minute

// Insert persists a transaction. The store assigns created_at, returned via
// RETURNING so the caller gets the full record back.
func (r *TransactionRepository) Insert(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, title, amount, session_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query, tx.ID, tx.Title, tx.Amount, tx.SessionID).Scan(&tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if tx.SessionID != nil {
		r.invalidateSummary(ctx, *tx.SessionID)
	}

	return nil
}

// ListBySession returns all transactions for a session in insertion order
func (r *TransactionRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	query := `
		SELECT id, title, amount, created_at, session_id
		FROM transactions
		WHERE session_id = $1
		ORDER BY created_at ASC
	`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// ListAll returns every transaction regardless of session. Privileged
// operation: it bypasses session isolation and must stay behind the
// operator gate.
func (r *TransactionRepository) ListAll(ctx context.Context) ([]models.Transaction, error) {
	query := `
		SELECT id, title, amount, created_at, session_id
		FROM transactions
		ORDER BY created_at ASC
	`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query); err != nil {
		return nil, fmt.Errorf("failed to list all transactions: %w", err)
	}

	return transactions, nil
}

// GetByID returns the transaction matching both id and session. A row owned
// by another session yields ErrTransactionNotFound, same as a missing id.
func (r *TransactionRepository) GetByID(ctx context.Context, id string, sessionID string) (*models.Transaction, error) {
	query := `
		SELECT id, title, amount, created_at, session_id
		FROM transactions
		WHERE id = $1 AND session_id = $2
	`

	var transaction models.Transaction
	err := r.db.GetContext(ctx, &transaction, query, id, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &transaction, nil
}

// SumBySession returns the signed sum of a session's amounts. An empty
// session sums to 0, not null. The result is cached per session and the
// cache is invalidated on insert; cache failures fall through to SQL.
func (r *TransactionRepository) SumBySession(ctx context.Context, sessionID string) (float64, error) {
	if total, ok := r.cachedSummary(ctx, sessionID); ok {
		return total, nil
	}

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE session_id = $1
	`

	var total float64
	if err := r.db.GetContext(ctx, &total, query, sessionID); err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	r.storeSummary(ctx, sessionID, total)

	return total, nil
}

func summaryCacheKey(sessionID string) string {
	return "ledger:summary:" + sessionID
}

func (r *TransactionRepository) cachedSummary(ctx context.Context, sessionID string) (float64, bool) {
	if r.redisClient == nil {
		return 0, false
	}

	val, err := r.redisClient.Get(ctx, summaryCacheKey(sessionID))
	if err != nil {
		return 0, false
	}

	total, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}

	return total, true
}

func (r *TransactionRepository) storeSummary(ctx context.Context, sessionID string, total float64) {
	if r.redisClient == nil {
		return
	}

	// Best effort: a failed write just means the next read hits SQL again
	_ = r.redisClient.Set(ctx, summaryCacheKey(sessionID), strconv.FormatFloat(total, 'f', -1, 64), summaryCacheTTL)
}

func (r *TransactionRepository) invalidateSummary(ctx context.Context, sessionID string) {
	if r.redisClient == nil {
		return
	}

	_ = r.redisClient.Delete(ctx, summaryCacheKey(sessionID))
}
