package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sessionbook/ledger/internal/pkg/models"
	"github.com/sessionbook/ledger/internal/pkg/session"
	"github.com/sessionbook/ledger/services/ledger"
)

// CreateTransaction persists a new ledger entry. The request carries a
// positive magnitude plus a type; the stored amount is sign-adjusted here,
// credit positive and debit negative. When sessionID is empty a fresh token
// is issued and flagged so the handler attaches the cookie.
func (uc *LedgerUC) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest, sessionID string) (*ledger.CreateResult, error) {
	newSession := false
	if sessionID == "" {
		sessionID = session.Issue()
		newSession = true
	}

	amount := *req.Amount
	if req.Type == models.TransactionTypeDebit {
		amount = -amount
	}

	transaction := &models.Transaction{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Amount:    amount,
		SessionID: &sessionID,
	}

	if err := uc.transactionRepo.Insert(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.publishCreated(ctx, transaction)

	return &ledger.CreateResult{
		Transaction: transaction,
		SessionID:   sessionID,
		NewSession:  newSession,
	}, nil
}

// ListTransactions returns the session's ledger in insertion order
func (uc *LedgerUC) ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	return uc.transactionRepo.ListBySession(ctx, sessionID)
}

// GetTransaction returns a single transaction scoped to the session
func (uc *LedgerUC) GetTransaction(ctx context.Context, id string, sessionID string) (*models.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id, sessionID)
}

// GetSummary returns the session's running balance
func (uc *LedgerUC) GetSummary(ctx context.Context, sessionID string) (float64, error) {
	return uc.transactionRepo.SumBySession(ctx, sessionID)
}

// ListAllTransactions returns every transaction across all sessions.
// Callers must keep this behind the operator gate.
func (uc *LedgerUC) ListAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	return uc.transactionRepo.ListAll(ctx)
}

// publishCreated emits the transaction.created event. Publication is best
// effort: a broker failure never fails the client request.
func (uc *LedgerUC) publishCreated(ctx context.Context, transaction *models.Transaction) {
	sessionID := ""
	if transaction.SessionID != nil {
		sessionID = *transaction.SessionID
	}

	event := &models.TransactionCreatedEvent{
		ID:        transaction.ID,
		Title:     transaction.Title,
		Amount:    transaction.Amount,
		SessionID: sessionID,
		CreatedAt: transaction.CreatedAt,
	}

	if err := uc.ledgerGW.PublishTransactionCreated(ctx, event); err != nil {
		uc.logger.WithFields(logrus.Fields{
			"transaction_id": transaction.ID,
		}).WithError(err).Warn("Failed to publish transaction.created event")
	}
}
