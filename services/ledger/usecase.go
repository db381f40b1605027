package ledger

import (
	"context"

	"github.com/sessionbook/ledger/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sessionbook/ledger/services/ledger LedgerUC

// CreateResult carries the created transaction plus the session token the
// caller must attach as a cookie when one was freshly issued
type CreateResult struct {
	Transaction *models.Transaction
	SessionID   string
	NewSession  bool
}

// LedgerUC represents the ledger usecase interface
type LedgerUC interface {
	CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest, sessionID string) (*CreateResult, error)
	ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string, sessionID string) (*models.Transaction, error)
	GetSummary(ctx context.Context, sessionID string) (float64, error)
	ListAllTransactions(ctx context.Context) ([]models.Transaction, error)
}
