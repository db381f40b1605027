package ledger

import (
	"context"

	"github.com/sessionbook/ledger/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sessionbook/ledger/services/ledger TransactionRepo

// TransactionRepo defines the interface for transaction store operations.
// GetByID matches on both id and session so a hit under another session is
// indistinguishable from a missing row.
type TransactionRepo interface {
	Insert(ctx context.Context, tx *models.Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	GetByID(ctx context.Context, id string, sessionID string) (*models.Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (float64, error)
}
