package ledger

import (
	"context"

	"github.com/sessionbook/ledger/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sessionbook/ledger/services/ledger LedgerGW

// LedgerGW defines the outbound gateway for ledger events
type LedgerGW interface {
	PublishTransactionCreated(ctx context.Context, event *models.TransactionCreatedEvent) error
}
