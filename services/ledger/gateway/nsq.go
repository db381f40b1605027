package gateway

import (
	"context"

	"github.com/sessionbook/ledger/internal/pkg/models"
)

const topicTransactionCreated = "transaction.created"

// PublishTransactionCreated publishes a transaction.created event
func (g *LedgerGW) PublishTransactionCreated(_ context.Context, event *models.TransactionCreatedEvent) error {
	if g.producer == nil {
		return nil
	}

	return g.producer.Publish(topicTransactionCreated, event)
}
