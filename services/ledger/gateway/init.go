package gateway

import (
	nsqpkg "github.com/sessionbook/ledger/internal/pkg/nsq"
	"github.com/sessionbook/ledger/services/ledger"
)

// LedgerGW publishes ledger events to NSQ for downstream consumers
type LedgerGW struct {
	producer *nsqpkg.Producer
}

// NewLedgerGW creates a new ledger gateway. A nil producer turns every
// publish into a no-op, used when no NSQD address is configured.
func NewLedgerGW(producer *nsqpkg.Producer) ledger.LedgerGW {
	return &LedgerGW{
		producer: producer,
	}
}
