package usecase

import (
	"github.com/sirupsen/logrus"

	"github.com/sessionbook/ledger/services/ledger"
)

type LedgerUC struct {
	transactionRepo ledger.TransactionRepo
	ledgerGW        ledger.LedgerGW
	logger          *logrus.Logger
}

// NewLedgerUC creates a new ledger usecase instance
func NewLedgerUC(
	transactionRepo ledger.TransactionRepo,
	ledgerGW ledger.LedgerGW,
	logger *logrus.Logger,
) *LedgerUC {
	return &LedgerUC{
		transactionRepo: transactionRepo,
		ledgerGW:        ledgerGW,
		logger:          logger,
	}
}
