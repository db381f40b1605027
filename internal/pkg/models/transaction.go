package models

import (
	"time"
)

// Transaction types supported by the ledger
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// Transaction represents a single ledger entry. Amount is stored signed:
// positive for credits, negative for debits. SessionID partitions entries
// into per-session ledgers and is nil only for rows created before a
// session cookie existed.
type Transaction struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	SessionID *string   `json:"session_id" db:"session_id"`
}

// CreateTransactionRequest is the POST /transactions body. Amount is the
// positive magnitude; Type carries the direction.
type CreateTransactionRequest struct {
	Title  string   `json:"title"`
	Amount *float64 `json:"amount"`
	Type   string   `json:"type"`
}

// TransactionListResponse wraps list results
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// SummaryResponse carries a session's running balance
type SummaryResponse struct {
	Total float64 `json:"total"`
}

// TransactionCreatedEvent is published to NSQ after a successful insert
type TransactionCreatedEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}
