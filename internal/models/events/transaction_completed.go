package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCompleted is appended to the audit trail after every completed
// balance-changing operation. For transfers, Account is the source and
// Counterparty the destination; the single event covers both legs.
type TransactionCompleted struct {
	TransactionID string          `json:"transaction_id"`
	Kind          string          `json:"kind"`
	Account       string          `json:"account"`
	Counterparty  string          `json:"counterparty,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
