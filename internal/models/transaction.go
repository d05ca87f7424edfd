package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxKind classifies a transaction record.
type TxKind string

const (
	TxDeposit     TxKind = "deposit"
	TxWithdrawal  TxKind = "withdrawal"
	TxTransferOut TxKind = "transfer-out"
	TxTransferIn  TxKind = "transfer-in"
)

// Transaction is an immutable record of a single balance-changing event.
// Records are only ever appended to an account's history, oldest first.
type Transaction struct {
	ID           string          `json:"id"`
	Kind         TxKind          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Counterparty string          `json:"counterparty,omitempty"` // transfers only: the other account's number
	Timestamp    time.Time       `json:"timestamp"`
}
