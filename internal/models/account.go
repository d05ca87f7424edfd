package models

import "github.com/shopspring/decimal"

// Account is a uniquely numbered balance-holding record.
// PIN is stored exactly as provided at creation; this simulation keeps the
// original plaintext-credential behaviour and does not hash it.
type Account struct {
	Number  string          `json:"number"`
	PIN     string          `json:"pin"`
	Balance decimal.Decimal `json:"balance"`
	History []Transaction   `json:"history"`
}
