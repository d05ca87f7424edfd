package models

import "errors"

// Domain errors. The service and storage layers return these unrecovered;
// the CLI maps them to human-readable messages and keeps the session alive.
var (
	// ErrInvalidPIN means the supplied PIN is not exactly 4 digits.
	ErrInvalidPIN = errors.New("pin must be exactly 4 digits")

	// ErrAccountNotFound means no account exists under the given number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAuthentication means the account exists but the PIN does not match.
	ErrAuthentication = errors.New("invalid pin")

	// ErrInvalidAmount means the amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds means the amount exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTransfer means source and destination are the same account.
	ErrInvalidTransfer = errors.New("cannot transfer to the same account")

	// ErrCorruptState means persisted state exists but is structurally invalid.
	ErrCorruptState = errors.New("persisted state is corrupt")

	// ErrPersistence means reading or writing persisted state failed.
	ErrPersistence = errors.New("persistence failure")
)
