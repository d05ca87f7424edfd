// Package atm implements the account service: the business rules around the
// ledger store. Every mutating operation validates its inputs, updates the
// in-memory state together with exactly one history record per affected
// account, and persists the whole store before returning.
package atm

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/atm-ledger-system/internal/interfaces"
	"github.com/sheikh-saqib/atm-ledger-system/internal/models"
	"github.com/sheikh-saqib/atm-ledger-system/internal/models/events"
	"github.com/sheikh-saqib/atm-ledger-system/internal/store"
)

const auditTopic = "transaction_completed"

// Service enforces the business rules around the ledger store.
// A single mutex serializes every operation, so cross-account work
// (transfer) completes atomically with respect to any other caller.
type Service struct {
	mu     sync.Mutex
	store  *store.Store
	events interfaces.EventPublisher // optional audit sink; may be nil
}

// NewService wraps the given store. events may be nil when no audit trail
// is wanted.
func NewService(st *store.Store, events interfaces.EventPublisher) *Service {
	return &Service{
		store:  st,
		events: events,
	}
}

// Create opens a new account with a zero balance and empty history and
// persists the store immediately. It returns the assigned account number.
func (s *Service) Create(pin string) (string, error) {
	if !validPIN(pin) {
		return "", models.ErrInvalidPIN
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := &models.Account{
		Number:  s.store.NextNumber(),
		PIN:     pin,
		Balance: decimal.Zero,
	}
	s.store.Add(a)

	if err := s.store.Save(); err != nil {
		return "", err
	}
	return a.Number, nil
}

// Authenticate succeeds only when the account exists and the stored PIN
// equals the supplied one. There is no session model; the caller is expected
// to authenticate before invoking any mutating operation.
func (s *Service) Authenticate(number, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.store.Get(number)
	if err != nil {
		return err
	}
	if a.PIN != pin {
		return models.ErrAuthentication
	}
	return nil
}

// BalanceOf returns the current balance. No side effects.
func (s *Service) BalanceOf(number string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.store.Get(number)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance, nil
}

// Deposit adds amount to the account, records a deposit transaction and
// persists the store. It returns the new balance.
func (s *Service) Deposit(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, models.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.store.Get(number)
	if err != nil {
		return decimal.Zero, err
	}

	a.Balance = a.Balance.Add(amount)
	tx := appendTx(a, models.TxDeposit, amount, "", time.Now().UTC())

	if err := s.store.Save(); err != nil {
		return decimal.Zero, err
	}
	s.publish(tx, a.Number, "")
	return a.Balance, nil
}

// Withdraw subtracts amount from the account, records a withdrawal
// transaction and persists the store. The balance never goes negative:
// amounts above the current balance fail with ErrInsufficientFunds and
// leave the account untouched.
func (s *Service) Withdraw(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, models.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.store.Get(number)
	if err != nil {
		return decimal.Zero, err
	}
	if a.Balance.LessThan(amount) {
		return decimal.Zero, models.ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	tx := appendTx(a, models.TxWithdrawal, amount, "", time.Now().UTC())

	if err := s.store.Save(); err != nil {
		return decimal.Zero, err
	}
	s.publish(tx, a.Number, "")
	return a.Balance, nil
}

// Transfer moves amount between two distinct existing accounts as a single
// atomic unit: the debit, the credit and both history records happen inside
// one critical section, and the store is persisted once after both updates.
// Any validation failure leaves both accounts untouched.
//
// When the save fails after the in-memory update, the error wraps
// ErrPersistence and the in-memory state stays ahead of durable state; a
// restart would lose the transfer. This window is surfaced to the caller
// rather than masked.
func (s *Service) Transfer(fromNumber, toNumber string, amount decimal.Decimal) error {
	if fromNumber == toNumber {
		return models.ErrInvalidTransfer
	}
	if !amount.IsPositive() {
		return models.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.store.Get(fromNumber)
	if err != nil {
		return fmt.Errorf("source %s: %w", fromNumber, err)
	}
	to, err := s.store.Get(toNumber)
	if err != nil {
		return fmt.Errorf("destination %s: %w", toNumber, err)
	}
	if from.Balance.LessThan(amount) {
		return models.ErrInsufficientFunds
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)

	// One timestamp for both legs keeps the two histories consistent.
	now := time.Now().UTC()
	tx := appendTx(from, models.TxTransferOut, amount, to.Number, now)
	appendTx(to, models.TxTransferIn, amount, from.Number, now)

	if err := s.store.Save(); err != nil {
		return err
	}
	s.publish(tx, from.Number, to.Number)
	return nil
}

// History returns a copy of the account's transaction sequence in original
// append order, oldest first.
func (s *Service) History(number string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.store.Get(number)
	if err != nil {
		return nil, err
	}
	out := make([]models.Transaction, len(a.History))
	copy(out, a.History)
	return out, nil
}

// appendTx appends one transaction record to the account's history and
// returns it.
func appendTx(a *models.Account, kind models.TxKind, amount decimal.Decimal, counterparty string, at time.Time) models.Transaction {
	tx := models.Transaction{
		ID:           uuid.New().String(),
		Kind:         kind,
		Amount:       amount,
		Counterparty: counterparty,
		Timestamp:    at,
	}
	a.History = append(a.History, tx)
	return tx
}

// publish emits the audit event for a completed operation. The audit trail
// is best-effort: the persisted ledger, not the trail, is the source of
// truth, so a failed append never rolls back a completed operation.
func (s *Service) publish(tx models.Transaction, account, counterparty string) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(auditTopic, events.TransactionCompleted{
		TransactionID: tx.ID,
		Kind:          string(tx.Kind),
		Account:       account,
		Counterparty:  counterparty,
		Amount:        tx.Amount,
		OccurredAt:    tx.Timestamp,
	})
}

// validPIN reports whether pin is exactly 4 ASCII digits.
func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
