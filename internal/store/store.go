package store

import (
	"fmt"
	"strconv"

	"github.com/sheikh-saqib/atm-ledger-system/internal/interfaces"
	"github.com/sheikh-saqib/atm-ledger-system/internal/models"
)

// Account numbers are assigned sequentially starting here.
const firstAccountNumber = 1001

// Store is the ledger store: the full mapping of account number → Account,
// loaded from and saved to a Persister wholesale. It performs no business
// validation and no locking of its own; the account service serializes all
// access inside its own critical sections.
type Store struct {
	nextNumber int64
	accounts   map[string]*models.Account
	persist    interfaces.Persister
}

// state is the persisted layout. It round-trips losslessly through
// Save then Load.
type state struct {
	NextNumber int64                      `json:"next_number"`
	Accounts   map[string]*models.Account `json:"accounts"`
}

// New creates an empty store backed by the given persistence provider.
// Call Load before first use to pick up any prior state.
func New(p interfaces.Persister) *Store {
	return &Store{
		nextNumber: firstAccountNumber,
		accounts:   make(map[string]*models.Account),
		persist:    p,
	}
}

// Load reconstructs the mapping from persisted state. When no prior state
// exists the store starts empty with the first account number unassigned.
func (s *Store) Load() error {
	var st state
	found, err := s.persist.Load(&st)
	if err != nil {
		return err
	}
	if !found {
		s.nextNumber = firstAccountNumber
		s.accounts = make(map[string]*models.Account)
		return nil
	}
	if st.NextNumber < firstAccountNumber || st.Accounts == nil {
		return fmt.Errorf("%w: missing next_number or accounts", models.ErrCorruptState)
	}
	s.nextNumber = st.NextNumber
	s.accounts = st.Accounts
	return nil
}

// Save writes the full current mapping to persisted state, replacing
// whatever was there before.
func (s *Store) Save() error {
	return s.persist.Save(state{
		NextNumber: s.nextNumber,
		Accounts:   s.accounts,
	})
}

// Get returns the live account record for the given number.
func (s *Store) Get(number string) (*models.Account, error) {
	a, ok := s.accounts[number]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return a, nil
}

// NextNumber produces a new unique account number. Numbers are never
// reused for the lifetime of the store's backing data.
func (s *Store) NextNumber() string {
	n := s.nextNumber
	s.nextNumber++
	return strconv.FormatInt(n, 10)
}

// Add registers a newly created account under its number.
func (s *Store) Add(a *models.Account) {
	s.accounts[a.Number] = a
}

// Len reports the number of accounts currently held.
func (s *Store) Len() int {
	return len(s.accounts)
}
