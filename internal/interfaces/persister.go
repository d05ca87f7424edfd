package interfaces

// Persister is the key-value persistence provider backing the ledger store.
// The store hands it the whole state on every save and reads it back
// wholesale on load; there is no incremental or append format.
type Persister interface {
	// Load decodes previously saved state into v. found reports whether any
	// prior state existed; a missing state is not an error.
	Load(v any) (found bool, err error)

	// Save overwrites the prior persisted state with v.
	Save(v any) error
}
