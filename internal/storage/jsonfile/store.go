// Package jsonfile persists the ledger state as a single JSON file.
// Writes are atomic: the state is written to a temporary file first and then
// renamed over the real one, so an interrupted write never corrupts the
// previous state.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sheikh-saqib/atm-ledger-system/internal/interfaces"
	"github.com/sheikh-saqib/atm-ledger-system/internal/models"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load decodes the file at the store's path into v. A missing file means no
// prior state and is reported as found=false, not as an error.
func (s *Store) Load(v any) (bool, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: opening %s: %v", models.ErrPersistence, s.path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return false, fmt.Errorf("%w: decoding %s: %v", models.ErrCorruptState, s.path, err)
	}
	return true, nil
}

// Save writes v as indented JSON to a temporary file and atomically renames
// it over the store's path.
func (s *Store) Save(v any) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", models.ErrPersistence, tmp, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("%w: encoding %s: %v", models.ErrPersistence, tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", models.ErrPersistence, tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", models.ErrPersistence, s.path, err)
	}
	return nil
}

// Compile-time check: ensure Store implements the Persister interface.
var _ interfaces.Persister = (*Store)(nil)
