// Package config holds the outer-layer configuration. The core packages
// take explicit values and never read the environment themselves.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataFile       string // ledger state file
	AuditFile      string // append-only audit trail
	CurrencySymbol string // display only; the core never formats currency
}

// Load reads an optional .env file and then the environment, falling back
// to defaults matching the original simulator.
func Load() *Config {
	// A missing .env file is fine; the defaults below apply.
	_ = godotenv.Load()

	cfg := &Config{
		DataFile:       "accounts.json",
		AuditFile:      "audit.log",
		CurrencySymbol: "₹",
	}
	if v := os.Getenv("ATM_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("ATM_AUDIT_FILE"); v != "" {
		cfg.AuditFile = v
	}
	if v := os.Getenv("ATM_CURRENCY_SYMBOL"); v != "" {
		cfg.CurrencySymbol = v
	}
	return cfg
}
