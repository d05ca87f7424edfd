// Package audit implements the event publisher as a local append-only file:
// one JSON object per line, fsynced after every record.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sheikh-saqib/atm-ledger-system/internal/interfaces"
	"github.com/sheikh-saqib/atm-ledger-system/internal/models"
)

type Publisher struct {
	mu   sync.Mutex
	file *os.File
}

type record struct {
	Topic string `json:"topic"`
	Event any    `json:"event"`
}

// NewPublisher opens (or creates) the audit file in append mode.
func NewPublisher(path string) (*Publisher, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: opening audit file %s: %v", models.ErrPersistence, path, err)
	}
	return &Publisher{file: f}, nil
}

// Publish appends the event as one JSON line and forces it to disk.
func (p *Publisher) Publish(topic string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := json.NewEncoder(p.file).Encode(record{Topic: topic, Event: event}); err != nil {
		return fmt.Errorf("%w: appending audit record: %v", models.ErrPersistence, err)
	}
	return p.file.Sync()
}

func (p *Publisher) Close() error {
	return p.file.Close()
}

// Compile-time check: ensure Publisher implements the EventPublisher interface.
var _ interfaces.EventPublisher = (*Publisher)(nil)
