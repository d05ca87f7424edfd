package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readRecords(t *testing.T, path string) []record {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening audit file: %v", err)
	}
	defer f.Close()

	var out []record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("invalid audit line %q: %v", sc.Text(), err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scanning audit file: %v", err)
	}
	return out
}

func TestPublishAppendsOneLinePerEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	p, err := NewPublisher(path)
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	defer p.Close()

	if err := p.Publish("transaction_completed", map[string]string{"kind": "deposit"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := p.Publish("transaction_completed", map[string]string{"kind": "withdrawal"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	records := readRecords(t, path)
	if len(records) != 2 {
		t.Fatalf("audit file has %d records, want 2", len(records))
	}
	for _, r := range records {
		if r.Topic != "transaction_completed" {
			t.Fatalf("record topic = %q", r.Topic)
		}
	}
}

func TestReopenedPublisherAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	p, err := NewPublisher(path)
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	if err := p.Publish("transaction_completed", "first"); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	p, err = NewPublisher(path)
	if err != nil {
		t.Fatalf("reopening publisher: %v", err)
	}
	defer p.Close()
	if err := p.Publish("transaction_completed", "second"); err != nil {
		t.Fatalf("publish after reopen: %v", err)
	}

	if records := readRecords(t, path); len(records) != 2 {
		t.Fatalf("audit file has %d records after reopen, want 2", len(records))
	}
}
