package campaign

import (
	"context"
	"sync"
	"time"

	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
)

// LedgerEntry is one banked deposit
type LedgerEntry struct {
	Gold int
	Memo string
	At   time.Time
}

// Ledger is the party's treasury. Every surfaced haul lands here with a
// memo naming the delve it came from.
type Ledger struct {
	mu      sync.Mutex
	balance int
	entries []LedgerEntry
}

// NewLedger creates an empty treasury
func NewLedger() *Ledger {
	return &Ledger{}
}

// Deposit banks gold under a memo line
func (l *Ledger) Deposit(ctx context.Context, gold int, memo string) error {
	if gold <= 0 {
		return dlverr.InvalidArgumentf("deposit must be positive, got %d", gold)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += gold
	l.entries = append(l.entries, LedgerEntry{
		Gold: gold,
		Memo: memo,
		At:   time.Now().UTC(),
	})
	return nil
}

// Balance reports the treasury total
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// History returns a copy of every deposit, oldest first
func (l *Ledger) History() []LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
