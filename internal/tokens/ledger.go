package tokens

import "sync"

// Ledger is the narrow contract the bidding engines hold toward the identity
// layer: read a balance, apply a signed delta. The engines guarantee every
// debit is preceded by a balance check, so a balance is never observably
// negative.
type Ledger interface {
	Balance(userID string) int
	Adjust(userID string, delta int)
}

// MemoryLedger is a concurrency-safe in-memory Ledger. Unknown users have a
// balance of 0.
type MemoryLedger struct {
	mu       sync.RWMutex
	balances map[string]int
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[string]int)}
}

// Balance returns the user's current token count, 0 if unknown.
func (l *MemoryLedger) Balance(userID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[userID]
}

// Adjust applies a signed token delta to the user's balance.
func (l *MemoryLedger) Adjust(userID string, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] += delta
}
