package traitgen

import "sync"

// Ledger records the filtered DNA of every edition produced in one run.
// It only grows during a run and is cleared by Reset.
//
// Ledger is safe for concurrent use; TryAdd makes check-and-insert a
// single step so parallel workers cannot commit the same DNA twice.
type Ledger struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]struct{})}
}

// IsUnique reports whether the filtered form of dna is absent.
func (l *Ledger) IsUnique(dna DNA) bool {
	key := dna.Filtered()
	l.mu.Lock()
	defer l.mu.Unlock()
	_, dup := l.seen[key]
	return !dup
}

// Add records dna.
func (l *Ledger) Add(dna DNA) {
	key := dna.Filtered()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen[key] = struct{}{}
}

// TryAdd records dna if it is unique and reports whether it did.
func (l *Ledger) TryAdd(dna DNA) bool {
	key := dna.Filtered()
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, dup := l.seen[key]; dup {
		return false
	}
	l.seen[key] = struct{}{}
	return true
}

// Len returns the number of recorded DNA values.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}

// Reset forgets every recorded DNA.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.seen)
}
