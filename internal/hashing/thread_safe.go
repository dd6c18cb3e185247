package hashing

import "sync"

// LockedTable wraps Table with mutex protection so several searches, each on
// its own game state, can share one cache. Each Store replaces the whole
// entry for its (hash, depth) key; readers never observe a partial entry.
type LockedTable struct {
	table *Table
	mu    sync.Mutex
}

// NewLockedTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewLockedTable(maxCapacity int) *LockedTable {
	return &LockedTable{
		table: NewTable(maxCapacity),
	}
}

// Get returns the entry stored for (hash, depth).
func (l *LockedTable) Get(hash uint64, depth int) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table.Get(hash, depth)
}

// Store atomically replaces the entry for (hash, depth).
func (l *LockedTable) Store(hash uint64, depth int, e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table.Store(hash, depth, e)
}

// Len returns the number of stored entries.
func (l *LockedTable) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table.Len()
}

// Stats returns the activity counters.
func (l *LockedTable) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table.Stats()
}

// Clear removes every entry.
func (l *LockedTable) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table.Clear()
}
