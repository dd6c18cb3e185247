package hashing

import "github.com/lgbarn/negamax-chess-go/internal/chess"

// Entry is a memoised search result.
type Entry struct {
	Score int
	Move  chess.Move
}

// Cache stores search results keyed by position hash and remaining depth.
type Cache interface {
	Get(hash uint64, depth int) (Entry, bool)
	Store(hash uint64, depth int, e Entry)
}

// key identifies a table slot.
type key struct {
	hash  uint64
	depth int
}

// Stats reports table activity.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Stores    uint64
	Evictions uint64
}

// Table is a transposition table keyed by (hash, depth). When a capacity is
// set, the oldest inserted key is evicted to make room for a new one;
// overwriting an existing key does not change its age.
//
// Table is not safe for concurrent use; see LockedTable.
type Table struct {
	entries     map[key]Entry
	maxCapacity int
	ring        []key // insertion order, used only when bounded
	next        int
	stats       Stats
}

// NewTable creates a transposition table.
// maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	t := &Table{
		entries:     make(map[key]Entry),
		maxCapacity: maxCapacity,
	}
	return t
}

// Get returns the entry stored for (hash, depth).
func (t *Table) Get(hash uint64, depth int) (Entry, bool) {
	e, ok := t.entries[key{hash, depth}]
	if ok {
		t.stats.Hits++
	} else {
		t.stats.Misses++
	}
	return e, ok
}

// Store records an entry for (hash, depth), replacing any previous one.
func (t *Table) Store(hash uint64, depth int, e Entry) {
	k := key{hash, depth}
	t.stats.Stores++
	if _, exists := t.entries[k]; exists || t.maxCapacity == 0 {
		t.entries[k] = e
		return
	}

	if len(t.ring) < t.maxCapacity {
		t.ring = append(t.ring, k)
	} else {
		delete(t.entries, t.ring[t.next])
		t.stats.Evictions++
		t.ring[t.next] = k
		t.next = (t.next + 1) % t.maxCapacity
	}
	t.entries[k] = e
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Stats returns the activity counters.
func (t *Table) Stats() Stats {
	return t.stats
}

// Clear removes every entry and resets the counters.
func (t *Table) Clear() {
	t.entries = make(map[key]Entry)
	t.ring = t.ring[:0]
	t.next = 0
	t.stats = Stats{}
}
