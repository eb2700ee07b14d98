// Package collision maps string hashes to table indexes and records hash
// collisions and duplicate strings while the map is built.
package collision

type entry struct {
	name  string
	index int
}

// Tracker records, for every hash, the first string and index that produced it.
//
// Two different strings with the same hash are a collision: the first one keeps
// the slot and HasCollision reports true, so callers must fall back to a scan
// when Lookup misses. The same string seen again is a duplicate and is counted,
// not stored.
type Tracker struct {
	entries      map[uint64]entry
	hasCollision bool
	duplicates   int
}

// NewTracker creates a tracker sized for capacity strings.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		entries: make(map[uint64]entry, capacity),
	}
}

// Track records that name, hashing to hash, is stored at index.
func (t *Tracker) Track(name string, hash uint64, index int) {
	if existing, exists := t.entries[hash]; exists {
		if existing.name == name {
			t.duplicates++
		} else {
			t.hasCollision = true
		}

		return
	}

	t.entries[hash] = entry{name: name, index: index}
}

// Lookup returns the first index recorded for name.
// A miss is only authoritative when HasCollision is false.
func (t *Tracker) Lookup(name string, hash uint64) (int, bool) {
	e, ok := t.entries[hash]
	if !ok || e.name != name {
		return -1, false
	}

	return e.index, true
}

// HasCollision returns true if two different strings shared a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Duplicates returns how many tracked strings repeated an earlier one.
func (t *Tracker) Duplicates() int {
	return t.duplicates
}

// Count returns the number of distinct hashes tracked.
func (t *Tracker) Count() int {
	return len(t.entries)
}
