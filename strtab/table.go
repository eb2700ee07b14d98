package strtab

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/arloliu/astdict/errs"
	"github.com/arloliu/astdict/internal/collision"
	"github.com/arloliu/astdict/internal/hash"
)

// Table is a decoded string table.
//
// Strings keep their encoded order, since the enclosing document refers to them
// by index, and are byte-exact: they may hold 0x00, 0x01 or invalid UTF-8.
//
// A Table is immutable once returned and safe for concurrent reads. Copies share
// the same lookup index.
type Table struct {
	strings   []string
	declared  uint64
	bytesRead int64
	complete  bool
	index     *lookupIndex
}

func newTable() Table {
	return Table{index: newLookupIndex(hash.Sum)}
}

// Len returns the number of decoded strings.
func (t Table) Len() int {
	return len(t.strings)
}

// DeclaredCount returns the count read from the section header, or 0 if decoding
// failed before the count.
func (t Table) DeclaredCount() uint64 {
	return t.declared
}

// Complete reports whether every declared string was decoded.
// It is false for a table returned alongside a decode error.
func (t Table) Complete() bool {
	return t.complete
}

// BytesRead returns the number of section bytes consumed, counted after
// decompression.
func (t Table) BytesRead() int64 {
	return t.bytesRead
}

// At returns the string at index i.
func (t Table) At(i int) (string, error) {
	if i < 0 || i >= len(t.strings) {
		return "", fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, len(t.strings))
	}

	return t.strings[i], nil
}

// Strings returns a copy of the decoded strings. It is never nil.
func (t Table) Strings() []string {
	out := make([]string, len(t.strings))
	copy(out, t.strings)

	return out
}

// All returns an iterator over index and string pairs in table order.
func (t Table) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, s := range t.strings {
			if !yield(i, s) {
				return
			}
		}
	}
}

// IndexOf returns the first index holding s.
//
// The hash index is built on first use unless the table was decoded with
// WithLookupIndex. When two different strings share a hash, a miss falls back
// to a linear scan, so the result is always exact.
func (t Table) IndexOf(s string) (int, bool) {
	if t.index == nil {
		idx := slices.Index(t.strings, s)
		return idx, idx >= 0
	}

	tracker := t.index.get(t.strings)
	if idx, ok := tracker.Lookup(s, t.index.hashFn(s)); ok {
		return idx, true
	}

	if tracker.HasCollision() {
		idx := slices.Index(t.strings, s)
		return idx, idx >= 0
	}

	return -1, false
}

// Duplicates returns how many entries repeat an earlier entry.
func (t Table) Duplicates() int {
	if t.index != nil {
		if tracker := t.index.get(t.strings); !tracker.HasCollision() {
			return tracker.Duplicates()
		}
	}

	seen := make(map[string]struct{}, len(t.strings))
	for _, s := range t.strings {
		seen[s] = struct{}{}
	}

	return len(t.strings) - len(seen)
}

// lookupIndex is the lazily built hash index shared by copies of a Table.
type lookupIndex struct {
	once    sync.Once
	hashFn  func(string) uint64
	tracker *collision.Tracker
}

func newLookupIndex(hashFn func(string) uint64) *lookupIndex {
	return &lookupIndex{hashFn: hashFn}
}

func (li *lookupIndex) build(strings []string) {
	li.once.Do(func() {
		tracker := collision.NewTracker(len(strings))
		for i, s := range strings {
			tracker.Track(s, li.hashFn(s), i)
		}
		li.tracker = tracker
	})
}

func (li *lookupIndex) get(strings []string) *collision.Tracker {
	li.build(strings)
	return li.tracker
}
