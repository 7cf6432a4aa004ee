// Package tables defines the injectable lookup abstractions behind model,
// element, and level label resolution. Callers construct a SimpleTable (or
// their own Table implementation, e.g. backed by a database) and pass it to
// the pipeline at construction time; no table data ships with this package.
package tables

// Table is a generic keyed lookup with a uniform soft-miss/hard-miss
// protocol: Lookup reports whether key was found, leaving the caller to
// decide whether a miss is fatal.
type Table[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	// Keys returns every key the table knows about, for diagnostic
	// listings on miss. Order is unspecified.
	Keys() []K
}

// SimpleTable is a map-backed Table, the shape used throughout this
// package family.
type SimpleTable[K comparable, V any] struct {
	entries map[K]V
}

// NewSimpleTable wraps a pre-built map as a Table. The map is not copied;
// callers should not mutate it after constructing the table.
func NewSimpleTable[K comparable, V any](entries map[K]V) *SimpleTable[K, V] {
	return &SimpleTable[K, V]{entries: entries}
}

// Lookup returns the entry for key, if any.
func (t *SimpleTable[K, V]) Lookup(key K) (V, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Keys returns every key in the table.
func (t *SimpleTable[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}

// RangeTable layers contiguous-range fallbacks on top of exact-match
// entries, for tables where e.g. codes 192-254 share one label ("reserved
// for local use") without needing one map entry per code.
type RangeTable[V any] struct {
	entries map[int]V
	ranges  []RangeEntry[V]
}

// RangeEntry associates an inclusive code range with a value.
type RangeEntry[V any] struct {
	Start, End int
	Value      V
}

// NewRangeTable builds a RangeTable from exact entries plus range entries.
// Exact entries take priority over overlapping ranges.
func NewRangeTable[V any](entries map[int]V, ranges []RangeEntry[V]) *RangeTable[V] {
	return &RangeTable[V]{entries: entries, ranges: ranges}
}

// Lookup returns the entry for code, checking exact matches before ranges.
func (t *RangeTable[V]) Lookup(code int) (V, bool) {
	if v, ok := t.entries[code]; ok {
		return v, true
	}
	for _, r := range t.ranges {
		if code >= r.Start && code <= r.End {
			return r.Value, true
		}
	}
	var zero V
	return zero, false
}

// Keys returns the table's exact-match codes; codes that only exist by
// virtue of a range are not enumerated.
func (t *RangeTable[V]) Keys() []int {
	keys := make([]int, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	return keys
}
