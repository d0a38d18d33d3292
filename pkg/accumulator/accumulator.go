// Package accumulator provides a keyed additive counter used to roll
// per-key totals up a component tree.
package accumulator

import (
	"cmp"
	"maps"
	"slices"
)

// Accumulator sums int64 deltas per key. The zero value of K means "no key":
// adding under it is a no-op. Merging is commutative and associative, and an
// empty accumulator is its identity.
type Accumulator[K comparable] struct {
	totals map[K]int64
}

// New returns an empty accumulator.
func New[K comparable]() *Accumulator[K] {
	return &Accumulator[K]{totals: make(map[K]int64)}
}

// Add adds delta to the total of key.
func (a *Accumulator[K]) Add(key K, delta int64) {
	var zero K
	if key == zero {
		return
	}

	a.totals[key] += delta
}

// Merge adds every total of other into a. other is left unchanged.
func (a *Accumulator[K]) Merge(other *Accumulator[K]) {
	if other == nil {
		return
	}

	for k, v := range other.totals {
		a.totals[k] += v
	}
}

// Total returns the total of key, zero when never added.
func (a *Accumulator[K]) Total(key K) int64 {
	return a.totals[key]
}

// Has reports whether key has an entry, even one totalling zero.
func (a *Accumulator[K]) Has(key K) bool {
	_, ok := a.totals[key]

	return ok
}

// Len returns the number of keys with an entry.
func (a *Accumulator[K]) Len() int {
	return len(a.totals)
}

// Keys returns the keys in unspecified order.
func (a *Accumulator[K]) Keys() []K {
	return slices.Collect(maps.Keys(a.totals))
}

// Each calls fn for every key and total in unspecified order.
func (a *Accumulator[K]) Each(fn func(key K, total int64)) {
	for k, v := range a.totals {
		fn(k, v)
	}
}

// Equal reports whether a and other hold the same total for every key.
// A missing key and a zero total are equal.
func (a *Accumulator[K]) Equal(other *Accumulator[K]) bool {
	for k, v := range a.totals {
		if other.Total(k) != v {
			return false
		}
	}

	for k, v := range other.totals {
		if a.Total(k) != v {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of a.
func (a *Accumulator[K]) Clone() *Accumulator[K] {
	return &Accumulator[K]{totals: maps.Clone(a.totals)}
}

// SortedKeys returns the keys of a in ascending order.
func SortedKeys[K cmp.Ordered](a *Accumulator[K]) []K {
	keys := a.Keys()
	slices.Sort(keys)

	return keys
}
