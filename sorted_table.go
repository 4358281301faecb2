package flight

import (
	"errors"
)

// ErrKeyNotFound is returned by exact-match lookups and deletions when
// the key is not stored. Range style queries never return it, absence
// there is signalled with a nil entry or an empty iterable.
var ErrKeyNotFound = errors.New("sorted table: key not found")

// Entry is a single key-value pair owned by a SortedTableMap
type Entry[K any, V any] struct {
	key   K
	value V
}

func NewEntry[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

// getter for key
func (i Entry[K, V]) GetKey() K {
	return i.key
}

// getter for value
func (i Entry[K, V]) GetValue() V {
	return i.value
}

// SortedTableMap is a map backed by one contiguous sequence of entries
// kept sorted ascending by key at all times. Keys are unique, a Put on
// an existing key overwrites the value in place. Lookups run in
// O(log n), Put and Delete pay an O(n) shift in the worst case.
//
// The map is a single owner structure and does no locking of its own.
// Sharing one instance across goroutines needs external mutual
// exclusion, and the iterables handed out are views over the backing
// sequence at call time: mutating the map while one is being consumed
// is undefined.
type SortedTableMap[K any, V any] struct {
	EnhancedIterator[Entry[K, V]]
	table      []Entry[K, V]
	comparator Comparator[K]
}

// NewSortedTableMap creates an empty map ordered by [comparator]
func NewSortedTableMap[K any, V any](comparator Comparator[K]) *SortedTableMap[K, V] {
	m := &SortedTableMap[K, V]{
		table:      make([]Entry[K, V], 0),
		comparator: comparator,
	}
	m.base = m
	return m
}

// Returns the index j such that every entry at an index below j has a
// key < k and every entry at j or above has a key >= k. Returns high+1
// when no entry in [low, high] qualifies. An exact match returns its
// index immediately, that is the leftmost match only because keys are
// unique. O(log n)
func (v *SortedTableMap[K, V]) findIndex(k K, low int, high int) int {
	for low <= high {
		mid := (low + high) / 2
		cmp := v.comparator(k, v.table[mid].key)

		if cmp == 0 {
			return mid
		} else if cmp < 0 {
			high = mid - 1
		} else {
			low = mid + 1
		}
	}

	// here low == high+1 for the range that was searched
	return low
}

// Returns the number of entries stored. O(1)
func (v *SortedTableMap[K, V]) GetSize() int {
	return len(v.table)
}

// Returns the value stored under k, or ErrKeyNotFound. O(log n)
func (v *SortedTableMap[K, V]) Get(k K) (V, error) {
	j := v.findIndex(k, 0, len(v.table)-1)
	if j == len(v.table) || v.comparator(v.table[j].key, k) != 0 {
		var zero V
		return zero, ErrKeyNotFound
	}
	return v.table[j].value, nil
}

// Reports whether k is stored. O(log n)
func (v *SortedTableMap[K, V]) Has(k K) bool {
	j := v.findIndex(k, 0, len(v.table)-1)
	return j < len(v.table) && v.comparator(v.table[j].key, k) == 0
}

// Stores value under k, overwriting in place when k is present,
// otherwise shifting the tail right to open the slot. O(log n) search
// plus O(n) worst case shift
func (v *SortedTableMap[K, V]) Put(k K, value V) {
	j := v.findIndex(k, 0, len(v.table)-1)
	if j < len(v.table) && v.comparator(v.table[j].key, k) == 0 {
		v.table[j].value = value
		return
	}

	v.table = append(v.table, Entry[K, V]{})
	copy(v.table[j+1:], v.table[j:])
	v.table[j] = Entry[K, V]{key: k, value: value}
}

// Removes the entry stored under k, shifting the tail left, or returns
// ErrKeyNotFound. O(log n) search plus O(n) worst case shift
func (v *SortedTableMap[K, V]) Delete(k K) error {
	j := v.findIndex(k, 0, len(v.table)-1)
	if j == len(v.table) || v.comparator(v.table[j].key, k) != 0 {
		return ErrKeyNotFound
	}

	v.table = append(v.table[:j], v.table[j+1:]...)
	return nil
}

// Returns a copy of the entry with the minimum key, nil if empty. O(1)
func (v *SortedTableMap[K, V]) First() *Entry[K, V] {
	if len(v.table) == 0 {
		return nil
	}

	e := v.table[0]
	return &e
}

// Returns a copy of the entry with the maximum key, nil if empty. O(1)
func (v *SortedTableMap[K, V]) Last() *Entry[K, V] {
	if len(v.table) == 0 {
		return nil
	}

	e := v.table[len(v.table)-1]
	return &e
}

// Returns the entry with the least key greater than or equal to k, or
// nil if there is no such entry. O(log n)
func (v *SortedTableMap[K, V]) Ceiling(k K) *Entry[K, V] {
	j := v.findIndex(k, 0, len(v.table)-1)
	if j >= len(v.table) {
		return nil
	}

	e := v.table[j]
	return &e
}

// Returns the entry with the least key strictly greater than k, or nil
// if there is no such entry. O(log n)
func (v *SortedTableMap[K, V]) Higher(k K) *Entry[K, V] {
	j := v.findIndex(k, 0, len(v.table)-1)
	if j < len(v.table) && v.comparator(v.table[j].key, k) == 0 {
		// step past the exact match
		j++
	}

	if j >= len(v.table) {
		return nil
	}

	e := v.table[j]
	return &e
}

// Returns the entry with the greatest key less than or equal to k, or
// nil if there is no such entry. O(log n)
func (v *SortedTableMap[K, V]) Floor(k K) *Entry[K, V] {
	j := v.findIndex(k, 0, len(v.table)-1)
	if j < len(v.table) && v.comparator(v.table[j].key, k) == 0 {
		e := v.table[j]
		return &e
	}

	if j == 0 {
		return nil
	}

	e := v.table[j-1]
	return &e
}

// Returns the entry with the greatest key strictly less than k, or nil
// if there is no such entry. O(log n)
func (v *SortedTableMap[K, V]) Lower(k K) *Entry[K, V] {
	j := v.findIndex(k, 0, len(v.table)-1)
	if j == 0 {
		return nil
	}

	e := v.table[j-1]
	return &e
}

// Generates the keys ordered from minimum to maximum
func (v *SortedTableMap[K, V]) Keys() Iterable[K] {
	view := v.table
	itr := Iterable[K]{
		recreaterCallback: func() Iterator[K] {
			return &entryKeyIterator[K, V]{
				itr: &sortedTableIterator[K, V]{table: view, index: -1},
			}
		},
	}
	itr.base = itr
	return itr
}

// Generates the keys ordered from maximum to minimum, the exact
// reverse of Keys
func (v *SortedTableMap[K, V]) KeysDescending() Iterable[K] {
	view := v.table
	itr := Iterable[K]{
		recreaterCallback: func() Iterator[K] {
			return &entryKeyIterator[K, V]{
				itr: &reverseTableIterator[K, V]{table: view, index: len(view)},
			}
		},
	}
	itr.base = itr
	return itr
}

// Generates the entries ordered by key
func (v *SortedTableMap[K, V]) Entries() Iterable[Entry[K, V]] {
	view := v.table
	itr := Iterable[Entry[K, V]]{
		recreaterCallback: func() Iterator[Entry[K, V]] {
			return &sortedTableIterator[K, V]{table: view, index: -1}
		},
	}
	itr.base = itr
	return itr
}

// Generates the entries whose keys fall in the half open range
// [start, stop) in ascending order. A nil start begins at the minimum
// key, a nil stop runs through the maximum key. Inverted bounds give
// an empty sequence. O(log n) to position, O(1) per step
func (v *SortedTableMap[K, V]) Range(start *K, stop *K) Iterable[Entry[K, V]] {
	low := 0
	if start != nil {
		low = v.findIndex(*start, 0, len(v.table)-1)
	}

	high := len(v.table)
	if stop != nil {
		high = v.findIndex(*stop, 0, len(v.table)-1)
	}

	if high < low {
		high = low
	}

	view := v.table[low:high]
	itr := Iterable[Entry[K, V]]{
		recreaterCallback: func() Iterator[Entry[K, V]] {
			return &sortedTableIterator[K, V]{table: view, index: -1}
		},
	}
	itr.base = itr
	return itr
}

// returns an ascending iterator over the entries
func (v *SortedTableMap[K, V]) GetIterator() Iterator[Entry[K, V]] {
	return &sortedTableIterator[K, V]{table: v.table, index: -1}
}

// Iterator over a slice of the backing sequence, ascending
type sortedTableIterator[K any, V any] struct {
	table []Entry[K, V]
	index int
}

func (i *sortedTableIterator[K, V]) MoveNext() bool {
	if i.index < len(i.table)-1 {
		i.index++
		return true
	}
	return false
}

func (i *sortedTableIterator[K, V]) GetCurrent() Entry[K, V] {
	if i.index >= len(i.table) || i.index < 0 {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}
	return i.table[i.index]
}

// Iterator over a slice of the backing sequence, descending
type reverseTableIterator[K any, V any] struct {
	table []Entry[K, V]
	index int
}

func (i *reverseTableIterator[K, V]) MoveNext() bool {
	if i.index > 0 {
		i.index--
		return true
	}
	return false
}

func (i *reverseTableIterator[K, V]) GetCurrent() Entry[K, V] {
	if i.index >= len(i.table) || i.index < 0 {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}
	return i.table[i.index]
}

// adapts an entry iterator into a key iterator
type entryKeyIterator[K any, V any] struct {
	itr Iterator[Entry[K, V]]
}

func (i *entryKeyIterator[K, V]) MoveNext() bool {
	return i.itr.MoveNext()
}

func (i *entryKeyIterator[K, V]) GetCurrent() K {
	return i.itr.GetCurrent().key
}
