/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */
package flight

// Comparator imposes a strict total order on V. Negative when a < b,
// zero when equal, positive when a > b. Keys that are only partially
// ordered are a caller error, the containers do not defend against them.
type Comparator[V any] func(a V, b V) int

// TableMap is a map with unique keys and an arbitrary value type
type TableMap[K any, V any] interface {
	// Returns the number of entries stored
	GetSize() int

	// Returns the value stored under k, or ErrKeyNotFound
	Get(k K) (V, error)

	// Reports whether k is present
	Has(k K) bool

	// Stores v under k, overwriting any previous value
	Put(k K, v V)

	// Removes the entry stored under k, or ErrKeyNotFound
	Delete(k K) error
}

// NavigableMap extends TableMap with ordered traversal and range queries.
// Every find style query signals "no qualifying entry" with a nil entry
// or an empty iterable, never with an error.
type NavigableMap[K any, V any] interface {
	TableMap[K, V]

	// Returns the entry with the minimum key, nil if empty
	First() *Entry[K, V]

	// Returns the entry with the maximum key, nil if empty
	Last() *Entry[K, V]

	// Returns the entry with the least key greater than or
	// equal to k, or nil if there is no such entry
	Ceiling(k K) *Entry[K, V]

	// Returns the entry with the least key strictly greater
	// than k, or nil if there is no such entry
	Higher(k K) *Entry[K, V]

	// Returns the entry with the greatest key less than or
	// equal to k, or nil if there is no such entry
	Floor(k K) *Entry[K, V]

	// Returns the entry with the greatest key strictly less
	// than k, or nil if there is no such entry
	Lower(k K) *Entry[K, V]

	// Generates the keys ordered from minimum to maximum
	Keys() Iterable[K]

	// Generates the keys ordered from maximum to minimum
	KeysDescending() Iterable[K]

	// Generates the entries ordered by key
	Entries() Iterable[Entry[K, V]]

	// Generates the entries whose keys fall in the half open
	// range [start, stop). A nil bound leaves that side open.
	Range(start *K, stop *K) Iterable[Entry[K, V]]
}
