package flight

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intComparator(a int, b int) int {
	return a - b
}

func newIntTable(keys ...int) *SortedTableMap[int, string] {
	m := NewSortedTableMap[int, string](intComparator)
	for _, k := range keys {
		m.Put(k, "")
	}
	return m
}

func TestEmptyTable(t *testing.T) {
	m := NewSortedTableMap[int, string](intComparator)

	assert.Equal(t, 0, m.GetSize())
	assert.Nil(t, m.First())
	assert.Nil(t, m.Last())
	assert.Nil(t, m.Ceiling(42))
	assert.Nil(t, m.Floor(42))
	assert.Nil(t, m.Higher(42))
	assert.Nil(t, m.Lower(42))
	assert.Empty(t, m.Keys().ToList())

	_, err := m.Get(42)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, m.Delete(42), ErrKeyNotFound)
}

func TestPutGetRoundTrip(t *testing.T) {
	m := NewSortedTableMap[int, string](intComparator)

	m.Put(7, "seven")

	got, err := m.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "seven", got)
	assert.True(t, m.Has(7))
	assert.False(t, m.Has(8))
}

func TestPutOverwritesInPlace(t *testing.T) {
	m := NewSortedTableMap[int, string](intComparator)

	m.Put(1, "one")
	m.Put(1, "uno")

	got, err := m.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "uno", got)
	assert.Equal(t, 1, m.GetSize())
}

func TestDeleteRemovesKey(t *testing.T) {
	m := newIntTable(1, 2, 3)

	require.NoError(t, m.Delete(2))
	assert.Equal(t, 2, m.GetSize())

	_, err := m.Get(2)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, m.Delete(2), ErrKeyNotFound)

	// the neighbours are untouched
	assert.True(t, m.Has(1))
	assert.True(t, m.Has(3))
}

func TestKeysAscendingAndDescending(t *testing.T) {
	m := newIntTable(5, 1, 4, 2, 3)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, m.Keys().ToList())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, m.KeysDescending().ToList())
}

func TestIterablesAreRestartable(t *testing.T) {
	m := newIntTable(1, 2, 3)

	keys := m.Keys()
	assert.Equal(t, []int{1, 2, 3}, keys.ToList())
	assert.Equal(t, []int{1, 2, 3}, keys.ToList())
}

func TestBoundaryQueries(t *testing.T) {
	m := newIntTable(1, 3, 5)

	require.NotNil(t, m.First())
	assert.Equal(t, 1, m.First().GetKey())
	require.NotNil(t, m.Last())
	assert.Equal(t, 5, m.Last().GetKey())

	require.NotNil(t, m.Ceiling(3))
	assert.Equal(t, 3, m.Ceiling(3).GetKey())
	require.NotNil(t, m.Ceiling(4))
	assert.Equal(t, 5, m.Ceiling(4).GetKey())
	assert.Nil(t, m.Ceiling(6))

	require.NotNil(t, m.Lower(3))
	assert.Equal(t, 1, m.Lower(3).GetKey())
	assert.Nil(t, m.Lower(1))

	require.NotNil(t, m.Higher(3))
	assert.Equal(t, 5, m.Higher(3).GetKey())
	assert.Nil(t, m.Higher(5))

	require.NotNil(t, m.Floor(4))
	assert.Equal(t, 3, m.Floor(4).GetKey())
	require.NotNil(t, m.Floor(3))
	assert.Equal(t, 3, m.Floor(3).GetKey())
	assert.Nil(t, m.Floor(0))
}

func rangeKeys(m *SortedTableMap[int, string], start *int, stop *int) []int {
	keys := make([]int, 0)
	itr := m.Range(start, stop).GetIterator()
	for itr.MoveNext() {
		keys = append(keys, itr.GetCurrent().GetKey())
	}
	return keys
}

func TestRangeHalfOpen(t *testing.T) {
	m := newIntTable(10, 20, 30, 40)

	start, stop := 15, 35
	assert.Equal(t, []int{20, 30}, rangeKeys(m, &start, &stop))

	// the stop key itself is excluded even when present
	start, stop = 10, 30
	assert.Equal(t, []int{10, 20}, rangeKeys(m, &start, &stop))

	stop = 25
	assert.Equal(t, []int{10, 20}, rangeKeys(m, nil, &stop))

	start = 25
	assert.Equal(t, []int{30, 40}, rangeKeys(m, &start, nil))

	assert.Equal(t, []int{10, 20, 30, 40}, rangeKeys(m, nil, nil))

	start, stop = 50, 10
	assert.Empty(t, rangeKeys(m, &start, &stop))
}

func TestEntriesOrderAndValues(t *testing.T) {
	m := NewSortedTableMap[int, string](intComparator)
	m.Put(2, "two")
	m.Put(1, "one")

	entries := m.Entries().ToList()
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].GetKey())
	assert.Equal(t, "one", entries[0].GetValue())
	assert.Equal(t, 2, entries[1].GetKey())
	assert.Equal(t, "two", entries[1].GetValue())
}

func TestWhereFiltersEntries(t *testing.T) {
	m := newIntTable(1, 2, 3, 4, 5, 6)

	even := m.Entries().Where(func(e Entry[int, string]) bool {
		return e.GetKey()%2 == 0
	}).ToList()

	keys := make([]int, 0)
	for _, e := range even {
		keys = append(keys, e.GetKey())
	}
	assert.Equal(t, []int{2, 4, 6}, keys)
}

func TestFindIndexSplitsRange(t *testing.T) {
	m := newIntTable(10, 20, 30)

	// exact match returns its index
	assert.Equal(t, 1, m.findIndex(20, 0, 2))
	// between keys returns the first index holding a key >= k
	assert.Equal(t, 1, m.findIndex(15, 0, 2))
	// below the minimum
	assert.Equal(t, 0, m.findIndex(5, 0, 2))
	// above the maximum
	assert.Equal(t, 3, m.findIndex(35, 0, 2))
	// degenerate empty range
	assert.Equal(t, 0, m.findIndex(10, 0, -1))
}

func TestInvariantsUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewSortedTableMap[int, int](intComparator)
	oracle := make(map[int]int)

	for i := 0; i < 5000; i++ {
		k := rng.Intn(500)
		if rng.Intn(3) == 0 {
			err := m.Delete(k)
			if _, ok := oracle[k]; ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrKeyNotFound)
			}
			delete(oracle, k)
		} else {
			m.Put(k, i)
			oracle[k] = i
		}
	}

	require.Equal(t, len(oracle), m.GetSize())

	want := make([]int, 0, len(oracle))
	for k := range oracle {
		want = append(want, k)
	}
	sort.Ints(want)

	got := m.Keys().ToList()
	require.Equal(t, want, got)

	// strictly ascending, no duplicates
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}

	for k, v := range oracle {
		stored, err := m.Get(k)
		require.NoError(t, err)
		assert.Equal(t, v, stored)
	}
}
