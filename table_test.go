package hashtab

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(capacity int, hashFunc HashFunc[string]) *probeTable {
	var tt probeTable
	tt.init(capacity, hashFunc)

	return &tt
}

func TestTable_init(t *testing.T) {
	tt := newTable(100, SumHash)

	require.Len(t, tt.slots, 100)
	require.Len(t, tt.used, 2)
	require.Equal(t, 100, tt.capacity)
	require.Zero(t, tt.size)
	require.Zero(t, tt.collisions)
}

func TestTable_put(t *testing.T) {
	tt := newTable(16, SumHash)

	ok, err := tt.put("foo")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tt.put("foo")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, tt.size)
	assert.True(t, tt.has("foo"))
	assert.False(t, tt.has("bar"))
}

func TestTable_put_LinearProbe(t *testing.T) {
	// All keys start at index 0
	collisionHash := func(string, int) int { return 0 }
	tt := newTable(8, collisionHash)

	for _, k := range []string{"A", "B", "C"} {
		ok, err := tt.put(k)
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.Equal(t, []string{"A", "B", "C"}, tt.slots[:3])
	// B stepped over A, C stepped over A and B.
	require.Equal(t, 3, tt.collisions)

	// A duplicate still walks the chain until it finds itself.
	ok, err := tt.put("C")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 5, tt.collisions)
}

func TestTable_put_WrapAround(t *testing.T) {
	// All keys start at the last slot
	lastSlotHash := func(_ string, capacity int) int { return capacity - 1 }
	tt := newTable(8, lastSlotHash)

	_, err := tt.put("A")
	require.NoError(t, err)
	_, err = tt.put("B")
	require.NoError(t, err)

	require.Equal(t, "A", tt.slots[7])
	require.Equal(t, "B", tt.slots[0], "probe should wrap to the first slot")
	require.True(t, tt.has("B"))
}

func TestTable_put_Full(t *testing.T) {
	collisionHash := func(string, int) int { return 0 }
	tt := newTable(2, collisionHash)

	_, err := tt.put("A")
	require.NoError(t, err)
	_, err = tt.put("B")
	require.NoError(t, err)

	ok, err := tt.put("C")
	require.ErrorIs(t, err, ErrContainerFull)
	require.False(t, ok)
	require.Equal(t, 2, tt.size)

	// Lookups on a full table must terminate too.
	require.False(t, tt.has("C"))
	require.True(t, tt.has("B"))
}

func TestTable_put_EmptyKey(t *testing.T) {
	tt := newTable(8, SumHash)
	require.False(t, tt.has(""))

	ok, err := tt.put("")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, tt.has(""))
}

func TestTable_keys(t *testing.T) {
	collisionHash := func(string, int) int { return 5 }
	tt := newTable(8, collisionHash)

	for _, k := range []string{"A", "B", "C", "D"} {
		_, err := tt.put(k)
		require.NoError(t, err)
	}

	// A, B, C occupy 5..7 and D wraps to 0, so slot order starts with D.
	require.Equal(t, []string{"D", "A", "B", "C"}, slices.Collect(tt.keys()))

	// Early stop
	var first []string
	for k := range tt.keys() {
		first = append(first, k)
		break
	}
	require.Equal(t, []string{"D"}, first)
}
