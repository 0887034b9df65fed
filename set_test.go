package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetScenario(t *testing.T) {
	s := NewSet(NewComparator(LittleEndian).Compare())

	for _, k := range []byte{5, 3, 8, 1, 4, 7, 9} {
		inserted, err := s.Insert(Key{k})
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	assert.Equal(t, 7, s.Size())
	assert.Equal(t, []Key{{1}, {3}, {4}, {5}, {7}, {8}, {9}}, s.t.keys())
	assert.LessOrEqual(t, s.Height(), maxHeight(7))
	require.NoError(t, s.Verify())
}

func TestSetContainsAndCount(t *testing.T) {
	s := NewSet(SignumBE)
	_, _ = s.Insert(Key("x"))

	assert.True(t, s.Contains(Key("x")))
	assert.Equal(t, 1, s.Count(Key("x")))
	assert.False(t, s.Contains(Key("y")))
	assert.Equal(t, 0, s.Count(Key("y")))
}

func TestSetDuplicateInsert(t *testing.T) {
	s := NewSet(SignumBE)

	inserted, _ := s.Insert(Key("x"))
	assert.True(t, inserted)
	inserted, _ = s.Insert(Key("x"))
	assert.False(t, inserted)
	assert.Equal(t, 1, s.Size())
}

func TestSetDelete(t *testing.T) {
	s := NewSet(SignumBE)
	_, _ = s.Insert(Key("a"))
	_, _ = s.Insert(Key("b"))

	assert.False(t, s.Delete(Key("c")))
	assert.Equal(t, 2, s.Size())

	assert.True(t, s.Delete(Key("a")))
	assert.False(t, s.Contains(Key("a")))
	assert.True(t, s.Contains(Key("b")))
	assert.Equal(t, 1, s.Size())

	assert.False(t, s.Delete(Key("a")))
}

func TestSetLengthDominatesOrdering(t *testing.T) {
	s := NewSet(SignumLE)
	_, _ = s.Insert(Key{0x01, 0x00})
	_, _ = s.Insert(Key{0x01})

	// Both encode 1 but are distinct, shorter first.
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []Key{{0x01}, {0x01, 0x00}}, s.t.keys())
}

func TestSetNodesCarryNoValue(t *testing.T) {
	s := NewSet(SignumBE)
	_, _ = s.Insert(Key("k"))

	assert.Nil(t, s.t.node(s.t.find(Key("k"))).value)
}

func TestSetAscendingInsertIsLogarithmic(t *testing.T) {
	const n = 4096
	s := NewSet(SignumBE)
	for i := uint64(0); i < n; i++ {
		_, _ = s.Insert(u64(i))
	}

	assert.Equal(t, n, s.Size())
	assert.LessOrEqual(t, s.Height(), maxHeight(n))
	require.NoError(t, s.Verify())

	for i := uint64(0); i < n; i += 2 {
		require.True(t, s.Delete(u64(i)))
	}
	assert.Equal(t, n/2, s.Size())
	assert.LessOrEqual(t, s.Height(), maxHeight(n/2))
	require.NoError(t, s.Verify())
}

func TestSetWithMaxNodes(t *testing.T) {
	s := NewSet(SignumBE, WithMaxNodes(1))

	_, err := s.Insert(Key("a"))
	require.NoError(t, err)
	_, err = s.Insert(Key("b"))
	assert.ErrorIs(t, err, ErrArenaFull)
	assert.False(t, s.Contains(Key("b")))
}

func TestSetDestroy(t *testing.T) {
	s := NewSet(nil)
	for i := uint64(0); i < 100; i++ {
		_, _ = s.Insert(u64(i))
	}

	s.Destroy()
	assert.Zero(t, s.Size())
	assert.False(t, s.Contains(u64(1)))

	_, _ = s.Insert(u64(1))
	assert.True(t, s.Contains(u64(1)))
	require.NoError(t, s.Verify())
}
