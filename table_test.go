package zlox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_InsertFind(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		table := NewTable()
		table.Insert("answer", NewNumber(42))

		v, ok := table.Find("answer")
		require.True(t, ok)
		assert.Equal(t, NewNumber(42), v)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("missing key", func(t *testing.T) {
		table := NewTable()
		_, ok := table.Find("nope")
		assert.False(t, ok)
		assert.False(t, table.Has("nope"))
	})

	t.Run("overwrite keeps one entry", func(t *testing.T) {
		table := NewTable()
		table.Insert("k", NewNumber(1))
		table.Insert("k", NewNumber(2))

		v, ok := table.Find("k")
		require.True(t, ok)
		assert.Equal(t, NewNumber(2), v)
		assert.Equal(t, 1, table.Len())
	})
}

func TestTable_Rehash(t *testing.T) {
	// 1000 distinct keys force several doublings past the initial
	// capacity of 32; every key must still resolve afterwards.
	table := NewTable()
	for i := 0; i < 1000; i++ {
		table.Insert(fmt.Sprintf("key-%04d", i), NewNumber(float32(i)))
	}
	require.Equal(t, 1000, table.Len())

	for i := 0; i < 1000; i++ {
		v, ok := table.Find(fmt.Sprintf("key-%04d", i))
		require.True(t, ok, "key-%04d missing after rehash", i)
		assert.Equal(t, float32(i), v.AsNumber())
	}
}

func TestTable_FindKey(t *testing.T) {
	table := NewTable()
	table.Insert("canonical", NewBoolean(true))

	key, ok := table.FindKey("canonical")
	require.True(t, ok)
	assert.Equal(t, "canonical", key)

	_, ok = table.FindKey("other")
	assert.False(t, ok)
}
