package kv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xcontainer/lib/tree"
)

func TestTreeMap(t *testing.T) {
	m := NewTreeMap[string, int]()
	_, ok := m.Insert("b", 2)
	require.True(t, ok)
	_, ok = m.Insert("a", 1)
	require.True(t, ok)
	it, ok := m.Insert("b", 20)
	require.False(t, ok)
	require.Equal(t, 2, it.Val())

	_, ok = m.InsertOrAssign("b", 20)
	require.False(t, ok)
	val, err := m.At("b")
	require.NoError(t, err)
	require.Equal(t, 20, val)

	_, err = m.At("z")
	require.ErrorIs(t, err, ErrKeyNotFound)

	counter := m.GetOrInsert("c")
	require.Equal(t, 0, counter.Val())
	counter.SetVal(counter.Val() + 3)
	require.Equal(t, 3, m.GetOrInsert("c").Val())

	require.Equal(t, []string{"a", "b", "c"}, m.Keys())
	require.Equal(t, []int{1, 20, 3}, m.Values())
	require.Equal(t, []tree.KeyVal[string, int]{{Key: "a", Val: 1}, {Key: "b", Val: 20}, {Key: "c", Val: 3}}, m.Entries())
	require.Equal(t, []string{"a", "c"}, m.Keys(func(key string) bool {
		return key != "b"
	}, nil))

	require.Equal(t, "b", m.LowerBound("aa").Key())
	require.Equal(t, "c", m.UpperBound("b").Key())
	require.True(t, m.Contains("a"))

	val, err = m.Remove("a")
	require.NoError(t, err)
	require.Equal(t, 1, val)
	_, err = m.Remove("a")
	require.ErrorIs(t, err, ErrKeyNotFound)
	require.NoError(t, m.Erase(m.Find("c")))
	require.Error(t, m.Erase(m.End()))
	require.Equal(t, int64(1), m.Len())
	require.True(t, m.Begin().Equal(m.Find("b")))
	require.Greater(t, m.MaxSize(), m.Len())

	m.Clear()
	require.True(t, m.Empty())
}

func TestTreeMap_MergeSwapClone(t *testing.T) {
	a := NewTreeMapFrom(map[int]string{1: "a1", 3: "a3"})
	b := NewTreeMapFrom(map[int]string{2: "b2", 3: "b3"})
	moving := b.Find(2)
	a.Merge(b)
	require.Equal(t, []int{1, 2, 3}, a.Keys())
	require.Equal(t, "a3", a.Find(3).Val())
	require.Equal(t, []int{3}, b.Keys())
	// The merged entry is the same element, not a copy.
	require.True(t, moving.Valid())
	require.True(t, moving.Equal(a.Find(2)))
	moving.SetVal("b2!")
	require.Equal(t, "b2!", a.Find(2).Val())
	require.ErrorIs(t, b.Erase(moving), tree.ErrRBTreeForeignIterator)
	require.NoError(t, a.Erase(moving))
	a.Insert(2, "b2")

	c := a.Clone()
	c.InsertOrAssign(1, "c1")
	v, err := a.At(1)
	require.NoError(t, err)
	require.Equal(t, "a1", v)

	first := a.Begin()
	a.Swap(b)
	require.Equal(t, []string{"b3"}, a.Values())
	require.Equal(t, int64(3), b.Len())
	require.True(t, first.Equal(b.Begin()))

	moved := b.Move()
	require.True(t, b.Empty())
	require.Equal(t, int64(3), moved.Len())

	seen := 0
	moved.Foreach(func(idx int64, key int, val string) bool {
		seen++
		return false
	})
	require.Equal(t, 1, seen)
}

func TestTreeMap_DescOrder(t *testing.T) {
	m := NewTreeMapFunc[int, string](func(i, j int) bool {
		return i < j
	}, tree.WithRBTreeDesc[int, string]())
	m.Insert(1, "x")
	m.Insert(3, "y")
	m.Insert(2, "z")
	require.Equal(t, []int{3, 2, 1}, m.Keys())
}
