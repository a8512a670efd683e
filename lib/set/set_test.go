package set

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
	"github.com/benz9527/xcontainer/lib/xlog"
)

func TestSet(t *testing.T) {
	s := NewSet[int](5, 1, 3, 1)
	require.Equal(t, int64(3), s.Len())
	require.Equal(t, []int{1, 3, 5}, s.Keys())
	require.Greater(t, s.MaxSize(), s.Len())

	it, ok := s.Insert(3)
	require.False(t, ok)
	require.Equal(t, 3, it.Key())
	require.Equal(t, int64(2), s.InsertMany(2, 4, 5))
	require.Equal(t, []int{1, 2, 3, 4, 5}, s.Keys())

	require.NoError(t, s.Erase(s.Find(2)))
	require.Error(t, s.Erase(s.End()))
	require.NoError(t, s.Remove(4))
	require.ErrorIs(t, s.Remove(4), tree.ErrRBTreeKeyNotFound)
	require.Equal(t, []int{1, 3, 5}, s.Keys())

	require.True(t, s.Contains(5))
	require.False(t, s.Contains(4))
	require.Equal(t, 3, s.LowerBound(2).Key())
	require.Equal(t, 5, s.UpperBound(3).Key())
	require.Equal(t, 1, s.Begin().Key())
	require.True(t, s.End().Prev().Equal(s.Find(5)))

	keys := make([]int, 0, 2)
	s.Foreach(func(idx int64, key int) bool {
		keys = append(keys, key)
		return idx < 1
	})
	require.Equal(t, []int{1, 3}, keys)

	s.Clear()
	require.True(t, s.Empty())
}

func TestSet_MergeSwapClone(t *testing.T) {
	a := NewSet[string]("a", "c")
	b := NewSet[string]("b", "c", "d")
	moving, staying := b.Find("d"), b.Find("c")
	a.Merge(b)
	require.Equal(t, []string{"a", "b", "c", "d"}, a.Keys())
	require.Equal(t, []string{"c"}, b.Keys())
	require.True(t, moving.Valid())
	require.True(t, moving.Equal(a.Find("d")))
	require.True(t, staying.Equal(b.Begin()))

	c := a.Clone()
	require.NoError(t, c.Remove("a"))
	require.True(t, a.Contains("a"))

	a.Swap(b)
	require.Equal(t, []string{"c"}, a.Keys())
	require.Equal(t, []string{"a", "b", "c", "d"}, b.Keys())

	moved := b.Move()
	require.True(t, b.Empty())
	require.Equal(t, int64(4), moved.Len())
}

func TestSet_CustomLess(t *testing.T) {
	s := NewSetFunc[string](func(i, j string) bool {
		return strings.ToLower(i) < strings.ToLower(j)
	})
	assert.Equal(t, int64(3), s.InsertMany("b", "A", "a", "C"))
	assert.Equal(t, []string{"A", "b", "C"}, s.Keys())
	assert.True(t, s.Contains("B"))

	desc := NewMultiSetFunc[int](infra.OrderedLess[int], tree.WithRBTreeDesc[int, struct{}]())
	desc.InsertMany(1, 3, 2, 3)
	assert.Equal(t, []int{3, 3, 2, 1}, desc.Keys())
}

func TestSet_EngineLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
		xlog.WithXLoggerWriteSyncer(zapcore.AddSync(buf)),
	)
	s := NewSetFunc[int](infra.OrderedLess[int], tree.WithRBTreeLogger[int, struct{}](logger))
	s.InsertMany(1, 2)
	require.Error(t, s.Erase(s.End()))
	require.Contains(t, buf.String(), "erase rejected")
}

func TestMultiSet(t *testing.T) {
	s := NewMultiSet[int](1, 1, 2)
	require.Equal(t, int64(2), s.Count(1))
	require.Equal(t, []int{1, 1, 2}, s.Keys())

	first := s.Find(1)
	second := first.Next()
	require.Equal(t, 1, second.Key())
	require.False(t, first.Equal(second))

	s.Insert(1)
	require.Equal(t, int64(3), s.Count(1))
	lo, hi := s.EqualRange(1)
	n := 0
	for it := lo; !it.Equal(hi); it = it.Next() {
		n++
	}
	require.Equal(t, 3, n)
	require.Equal(t, 2, hi.Key())

	require.NoError(t, s.Erase(first))
	require.True(t, second.Valid())
	require.NoError(t, s.Remove(1))
	require.Equal(t, []int{1, 2}, s.Keys())
	require.Equal(t, int64(3), s.InsertMany(0, 2, 2))
	require.Equal(t, int64(3), s.Count(2))
	require.True(t, s.LowerBound(1).Equal(s.Find(1)))
	require.Equal(t, 2, s.UpperBound(1).Key())

	other := NewMultiSet[int](2, 9)
	s.Merge(other)
	require.True(t, other.Empty())
	require.Equal(t, []int{0, 1, 2, 2, 2, 2, 9}, s.Keys())

	clone := s.Clone()
	clone.Clear()
	require.Equal(t, int64(7), s.Len())

	s.Swap(other)
	require.True(t, s.Empty())
	require.Equal(t, int64(7), other.Len())
	require.Equal(t, int64(7), other.Move().Len())
	require.True(t, other.Empty())
}
