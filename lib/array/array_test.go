package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	_, err := NewArray[int](2, 1, 2, 3)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	arr, err := NewArray[int](4, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0, 0}, arr.Data())
	require.Equal(t, 4, arr.Len())
	require.Equal(t, 4, arr.MaxSize())
	require.False(t, arr.Empty())

	require.NoError(t, arr.Set(3, 9))
	v, err := arr.Back()
	require.NoError(t, err)
	require.Equal(t, 9, v)
	v, err = arr.Front()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	_, err = arr.At(4)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, arr.Set(-1, 0), ErrOutOfRange)

	arr.Fill(7)
	require.Equal(t, []int{7, 7, 7, 7}, arr.Data())

	other, err := NewArray[int](4)
	require.NoError(t, err)
	require.NoError(t, arr.Swap(other))
	require.Equal(t, []int{0, 0, 0, 0}, arr.Data())
	require.Equal(t, []int{7, 7, 7, 7}, other.Data())
	short, _ := NewArray[int](1)
	require.ErrorIs(t, arr.Swap(short), ErrCapacityExceeded)

	empty, err := NewArray[string](0)
	require.NoError(t, err)
	require.True(t, empty.Empty())
	_, err = empty.Front()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestVector(t *testing.T) {
	vec := NewVector[int](1, 2, 3)
	vec.PushBack(4)
	require.Equal(t, []int{1, 2, 3, 4}, vec.Data())

	require.NoError(t, vec.Insert(0, 0))
	require.NoError(t, vec.Insert(5, 5))
	require.NoError(t, vec.Insert(3, 100))
	require.ErrorIs(t, vec.Insert(8, 1), ErrOutOfRange)
	require.Equal(t, []int{0, 1, 2, 100, 3, 4, 5}, vec.Data())

	v, err := vec.Erase(3)
	require.NoError(t, err)
	require.Equal(t, 100, v)
	_, err = vec.Erase(6)
	require.ErrorIs(t, err, ErrOutOfRange)

	v, err = vec.PopBack()
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, 5, vec.Len())
	require.NoError(t, vec.Set(0, -1))
	front, _ := vec.Front()
	require.Equal(t, -1, front)

	vec.Reserve(64)
	require.GreaterOrEqual(t, vec.Capacity(), 64)
	vec.ShrinkToFit()
	require.Equal(t, vec.Len(), vec.Capacity())

	even := vec.Filter(func(idx int, v int) bool {
		return v%2 == 0
	})
	require.Equal(t, []int{2, 4}, even.Data())

	sum := 0
	vec.Foreach(func(idx int, v int) bool {
		sum += v
		return idx < 2
	})
	require.Equal(t, 2, sum)

	other := NewVector[int]()
	vec.Swap(other)
	require.True(t, vec.Empty())
	require.Equal(t, 5, other.Len())

	other.Clear()
	require.True(t, other.Empty())
	_, err = other.PopBack()
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = other.Back()
	require.ErrorIs(t, err, ErrOutOfRange)
}
