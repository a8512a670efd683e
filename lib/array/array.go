package array

import (
	"fmt"

	"github.com/benz9527/xcontainer/lib/infra"
)

var (
	ErrCapacityExceeded = infra.NewErrorStack("[array] capacity exceeded")
	ErrOutOfRange       = infra.NewErrorStack("[array] index out of range")
)

func outOfRange(idx, size int) error {
	return infra.WrapErrorStackWithMessage(ErrOutOfRange, fmt.Sprintf("index %d, len %d", idx, size))
}

// Array is a fixed size sequence, its length never changes.
type Array[T any] struct {
	data []T
}

// NewArray allocates n zero values and copies items into the front.
func NewArray[T any](n int, items ...T) (*Array[T], error) {
	if n < 0 || len(items) > n {
		return nil, infra.WrapErrorStackWithMessage(ErrCapacityExceeded,
			fmt.Sprintf("items %d, capacity %d", len(items), n))
	}
	arr := &Array[T]{data: make([]T, n)}
	copy(arr.data, items)
	return arr, nil
}

func (arr *Array[T]) Len() int {
	return len(arr.data)
}

func (arr *Array[T]) MaxSize() int {
	return len(arr.data)
}

func (arr *Array[T]) Empty() bool {
	return len(arr.data) == 0
}

func (arr *Array[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= len(arr.data) {
		var v T
		return v, outOfRange(idx, len(arr.data))
	}
	return arr.data[idx], nil
}

func (arr *Array[T]) Set(idx int, v T) error {
	if idx < 0 || idx >= len(arr.data) {
		return outOfRange(idx, len(arr.data))
	}
	arr.data[idx] = v
	return nil
}

func (arr *Array[T]) Front() (T, error) {
	return arr.At(0)
}

func (arr *Array[T]) Back() (T, error) {
	return arr.At(len(arr.data) - 1)
}

// Data exposes the backing storage.
func (arr *Array[T]) Data() []T {
	return arr.data
}

func (arr *Array[T]) Fill(v T) {
	for i := range arr.data {
		arr.data[i] = v
	}
}

// Swap exchanges the content of two arrays of the same length.
func (arr *Array[T]) Swap(other *Array[T]) error {
	if other == nil || len(other.data) != len(arr.data) {
		return ErrCapacityExceeded
	}
	arr.data, other.data = other.data, arr.data
	return nil
}
