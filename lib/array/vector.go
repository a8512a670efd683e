package array

import (
	"github.com/samber/lo"
)

// Vector is a growable sequence with amortized O(1) PushBack.
type Vector[T any] struct {
	data []T
}

func NewVector[T any](items ...T) *Vector[T] {
	v := &Vector[T]{data: make([]T, 0, len(items))}
	v.data = append(v.data, items...)
	return v
}

func (vec *Vector[T]) Len() int {
	return len(vec.data)
}

func (vec *Vector[T]) Empty() bool {
	return len(vec.data) == 0
}

func (vec *Vector[T]) Capacity() int {
	return cap(vec.data)
}

func (vec *Vector[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= len(vec.data) {
		var v T
		return v, outOfRange(idx, len(vec.data))
	}
	return vec.data[idx], nil
}

func (vec *Vector[T]) Set(idx int, v T) error {
	if idx < 0 || idx >= len(vec.data) {
		return outOfRange(idx, len(vec.data))
	}
	vec.data[idx] = v
	return nil
}

func (vec *Vector[T]) Front() (T, error) {
	return vec.At(0)
}

func (vec *Vector[T]) Back() (T, error) {
	return vec.At(len(vec.data) - 1)
}

func (vec *Vector[T]) Data() []T {
	return vec.data
}

func (vec *Vector[T]) PushBack(v T) {
	vec.data = append(vec.data, v)
}

func (vec *Vector[T]) PopBack() (T, error) {
	last, err := vec.Back()
	if err != nil {
		return last, err
	}
	var zero T
	vec.data[len(vec.data)-1] = zero
	vec.data = vec.data[:len(vec.data)-1]
	return last, nil
}

// Insert places v in front of pos, pos == Len() appends.
func (vec *Vector[T]) Insert(pos int, v T) error {
	if pos < 0 || pos > len(vec.data) {
		return outOfRange(pos, len(vec.data))
	}
	var zero T
	vec.data = append(vec.data, zero)
	copy(vec.data[pos+1:], vec.data[pos:])
	vec.data[pos] = v
	return nil
}

func (vec *Vector[T]) Erase(pos int) (T, error) {
	v, err := vec.At(pos)
	if err != nil {
		return v, err
	}
	copy(vec.data[pos:], vec.data[pos+1:])
	var zero T
	vec.data[len(vec.data)-1] = zero
	vec.data = vec.data[:len(vec.data)-1]
	return v, nil
}

// Reserve grows the capacity to at least n, it never shrinks.
func (vec *Vector[T]) Reserve(n int) {
	if n <= cap(vec.data) {
		return
	}
	data := make([]T, len(vec.data), n)
	copy(data, vec.data)
	vec.data = data
}

func (vec *Vector[T]) ShrinkToFit() {
	if len(vec.data) == cap(vec.data) {
		return
	}
	vec.data = append(make([]T, 0, len(vec.data)), vec.data...)
}

// Clear keeps the capacity.
func (vec *Vector[T]) Clear() {
	clear(vec.data)
	vec.data = vec.data[:0]
}

func (vec *Vector[T]) Swap(other *Vector[T]) {
	if other == nil {
		return
	}
	vec.data, other.data = other.data, vec.data
}

// Foreach stops once fn returns false.
func (vec *Vector[T]) Foreach(fn func(idx int, v T) bool) {
	for i, v := range vec.data {
		if !fn(i, v) {
			return
		}
	}
}

// Filter returns a new vector with the elements accepted by fn.
func (vec *Vector[T]) Filter(fn func(idx int, v T) bool) *Vector[T] {
	return &Vector[T]{data: lo.Filter(vec.data, func(v T, idx int) bool {
		return fn(idx, v)
	})}
}
