package set

import (
	"github.com/benz9527/xcontainer/lib/tree"
)

// Set keeps unique keys in ascending order of its less function.
type Set[K any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	Begin() tree.RBIterator[K, struct{}]
	End() tree.RBIterator[K, struct{}]
	// Insert returns the element of key and whether it was added.
	Insert(key K) (tree.RBIterator[K, struct{}], bool)
	InsertMany(keys ...K) int64
	Erase(it tree.RBIterator[K, struct{}]) error
	Remove(key K) error
	Find(key K) tree.RBIterator[K, struct{}]
	Contains(key K) bool
	LowerBound(key K) tree.RBIterator[K, struct{}]
	UpperBound(key K) tree.RBIterator[K, struct{}]
	Clear()
	Swap(other Set[K])
	// Merge moves the keys missing here out of other. The colliding keys
	// stay in other.
	Merge(other Set[K])
	Clone() Set[K]
	Move() Set[K]
	Foreach(action func(idx int64, key K) bool)
	Keys() []K
}

// MultiSet keeps equivalent keys in insertion order.
type MultiSet[K any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	Begin() tree.RBIterator[K, struct{}]
	End() tree.RBIterator[K, struct{}]
	Insert(key K) tree.RBIterator[K, struct{}]
	InsertMany(keys ...K) int64
	Erase(it tree.RBIterator[K, struct{}]) error
	// Remove erases the first element equivalent to key.
	Remove(key K) error
	Find(key K) tree.RBIterator[K, struct{}]
	Contains(key K) bool
	Count(key K) int64
	LowerBound(key K) tree.RBIterator[K, struct{}]
	UpperBound(key K) tree.RBIterator[K, struct{}]
	EqualRange(key K) (tree.RBIterator[K, struct{}], tree.RBIterator[K, struct{}])
	Clear()
	Swap(other MultiSet[K])
	// Merge moves every key of other, other becomes empty.
	Merge(other MultiSet[K])
	Clone() MultiSet[K]
	Move() MultiSet[K]
	Foreach(action func(idx int64, key K) bool)
	Keys() []K
}
