package kv

import (
	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
)

var ErrKeyNotFound = infra.NewErrorStack("[kv] key not found")

type KeyFilterFunc[K any] func(key K) bool

func defaultAllKeysFilter[K any](key K) bool {
	return true
}

// TreeMap is an ordered map with unique keys.
type TreeMap[K any, V any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	Begin() tree.RBIterator[K, V]
	End() tree.RBIterator[K, V]
	// Insert keeps the existing value if key is present.
	Insert(key K, val V) (tree.RBIterator[K, V], bool)
	// InsertOrAssign overwrites the existing value. The bool reports
	// whether a new element was added.
	InsertOrAssign(key K, val V) (tree.RBIterator[K, V], bool)
	// At is the checked access, it fails with ErrKeyNotFound.
	At(key K) (V, error)
	// GetOrInsert returns the element of key, a zero value element is
	// added if key is absent.
	GetOrInsert(key K) tree.RBIterator[K, V]
	Erase(it tree.RBIterator[K, V]) error
	Remove(key K) (V, error)
	Find(key K) tree.RBIterator[K, V]
	Contains(key K) bool
	LowerBound(key K) tree.RBIterator[K, V]
	UpperBound(key K) tree.RBIterator[K, V]
	Clear()
	Swap(other TreeMap[K, V])
	// Merge moves the entries whose keys are missing here out of other.
	// The iterators of the moved entries keep referring to them.
	Merge(other TreeMap[K, V])
	Clone() TreeMap[K, V]
	Move() TreeMap[K, V]
	Foreach(action func(idx int64, key K, val V) bool)
	// Keys lists the keys accepted by any of the filters, all keys
	// without filters.
	Keys(filters ...KeyFilterFunc[K]) []K
	Values() []V
	Entries() []tree.KeyVal[K, V]
}
