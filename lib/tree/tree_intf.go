package tree

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "RBColor(unknown)"
}

// KeyVal is a single payload for the bulk inserts.
type KeyVal[K any, V any] struct {
	Key K
	Val V
}

// InsertResult reports one element of a bulk insert.
// Inserted is false when a unique insert met an equivalent key, then
// Iter points to the element already in the tree.
type InsertResult[K any, V any] struct {
	Iter     RBIterator[K, V]
	Inserted bool
}

// RBTree is an ordered container of (key, value) nodes.
//
// Absence is reported by End() rather than by an error. An iterator keeps
// pointing to the same element while unrelated elements are inserted or
// erased, and it follows the element into another tree through Merge, Swap
// and Move. It is invalidated once its element is erased (Erase, Clear,
// Release).
type RBTree[K any, V any] interface {
	Len() int64
	Empty() bool
	// MaxSize is the upper bound of live nodes in one node arena.
	MaxSize() int64

	Begin() RBIterator[K, V]
	End() RBIterator[K, V]
	// Back returns the last element or End() if the tree is empty.
	Back() RBIterator[K, V]

	// InsertUnique links a new node unless an equivalent key exists. In that
	// case the tree is untouched and the existing element is returned with false.
	InsertUnique(key K, val V) (RBIterator[K, V], bool)
	// InsertDuplicate always links a new node. Equivalent keys are kept in
	// insertion order.
	InsertDuplicate(key K, val V) RBIterator[K, V]
	InsertManyUnique(items ...KeyVal[K, V]) []InsertResult[K, V]
	InsertManyDuplicate(items ...KeyVal[K, V]) []InsertResult[K, V]

	// Erase removes the element referenced by it. End(), stale and foreign
	// iterators are rejected with an error and leave the tree untouched.
	Erase(it RBIterator[K, V]) error
	// Remove erases the first element equivalent to key.
	Remove(key K) (K, V, error)
	RemoveMin() (K, V, error)

	Find(key K) RBIterator[K, V]
	Contains(key K) bool
	Count(key K) int64
	LowerBound(key K) RBIterator[K, V]
	UpperBound(key K) RBIterator[K, V]
	EqualRange(key K) (RBIterator[K, V], RBIterator[K, V])

	// Merge moves the nodes of other into the tree without copying them,
	// unless both node arenas are shared with further trees.
	// Without duplicates, a node whose key already exists here stays in other.
	Merge(other RBTree[K, V], allowDuplicates bool)
	Swap(other RBTree[K, V])
	// Clone is the deep copy, nodes are never shared with the source.
	Clone() RBTree[K, V]
	// CopyFrom replaces the content with a deep copy of src.
	CopyFrom(src RBTree[K, V])
	// Move transfers all nodes into a new tree and leaves the source empty.
	Move() RBTree[K, V]
	// MoveFrom replaces the content with the nodes of src and leaves src empty.
	MoveFrom(src RBTree[K, V])

	Clear()
	// Release clears the tree and drops its node storage.
	Release()

	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	ReverseForeach(action func(idx int64, color RBColor, key K, val V) bool)
}
