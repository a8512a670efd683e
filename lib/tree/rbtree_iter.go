package tree

// RBIterator is a position inside a tree, either an element or End().
// It is a small value and is copied freely.
//
// The walk is cyclic: the successor of the last element is End() and the
// successor of End() is the first element, the predecessor walk mirrors it.
//
// An element iterator follows its element. Once the element is merged,
// swapped or moved into another tree the iterator walks that tree.
type RBIterator[K any, V any] struct {
	tree  *rbTree[K, V] // The tree of End(), a hint only for elements.
	arena *rbArena[K, V]
	h     handle
	gen   uint32
}

func (tree *rbTree[K, V]) iter(h handle) RBIterator[K, V] {
	it := RBIterator[K, V]{
		tree:  tree,
		arena: tree.arena,
		h:     h,
	}
	if h != nilHandle {
		it.gen = tree.node(h).gen
	}
	return it
}

func (tree *rbTree[K, V]) Begin() RBIterator[K, V] {
	return tree.iter(tree.header.min)
}

func (tree *rbTree[K, V]) End() RBIterator[K, V] {
	return tree.iter(nilHandle)
}

func (tree *rbTree[K, V]) Back() RBIterator[K, V] {
	return tree.iter(tree.header.max)
}

func (it RBIterator[K, V]) IsEnd() bool {
	return it.h == nilHandle
}

// lookup returns the live node of it and its current handle.
func (it RBIterator[K, V]) lookup() (*rbNode[K, V], handle, bool) {
	if it.arena == nil || it.h == nilHandle {
		return nil, nilHandle, false
	}
	a, h := it.arena.resolve(it.h)
	if !a.contains(h) {
		return nil, nilHandle, false
	}
	x := a.node(h)
	if x.gen != it.gen || x.owner == nil {
		return nil, nilHandle, false
	}
	return x, h, true
}

// Valid reports whether it still references a live element.
// End() is a position without element, it is not valid.
func (it RBIterator[K, V]) Valid() bool {
	_, _, ok := it.lookup()
	return ok
}

func (it RBIterator[K, V]) mustNode() (*rbNode[K, V], handle) {
	if it.h == nilHandle {
		panic(ErrRBTreeEraseEnd)
	}
	x, h, ok := it.lookup()
	if !ok {
		panic(ErrRBTreeStaleIterator)
	}
	return x, h
}

// Next returns the position after it.
func (it RBIterator[K, V]) Next() RBIterator[K, V] {
	if it.h == nilHandle {
		if it.tree == nil {
			panic(ErrRBTreeStaleIterator)
		}
		return it.tree.iter(it.tree.header.min)
	}
	x, h := it.mustNode()
	tree := x.owner.tree
	return tree.iter(tree.successor(h))
}

// Prev returns the position before it.
func (it RBIterator[K, V]) Prev() RBIterator[K, V] {
	if it.h == nilHandle {
		if it.tree == nil {
			panic(ErrRBTreeStaleIterator)
		}
		return it.tree.iter(it.tree.header.max)
	}
	x, h := it.mustNode()
	tree := x.owner.tree
	return tree.iter(tree.predecessor(h))
}

func (it RBIterator[K, V]) Key() K {
	x, _ := it.mustNode()
	return x.key
}

func (it RBIterator[K, V]) Val() V {
	x, _ := it.mustNode()
	return x.val
}

// SetVal replaces the value in place. The key is never mutable, it would
// break the ordering.
func (it RBIterator[K, V]) SetVal(val V) {
	x, _ := it.mustNode()
	x.val = val
}

func (it RBIterator[K, V]) Color() RBColor {
	x, _ := it.mustNode()
	return x.color
}

// Equal reports whether both iterators refer to the same position.
// End() positions are equal within one tree.
func (it RBIterator[K, V]) Equal(other RBIterator[K, V]) bool {
	if it.arena == nil || other.arena == nil {
		return it == other
	}
	if it.h == nilHandle || other.h == nilHandle {
		return it.h == other.h && it.tree == other.tree
	}
	a, h := it.arena.resolve(it.h)
	b, g := other.arena.resolve(other.h)
	return a == b && h == g && it.gen == other.gen
}
