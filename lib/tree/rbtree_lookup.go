package tree

// lowerBound returns the first node whose key is not less than key.
func (tree *rbTree[K, V]) lowerBound(key K) handle {
	res := nilHandle
	for x := tree.header.root; x != nilHandle; {
		xn := tree.node(x)
		if tree.less(xn.key, key) {
			x = xn.right
		} else {
			res = x
			x = xn.left
		}
	}
	return res
}

// upperBound returns the first node whose key is greater than key.
func (tree *rbTree[K, V]) upperBound(key K) handle {
	res := nilHandle
	for x := tree.header.root; x != nilHandle; {
		xn := tree.node(x)
		if tree.less(key, xn.key) {
			res = x
			x = xn.left
		} else {
			x = xn.right
		}
	}
	return res
}

// Find returns the first element equivalent to key, or End().
func (tree *rbTree[K, V]) Find(key K) RBIterator[K, V] {
	h := tree.lowerBound(key)
	if h == nilHandle || tree.less(key, tree.node(h).key) {
		return tree.End()
	}
	return tree.iter(h)
}

func (tree *rbTree[K, V]) Contains(key K) bool {
	return !tree.Find(key).IsEnd()
}

func (tree *rbTree[K, V]) Count(key K) int64 {
	n := int64(0)
	for h := tree.lowerBound(key); h != nilHandle && !tree.less(key, tree.node(h).key); h = tree.successor(h) {
		n++
	}
	return n
}

func (tree *rbTree[K, V]) LowerBound(key K) RBIterator[K, V] {
	return tree.iter(tree.lowerBound(key))
}

func (tree *rbTree[K, V]) UpperBound(key K) RBIterator[K, V] {
	return tree.iter(tree.upperBound(key))
}

// EqualRange is the half-open range [LowerBound, UpperBound) of key.
func (tree *rbTree[K, V]) EqualRange(key K) (RBIterator[K, V], RBIterator[K, V]) {
	return tree.LowerBound(key), tree.UpperBound(key)
}
