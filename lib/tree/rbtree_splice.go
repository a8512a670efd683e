package tree

import (
	"go.uber.org/zap"
)

// Merge moves nodes from other in the ascending order of other.
// The nodes are relinked, never copied: trees of one arena exchange them
// directly, and an arena used by a single tree is first absorbed into the
// arena of the other tree. Only if both arenas are shared with further
// trees the payloads are relocated, then the iterators of the moved
// elements are invalidated.
func (tree *rbTree[K, V]) Merge(other RBTree[K, V], allowDuplicates bool) {
	src := asRBTree[K, V](other)
	if src == nil || src == tree || src.count <= 0 {
		return
	}

	absorbed := tree.unifyArena(src)
	shared := src.arena == tree.arena
	moved, skipped := int64(0), int64(0)
	for h := src.header.min; h != nilHandle; {
		next := src.successor(h)
		parent, toLeft, found := tree.locate(src.node(h).key, !allowDuplicates)
		if found != nilHandle {
			skipped++
			h = next
			continue
		}

		src.detach(h)
		if shared {
			tree.node(h).owner = tree.owner
			tree.link(h, parent, toLeft)
		} else {
			x := src.node(h)
			nh := tree.arena.alloc(x.key, x.val, tree.owner)
			src.arena.free(h)
			tree.link(nh, parent, toLeft)
		}
		moved++
		h = next
	}
	tree.logger.Debug("[rbtree] merge",
		zap.Int64("moved", moved),
		zap.Int64("skipped", skipped),
		zap.Bool("sharedArena", shared),
		zap.Bool("absorbedArena", absorbed),
	)
}

// unifyArena places the nodes of both trees into one arena. The arena of
// the tree that uses it alone is absorbed by the other arena.
func (tree *rbTree[K, V]) unifyArena(src *rbTree[K, V]) bool {
	if tree.arena == src.arena {
		return false
	}
	if src.arena.users == 1 && src.handOverTo(tree.arena) {
		return true
	}
	return tree.arena.users == 1 && tree.handOverTo(src.arena)
}

func (tree *rbTree[K, V]) handOverTo(a *rbArena[K, V]) bool {
	base, ok := a.absorb(tree.arena)
	if !ok {
		return false
	}
	for _, h := range []*handle{&tree.header.root, &tree.header.min, &tree.header.max} {
		if *h != nilHandle {
			*h += base
		}
	}
	tree.arena = a
	a.users++
	return true
}

// Swap exchanges the content and the ordering of both trees. The
// iterators of the elements follow them into the other tree.
func (tree *rbTree[K, V]) Swap(other RBTree[K, V]) {
	o := asRBTree[K, V](other)
	if o == nil || o == tree {
		return
	}
	tree.arena, o.arena = o.arena, tree.arena
	tree.header, o.header = o.header, tree.header
	tree.count, o.count = o.count, tree.count
	tree.less, o.less = o.less, tree.less
	tree.isDesc, o.isDesc = o.isDesc, tree.isDesc
	tree.owner, o.owner = o.owner, tree.owner
	tree.owner.tree, o.owner.tree = tree, o
}

type copyFrame struct {
	src    handle
	parent handle
	toLeft bool
}

// copyNodes rebuilds the shape of src inside the empty dst.
func copyNodes[K any, V any](dst, src *rbTree[K, V]) {
	if src.header.root == nilHandle {
		return
	}
	stack := make([]copyFrame, 0, 64)
	stack = append(stack, copyFrame{src: src.header.root, parent: nilHandle})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x := src.node(f.src)
		h := dst.arena.alloc(x.key, x.val, dst.owner)
		n := dst.node(h)
		n.color = x.color
		n.parent = f.parent
		dst.replaceChildAt(f.parent, f.toLeft, h)

		if x.right != nilHandle {
			stack = append(stack, copyFrame{src: x.right, parent: h, toLeft: false})
		}
		if x.left != nilHandle {
			stack = append(stack, copyFrame{src: x.left, parent: h, toLeft: true})
		}
	}
	dst.header.min = dst.minimum(dst.header.root)
	dst.header.max = dst.maximum(dst.header.root)
	dst.count = src.count
}

func (tree *rbTree[K, V]) replaceChildAt(p handle, toLeft bool, nw handle) {
	switch {
	case p == nilHandle:
		tree.header.root = nw
	case toLeft:
		tree.node(p).left = nw
	default:
		tree.node(p).right = nw
	}
}

func (tree *rbTree[K, V]) Clone() RBTree[K, V] {
	clone := &rbTree[K, V]{
		arena:          newRBArena[K, V](int(tree.count)),
		header:         emptyHeader(),
		less:           tree.less,
		logger:         tree.logger,
		isDesc:         tree.isDesc,
		isRmBorrowPred: tree.isRmBorrowPred,
	}
	clone.arena.users++
	clone.owner = &rbOwner[K, V]{tree: clone}
	copyNodes(clone, tree)
	return clone
}

// CopyFrom adopts the ordering of src as well.
func (tree *rbTree[K, V]) CopyFrom(src RBTree[K, V]) {
	s := asRBTree[K, V](src)
	if s == nil || s == tree {
		return
	}
	tree.Clear()
	tree.less = s.less
	tree.isDesc = s.isDesc
	copyNodes(tree, s)
}

// Move keeps the arena of the source, the new tree shares it. The
// iterators of the elements follow them into the new tree.
func (tree *rbTree[K, V]) Move() RBTree[K, V] {
	moved := &rbTree[K, V]{
		arena:          tree.arena,
		header:         tree.header,
		count:          tree.count,
		owner:          tree.owner,
		less:           tree.less,
		logger:         tree.logger,
		isDesc:         tree.isDesc,
		isRmBorrowPred: tree.isRmBorrowPred,
	}
	moved.owner.tree = moved
	tree.arena.users++
	tree.owner = &rbOwner[K, V]{tree: tree}
	tree.header = emptyHeader()
	tree.count = 0
	return moved
}

func (tree *rbTree[K, V]) MoveFrom(src RBTree[K, V]) {
	s := asRBTree[K, V](src)
	if s == nil || s == tree {
		return
	}
	tree.Clear()
	tree.arena.users--
	tree.arena = s.arena
	tree.arena.users++
	tree.header = s.header
	tree.count = s.count
	tree.less = s.less
	tree.isDesc = s.isDesc
	// The emptied owner of the tree goes to src.
	tree.owner, s.owner = s.owner, tree.owner
	tree.owner.tree, s.owner.tree = tree, s

	s.header = emptyHeader()
	s.count = 0
}

// Clear is a postorder teardown following the parent links, it needs
// no auxiliary stack.
func (tree *rbTree[K, V]) Clear() {
	for h := tree.header.root; h != nilHandle; {
		x := tree.node(h)
		if x.left != nilHandle {
			h = x.left
			continue
		}
		if x.right != nilHandle {
			h = x.right
			continue
		}
		p := x.parent
		tree.replaceChild(p, h, nilHandle)
		tree.arena.free(h)
		h = p
	}
	tree.header = emptyHeader()
	tree.count = 0
}

func (tree *rbTree[K, V]) Release() {
	n := tree.count
	tree.Clear()
	tree.arena.users--
	tree.arena = newRBArena[K, V](0)
	tree.arena.users++
	tree.logger.Debug("[rbtree] release", zap.Int64("released", n))
}
