package tree

import (
	"go.uber.org/zap"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/xlog"
)

var (
	ErrRBTreeEraseEnd        = infra.NewErrorStack("[rbtree] erase end iterator")
	ErrRBTreeStaleIterator   = infra.NewErrorStack("[rbtree] stale iterator")
	ErrRBTreeForeignIterator = infra.NewErrorStack("[rbtree] iterator belongs to another tree")
	ErrRBTreeKeyNotFound     = infra.NewErrorStack("[rbtree] key not found")
	ErrRBTreeEmpty           = infra.NewErrorStack("[rbtree] empty element to remove")
	ErrRBTreeArenaExhausted  = infra.NewErrorStack("[rbtree] node arena exhausted")
)

var _ RBTree[int, struct{}] = (*rbTree[int, struct{}])(nil) // Type check assertion

// rbHeader replaces the anchor node. The cached min and max make Begin
// and Back O(1), nilHandle everywhere means an empty tree.
type rbHeader struct {
	root handle
	min  handle
	max  handle
}

func emptyHeader() rbHeader {
	return rbHeader{root: nilHandle, min: nilHandle, max: nilHandle}
}

type rbTree[K any, V any] struct {
	arena          *rbArena[K, V]
	header         rbHeader
	count          int64
	owner          *rbOwner[K, V]
	less           infra.LessFunc[K]
	logger         xlog.XLogger
	isDesc         bool
	isRmBorrowPred bool
}

func (tree *rbTree[K, V]) node(h handle) *rbNode[K, V] {
	return tree.arena.node(h)
}

func (tree *rbTree[K, V]) isRed(h handle) bool {
	return h != nilHandle && tree.node(h).color == Red
}

func (tree *rbTree[K, V]) isBlack(h handle) bool {
	return h == nilHandle || tree.node(h).color == Black
}

func (tree *rbTree[K, V]) minimum(h handle) handle {
	for h != nilHandle && tree.node(h).left != nilHandle {
		h = tree.node(h).left
	}
	return h
}

func (tree *rbTree[K, V]) maximum(h handle) handle {
	for h != nilHandle && tree.node(h).right != nilHandle {
		h = tree.node(h).right
	}
	return h
}

// The succ node of the current node is its next node in sorted order.
// nilHandle means the walk went past the last node.
func (tree *rbTree[K, V]) successor(h handle) handle {
	x := tree.node(h)
	if x.right != nilHandle {
		return tree.minimum(x.right)
	}
	// Backtrack to the first ancestor reached from its left subtree.
	p := x.parent
	for p != nilHandle && h == tree.node(p).right {
		h = p
		p = tree.node(p).parent
	}
	return p
}

// The pred node of the current node is its previous node in sorted order.
func (tree *rbTree[K, V]) predecessor(h handle) handle {
	x := tree.node(h)
	if x.left != nilHandle {
		return tree.maximum(x.left)
	}
	p := x.parent
	for p != nilHandle && h == tree.node(p).left {
		h = p
		p = tree.node(p).parent
	}
	return p
}

// replaceChild links nw into the slot of old under p. A nilHandle p
// means old was the root.
func (tree *rbTree[K, V]) replaceChild(p, old, nw handle) {
	if p == nilHandle {
		tree.header.root = nw
		return
	}
	if pn := tree.node(p); pn.left == old {
		pn.left = nw
	} else {
		pn.right = nw
	}
}

func (tree *rbTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K, V]) Empty() bool {
	return tree.count == 0
}

func (tree *rbTree[K, V]) MaxSize() int64 {
	return maxArenaNodes
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K, V]) leftRotate(x handle) {
	xn := tree.node(x)
	y := xn.right
	if y == nilHandle {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x.right is nil")
	}
	yn := tree.node(y)
	xn.right = yn.left
	if yn.left != nilHandle {
		tree.node(yn.left).parent = x
	}
	yn.parent = xn.parent
	tree.replaceChild(xn.parent, x, y)
	yn.left = x
	xn.parent = y
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K, V]) rightRotate(x handle) {
	xn := tree.node(x)
	y := xn.left
	if y == nilHandle {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x.left is nil")
	}
	yn := tree.node(y)
	xn.left = yn.right
	if yn.right != nilHandle {
		tree.node(yn.right).parent = x
	}
	yn.parent = xn.parent
	tree.replaceChild(xn.parent, x, y)
	yn.right = x
	xn.parent = y
}

// locate descends to the attach point of key. For a unique insert an
// equivalent node stops the descent and is returned as found.
// Equivalent keys of a duplicate insert always turn right, so the ties
// keep their insertion order.
func (tree *rbTree[K, V]) locate(key K, unique bool) (parent handle, toLeft bool, found handle) {
	parent, found = nilHandle, nilHandle
	for x := tree.header.root; x != nilHandle; {
		parent = x
		xn := tree.node(x)
		if tree.less(key, xn.key) {
			toLeft = true
			x = xn.left
		} else if !unique || tree.less(xn.key, key) {
			toLeft = false
			x = xn.right
		} else {
			return parent, false, x
		}
	}
	return parent, toLeft, nilHandle
}

// link attaches a detached node z under parent and rebalances.
// i1: Empty rbtree, z becomes the root, and the root is painted to black.
func (tree *rbTree[K, V]) link(z, parent handle, toLeft bool) {
	zn := tree.node(z)
	zn.parent, zn.left, zn.right = parent, nilHandle, nilHandle
	zn.color = Red

	if /* i1 */ parent == nilHandle {
		tree.header.root, tree.header.min, tree.header.max = z, z, z
	} else if pn := tree.node(parent); toLeft {
		pn.left = z
		if parent == tree.header.min {
			tree.header.min = z
		}
	} else {
		pn.right = z
		if parent == tree.header.max {
			tree.header.max = z
		}
	}
	tree.count++
	tree.insertRebalance(z)
}

func (tree *rbTree[K, V]) insert(key K, val V, unique bool) (handle, bool) {
	parent, toLeft, found := tree.locate(key, unique)
	if found != nilHandle {
		return found, false
	}
	z := tree.arena.alloc(key, val, tree.owner)
	tree.link(z, parent, toLeft)
	return z, true
}

func (tree *rbTree[K, V]) InsertUnique(key K, val V) (RBIterator[K, V], bool) {
	h, ok := tree.insert(key, val, true)
	return tree.iter(h), ok
}

func (tree *rbTree[K, V]) InsertDuplicate(key K, val V) RBIterator[K, V] {
	h, _ := tree.insert(key, val, false)
	return tree.iter(h)
}

func (tree *rbTree[K, V]) InsertManyUnique(items ...KeyVal[K, V]) []InsertResult[K, V] {
	res := make([]InsertResult[K, V], 0, len(items))
	for _, item := range items {
		it, ok := tree.InsertUnique(item.Key, item.Val)
		res = append(res, InsertResult[K, V]{Iter: it, Inserted: ok})
	}
	return res
}

func (tree *rbTree[K, V]) InsertManyDuplicate(items ...KeyVal[K, V]) []InsertResult[K, V] {
	res := make([]InsertResult[K, V], 0, len(items))
	for _, item := range items {
		res = append(res, InsertResult[K, V]{Iter: tree.InsertDuplicate(item.Key, item.Val), Inserted: true})
	}
	return res
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: Current node X's parent P is black, so hold p3 and p4.

im2: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Continue to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im3: The parent P is red but the uncle U is black. (red-violation)
X is the inner grandchild. Rotate P to the opposite direction.
After rotation it is still red-violation. Here must enter im4 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im4: X is the outer grandchild.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]

The root is repainted into black at last.
*/
func (tree *rbTree[K, V]) insertRebalance(x handle) {
	for {
		p := tree.node(x).parent
		if /* im1 */ p == nilHandle || tree.isBlack(p) {
			break
		}
		// The red parent is never the root, so the grandpa exists.
		g := tree.node(p).parent
		if p == tree.node(g).left {
			if u := tree.node(g).right; /* im2 */ tree.isRed(u) {
				tree.node(p).color = Black
				tree.node(u).color = Black
				tree.node(g).color = Red
				x = g
				continue
			}
			if /* im3 */ x == tree.node(p).right {
				x = p
				tree.leftRotate(x)
				p = tree.node(x).parent
			}
			/* im4 */
			tree.node(p).color = Black
			tree.node(g).color = Red
			tree.rightRotate(g)
		} else {
			if u := tree.node(g).left; /* im2 */ tree.isRed(u) {
				tree.node(p).color = Black
				tree.node(u).color = Black
				tree.node(g).color = Red
				x = g
				continue
			}
			if /* im3 */ x == tree.node(p).left {
				x = p
				tree.rightRotate(x)
				p = tree.node(x).parent
			}
			/* im4 */
			tree.node(p).color = Black
			tree.node(g).color = Red
			tree.leftRotate(g)
		}
	}
	tree.node(tree.header.root).color = Black
}

/*
swapPosition exchanges the places of node A and node B in the graph,
B is A's pred or succ, so it lives inside A's subtree.
Only links and colors move, the payloads stay where they are. So the
iterators referencing A or B are still bound to their own elements.

Swap with succ:

	  |                    |
	  A                    B
	 / \                  / \
	L  ..   swap(A, B)   L  ..
		|   =========>       |
		P                    P
	   / \                  / \
	  B  ..                A  ..
*/
func (tree *rbTree[K, V]) swapPosition(a, b handle) {
	an, bn := tree.node(a), tree.node(b)
	ap, al, ar := an.parent, an.left, an.right
	bp, bl, br := bn.parent, bn.left, bn.right

	tree.replaceChild(ap, a, b)
	if /* adjacent */ bp == a {
		if al == b {
			bn.left, bn.right = a, ar
		} else {
			bn.left, bn.right = al, a
		}
		an.parent = b
	} else {
		bn.left, bn.right = al, ar
		an.parent = bp
		tree.replaceChild(bp, b, a)
	}
	bn.parent = ap
	an.left, an.right = bl, br

	for _, c := range [...]handle{an.left, an.right} {
		if c != nilHandle {
			tree.node(c).parent = a
		}
	}
	for _, c := range [...]handle{bn.left, bn.right} {
		if c != nilHandle {
			tree.node(c).parent = b
		}
	}
	an.color, bn.color = bn.color, an.color
}

/*
detach unlinks node Z from the graph without releasing its slot.

r1: Z has left and right node.
Swap the position of Z with its succ (or pred), then Z has at most one child.

r2: Z has a single child. Z must be black and the child must be red
(See conclusion. Otherwise, black-violation). Replace Z by the child and
repaint the child into black.

r3: (1) Z is a red leaf node, remove directly.

r3: (2) Z is a black leaf node, we have to rebalance before unlinking it.
(black-violation)
*/
func (tree *rbTree[K, V]) detach(z handle) {
	if zn := tree.node(z); /* r1 */ zn.left != nilHandle && zn.right != nilHandle {
		var y handle
		if tree.isRmBorrowPred {
			y = tree.maximum(zn.left)
		} else {
			y = tree.minimum(zn.right)
		}
		tree.swapPosition(z, y)
	}

	// Z is the leftmost or rightmost node with at most one child here.
	if tree.header.min == z {
		tree.header.min = tree.successor(z)
	}
	if tree.header.max == z {
		tree.header.max = tree.predecessor(z)
	}

	zn := tree.node(z)
	child := zn.left
	if child == nilHandle {
		child = zn.right
	}

	if /* r2 */ child != nilHandle {
		cn := tree.node(child)
		cn.parent = zn.parent
		tree.replaceChild(zn.parent, z, child)
		cn.color = Black
	} else {
		if /* r3 (2) */ zn.color == Black && zn.parent != nilHandle {
			tree.removeRebalance(z)
		}
		tree.replaceChild(zn.parent, z, nilHandle)
	}

	zn.parent, zn.left, zn.right = nilHandle, nilHandle, nilHandle
	tree.count--
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X is the black leaf about to be unlinked, it carries an extra black.
Sc is the same direction to X and it X's sibling's child node.
Sd is the opposite direction to X and it X's sibling's child node.

rm1: Current node X's sibling S is red, so the parent P, nephew node Sc and Sd
must be black. (Otherwise, red-violation)
(1) Repaint S into black, P into red.
(2) X is left node of P, left rotate P. X is right node of P, right rotate P.
Enter rm2-rm4 with the new black sibling.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: The sibling S, nephew node Sc and Sd are black.
Repaint S into red to satisfy p4 locally. If P is red, repaint it into
black and the extra black is gone. Otherwise, continue to handle P.

	  {P}             {P}
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: Current node X's sibling S is black, nephew node Sc is red and Sd
is black. Ignore X's parent P's color (red or black is okay)
(1) If X is left node of P, right rotate S.
(2) If X is right node of P, left rotate S.
(3) Repaint S into red, Sc into black
Enter into rm4 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm4: Current node X's sibling S is black and the nephew node Sd is red.
(1) Paint S with P's color, repaint P and Sd into black.
(2) If X is left node of P, left rotate P. Otherwise, right rotate P.
The black height is restored, exit.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[K, V]) removeRebalance(x handle) {
	for x != tree.header.root && tree.isBlack(x) {
		p := tree.node(x).parent
		if x == tree.node(p).left {
			s := tree.node(p).right
			if /* rm1 */ tree.isRed(s) {
				tree.node(s).color = Black
				tree.node(p).color = Red
				tree.leftRotate(p)
				s = tree.node(p).right
			}
			sn := tree.node(s)
			if /* rm2 */ tree.isBlack(sn.left) && tree.isBlack(sn.right) {
				sn.color = Red
				x = p
				continue
			}
			if /* rm3 */ tree.isBlack(sn.right) {
				tree.node(sn.left).color = Black
				sn.color = Red
				tree.rightRotate(s)
				s = tree.node(p).right
				sn = tree.node(s)
			}
			/* rm4 */
			sn.color = tree.node(p).color
			tree.node(p).color = Black
			tree.node(sn.right).color = Black
			tree.leftRotate(p)
			x = tree.header.root
		} else {
			s := tree.node(p).left
			if /* rm1 */ tree.isRed(s) {
				tree.node(s).color = Black
				tree.node(p).color = Red
				tree.rightRotate(p)
				s = tree.node(p).left
			}
			sn := tree.node(s)
			if /* rm2 */ tree.isBlack(sn.left) && tree.isBlack(sn.right) {
				sn.color = Red
				x = p
				continue
			}
			if /* rm3 */ tree.isBlack(sn.left) {
				tree.node(sn.right).color = Black
				sn.color = Red
				tree.leftRotate(s)
				s = tree.node(p).left
				sn = tree.node(s)
			}
			/* rm4 */
			sn.color = tree.node(p).color
			tree.node(p).color = Black
			tree.node(sn.left).color = Black
			tree.rightRotate(p)
			x = tree.header.root
		}
	}
	tree.node(x).color = Black
}

// checkIterator returns the handle of it inside the arena of the tree.
func (tree *rbTree[K, V]) checkIterator(it RBIterator[K, V]) (handle, error) {
	if it.h == nilHandle {
		if it.tree != tree {
			return nilHandle, ErrRBTreeForeignIterator
		}
		return nilHandle, ErrRBTreeEraseEnd
	}
	x, h, ok := it.lookup()
	switch {
	case !ok:
		return nilHandle, ErrRBTreeStaleIterator
	case x.owner != tree.owner:
		return nilHandle, ErrRBTreeForeignIterator
	default:
	}
	return h, nil
}

func (tree *rbTree[K, V]) Erase(it RBIterator[K, V]) error {
	h, err := tree.checkIterator(it)
	if err != nil {
		tree.logger.Warn("[rbtree] erase rejected", zap.Error(err), zap.Int64("len", tree.count))
		return err
	}
	tree.detach(h)
	tree.arena.free(h)
	return nil
}

func (tree *rbTree[K, V]) removeHandle(h handle) (key K, val V) {
	x := tree.node(h)
	key, val = x.key, x.val
	tree.detach(h)
	tree.arena.free(h)
	return key, val
}

func (tree *rbTree[K, V]) Remove(key K) (K, V, error) {
	if tree.count <= 0 {
		var val V
		return key, val, ErrRBTreeEmpty
	}
	h := tree.lowerBound(key)
	if h == nilHandle || tree.less(key, tree.node(h).key) {
		var val V
		return key, val, ErrRBTreeKeyNotFound
	}
	k, v := tree.removeHandle(h)
	return k, v, nil
}

func (tree *rbTree[K, V]) RemoveMin() (K, V, error) {
	if tree.count <= 0 {
		var (
			key K
			val V
		)
		return key, val, ErrRBTreeEmpty
	}
	k, v := tree.removeHandle(tree.header.min)
	return k, v, nil
}

// Foreach is the inorder traversal driven by the successor walk.
// It stops once action returns false.
func (tree *rbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	idx := int64(0)
	for h := tree.header.min; h != nilHandle; h = tree.successor(h) {
		x := tree.node(h)
		if !action(idx, x.color, x.key, x.val) {
			return
		}
		idx++
	}
}

func (tree *rbTree[K, V]) ReverseForeach(action func(idx int64, color RBColor, key K, val V) bool) {
	idx := int64(0)
	for h := tree.header.max; h != nilHandle; h = tree.predecessor(h) {
		x := tree.node(h)
		if !action(idx, x.color, x.key, x.val) {
			return
		}
		idx++
	}
}

type RBTreeOpt[K any, V any] func(*rbTree[K, V])

// WithRBTreeDesc reverses the ordering, the largest key comes first.
func WithRBTreeDesc[K any, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isDesc = true
	}
}

// WithRBTreeRemoveBorrowPred makes the erase of a node with two children
// swap with the pred instead of the succ.
func WithRBTreeRemoveBorrowPred[K any, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isRmBorrowPred = true
	}
}

func WithRBTreeLogger[K any, V any](logger xlog.XLogger) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		if logger != nil {
			tree.logger = logger
		}
	}
}

func WithRBTreeArenaCapacity[K any, V any](capacity int) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.arena = newRBArena[K, V](capacity)
	}
}

// WithRBTreeSharedArena places the nodes into the arena of other.
// Merging between trees of one arena only relinks the nodes, it never has
// to take over or relocate node storage.
func WithRBTreeSharedArena[K any, V any](other RBTree[K, V]) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		if o := asRBTree[K, V](other); o != nil {
			tree.arena = o.arena
		}
	}
}

// NewRBTree orders the keys by the natural order of K.
func NewRBTree[K infra.OrderedKey, V any](opts ...RBTreeOpt[K, V]) RBTree[K, V] {
	return NewRBTreeFunc[K, V](infra.OrderedLess[K], opts...)
}

// NewRBTreeFunc orders the keys by less, a strict weak ordering.
func NewRBTreeFunc[K any, V any](less infra.LessFunc[K], opts ...RBTreeOpt[K, V]) RBTree[K, V] {
	return newRBTree[K, V](less, opts...)
}

func newRBTree[K any, V any](less infra.LessFunc[K], opts ...RBTreeOpt[K, V]) *rbTree[K, V] {
	if less == nil {
		panic( /* debug assertion */ "[rbtree] nil less function")
	}
	tree := &rbTree[K, V]{
		header: emptyHeader(),
		less:   less,
	}
	for _, o := range opts {
		o(tree)
	}
	if tree.arena == nil {
		tree.arena = newRBArena[K, V](0)
	}
	tree.arena.users++
	tree.owner = &rbOwner[K, V]{tree: tree}
	if tree.logger == nil {
		tree.logger = xlog.NewNopXLogger()
	}
	if tree.isDesc {
		tree.less = infra.ReverseLess[K](tree.less)
	}
	return tree
}

func asRBTree[K any, V any](tree RBTree[K, V]) *rbTree[K, V] {
	t, ok := tree.(*rbTree[K, V])
	if !ok {
		return nil
	}
	return t
}
