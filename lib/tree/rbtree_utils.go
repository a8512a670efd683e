package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xcontainer/lib/infra"
)

var (
	errRBTreeRedViolation   = infra.NewErrorStack("rbtree red violation")
	errRBTreeBlackViolation = infra.NewErrorStack("rbtree black violation")
	errRBTreeOrderViolation = infra.NewErrorStack("rbtree order violation")
	errRBTreeLinkViolation  = infra.NewErrorStack("rbtree link violation")
)

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

func blackDepthTo[K any, V any](tree *rbTree[K, V], target, to handle) int {
	depth := 0
	for aux := target; aux != to; aux = tree.node(aux).parent {
		if tree.isBlack(aux) {
			depth++
		}
	}
	return depth
}

// Inorder traversal to validate the rbtree red properties.
func RedViolationValidate[K any, V any](tree RBTree[K, V]) error {
	t := asRBTree[K, V](tree)
	if t == nil || t.header.root == nilHandle {
		return nil
	}
	if t.isRed(t.header.root) {
		return infra.WrapErrorStackWithMessage(errRBTreeRedViolation, "red root")
	}
	for h := t.header.min; h != nilHandle; h = t.successor(h) {
		if x := t.node(h); x.color == Red && (t.isRed(x.parent) || t.isRed(x.left) || t.isRed(x.right)) {
			return errRBTreeRedViolation
		}
	}
	return nil
}

// Every leaf node has the same number of black nodes to the root.
func BlackViolationValidate[K any, V any](tree RBTree[K, V]) error {
	t := asRBTree[K, V](tree)
	if t == nil || t.header.root == nilHandle {
		return nil
	}
	expected := -1
	for h := t.header.min; h != nilHandle; h = t.successor(h) {
		if x := t.node(h); x.left != nilHandle && x.right != nilHandle {
			continue
		}
		depth := blackDepthTo(t, h, nilHandle)
		if expected < 0 {
			expected = depth
		} else if depth != expected {
			return errRBTreeBlackViolation
		}
	}
	return nil
}

// Adjacent elements are never in the reverse order.
func OrderViolationValidate[K any, V any](tree RBTree[K, V]) error {
	t := asRBTree[K, V](tree)
	if t == nil {
		return nil
	}
	for h := t.header.min; h != nilHandle; {
		next := t.successor(h)
		if next != nilHandle && t.less(t.node(next).key, t.node(h).key) {
			return errRBTreeOrderViolation
		}
		h = next
	}
	return nil
}

// LinkViolationValidate checks the parent links, the node owners, the
// cached bounds and the size.
func LinkViolationValidate[K any, V any](tree RBTree[K, V]) error {
	t := asRBTree[K, V](tree)
	if t == nil {
		return nil
	}
	if t.header.root == nilHandle {
		if t.header.min != nilHandle || t.header.max != nilHandle || t.count != 0 {
			return errRBTreeLinkViolation
		}
		return nil
	}
	if t.node(t.header.root).parent != nilHandle ||
		t.header.min != t.minimum(t.header.root) ||
		t.header.max != t.maximum(t.header.root) {
		return errRBTreeLinkViolation
	}
	n := int64(0)
	for h := t.header.min; h != nilHandle; h = t.successor(h) {
		x := t.node(h)
		if !x.inUse || x.owner != t.owner ||
			(x.left != nilHandle && t.node(x.left).parent != h) ||
			(x.right != nilHandle && t.node(x.right).parent != h) {
			return errRBTreeLinkViolation
		}
		n++
	}
	if n != t.count {
		return infra.WrapErrorStackWithMessage(errRBTreeLinkViolation,
			fmt.Sprintf("size %d, reachable %d", t.count, n))
	}
	return nil
}

// Validate combines all rbtree rule checks.
func Validate[K any, V any](tree RBTree[K, V]) error {
	return multierr.Combine(
		LinkViolationValidate[K, V](tree),
		OrderViolationValidate[K, V](tree),
		RedViolationValidate[K, V](tree),
		BlackViolationValidate[K, V](tree),
	)
}
