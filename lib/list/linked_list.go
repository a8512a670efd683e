package list

import (
	"sort"

	"github.com/benz9527/xcontainer/lib/infra"
)

var (
	ErrListEmpty = infra.NewErrorStack("[doubly-linked-list] empty")
	ErrEraseEnd  = infra.NewErrorStack("[doubly-linked-list] erase element not in list")
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// The root is the sentinel, root.next is the head and root.prev is the tail.
// An empty list links the root to itself.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T comparable](values ...T) LinkedList[T] {
	l := new(doublyLinkedList[T]).init()
	l.AppendValue(values...)
	return l
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) getRootHead() *NodeElement[T] {
	return l.root.next
}

func (l *doublyLinkedList[T]) getRootTail() *NodeElement[T] {
	return l.root.prev
}

func (l *doublyLinkedList[T]) contains(targetE *NodeElement[T]) bool {
	return targetE != nil && targetE != l.root && targetE.listRef == l && targetE.prev != nil && targetE.next != nil
}

// link places e between at and at.next.
func (l *doublyLinkedList[T]) link(e, at *NodeElement[T]) *NodeElement[T] {
	e.listRef = l
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	l.len++
	return e
}

func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) *NodeElement[T] {
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.listRef = nil
	e.next = nil
	e.prev = nil
	l.len--
	return e
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) Empty() bool {
	return l.len == 0
}

func (l *doublyLinkedList[T]) Append(elements ...*NodeElement[T]) []*NodeElement[T] {
	for i := 0; i < len(elements); i++ {
		if e := elements[i]; e != nil && e.listRef == nil {
			l.link(e, l.getRootTail())
		}
	}
	return elements
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}
	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.link(newNodeElement(v, l), l.getRootTail()))
	}
	return newElements
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.link(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.link(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(targetE) {
		return nil
	}
	return l.unlink(targetE)
}

func (l *doublyLinkedList[T]) Erase(targetE *NodeElement[T]) (*NodeElement[T], error) {
	if !l.contains(targetE) {
		return nil, ErrEraseEnd
	}
	next := targetE.Next()
	l.unlink(targetE)
	return next, nil
}

func (l *doublyLinkedList[T]) Clear() {
	for e := l.getRootHead(); e != l.root; {
		next := e.next
		e.listRef, e.prev, e.next = nil, nil, nil
		e = next
	}
	l.root.next, l.root.prev = l.root, l.root
	l.len = 0
}

// Foreach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if fn == nil {
		return nil
	}
	idx := int64(0)
	for iterator := l.getRootHead(); iterator != l.root; idx++ {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
	}
	return nil
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	if fn == nil {
		return
	}
	idx := int64(0)
	for iterator := l.getRootTail(); iterator != l.root; idx++ {
		p := iterator.prev
		fn(idx, iterator)
		iterator = p
	}
}

func (l *doublyLinkedList[T]) FindFirst(targetV T, compareFn ...func(e *NodeElement[T]) bool) (*NodeElement[T], bool) {
	if len(compareFn) <= 0 || compareFn[0] == nil {
		compareFn = []func(e *NodeElement[T]) bool{
			func(e *NodeElement[T]) bool {
				return e.Value == targetV
			},
		}
	}
	for iterator := l.getRootHead(); iterator != l.root; iterator = iterator.next {
		if compareFn[0](iterator) {
			return iterator, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.getRootHead()
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.getRootTail()
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	return l.link(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	return l.link(newNodeElement(v, l), l.getRootTail())
}

func (l *doublyLinkedList[T]) PopFront() (T, error) {
	if l.len == 0 {
		var v T
		return v, ErrListEmpty
	}
	return l.unlink(l.getRootHead()).Value, nil
}

func (l *doublyLinkedList[T]) PopBack() (T, error) {
	if l.len == 0 {
		var v T
		return v, ErrListEmpty
	}
	return l.unlink(l.getRootTail()).Value, nil
}

// move places src next to dst. Ordinarily, dst may be the root.
func (l *doublyLinkedList[T]) move(src, dst *NodeElement[T]) bool {
	if src == dst || dst.next == src {
		return false
	}
	src.prev.next = src.next
	src.next.prev = src.prev

	src.prev = dst
	src.next = dst.next
	dst.next.prev = src
	dst.next = src
	return true
}

func (l *doublyLinkedList[T]) MoveToFront(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) {
		return false
	}
	return l.move(targetE, l.root)
}

func (l *doublyLinkedList[T]) MoveToBack(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) {
		return false
	}
	return l.move(targetE, l.getRootTail())
}

// MoveBefore.
// Ordinarily, it is move srcE just prev to dstE.
func (l *doublyLinkedList[T]) MoveBefore(srcE, dstE *NodeElement[T]) bool {
	if srcE == dstE || !l.contains(srcE) || !l.contains(dstE) {
		return false
	}
	return l.move(srcE, dstE.prev)
}

func (l *doublyLinkedList[T]) MoveAfter(srcE, dstE *NodeElement[T]) bool {
	if srcE == dstE || !l.contains(srcE) || !l.contains(dstE) {
		return false
	}
	return l.move(srcE, dstE)
}

func (l *doublyLinkedList[T]) asList(src LinkedList[T]) (*doublyLinkedList[T], bool) {
	dl, ok := src.(*doublyLinkedList[T])
	// avoid type mismatch and self copy
	if !ok || dl == nil || dl == l {
		return nil, false
	}
	return dl, true
}

func (l *doublyLinkedList[T]) PushFrontList(src LinkedList[T]) {
	dl, ok := l.asList(src)
	if !ok {
		return
	}
	for e := dl.getRootTail(); e != dl.root; e = e.prev {
		l.link(newNodeElement(e.Value, l), l.root)
	}
}

func (l *doublyLinkedList[T]) PushBackList(src LinkedList[T]) {
	dl, ok := l.asList(src)
	if !ok {
		return
	}
	for e := dl.getRootHead(); e != dl.root; e = e.next {
		l.link(newNodeElement(e.Value, l), l.getRootTail())
	}
}

func (l *doublyLinkedList[T]) Splice(dstE *NodeElement[T], src LinkedList[T]) bool {
	dl, ok := l.asList(src)
	if !ok || (dstE != nil && !l.contains(dstE)) {
		return false
	}
	at := l.getRootTail()
	if dstE != nil {
		at = dstE.prev
	}
	for e := dl.getRootTail(); e != dl.root; e = dl.getRootTail() {
		l.link(dl.unlink(e), at)
	}
	return true
}

func (l *doublyLinkedList[T]) Merge(src LinkedList[T], less func(i, j T) bool) {
	dl, ok := l.asList(src)
	if !ok || less == nil {
		return
	}
	at := l.getRootHead()
	for e := dl.getRootHead(); e != dl.root; e = dl.getRootHead() {
		for at != l.root && !less(e.Value, at.Value) {
			at = at.next
		}
		l.link(dl.unlink(e), at.prev)
	}
}

func (l *doublyLinkedList[T]) Reverse() {
	e := l.root
	for {
		e.prev, e.next = e.next, e.prev
		if e = e.prev; e == l.root {
			return
		}
	}
}

func (l *doublyLinkedList[T]) Unique() int64 {
	removed := int64(0)
	for e := l.getRootHead(); e != l.root && e.next != l.root; {
		if next := e.next; next.Value == e.Value {
			l.unlink(next)
			removed++
			continue
		}
		e = e.next
	}
	return removed
}

func (l *doublyLinkedList[T]) Sort(less func(i, j T) bool) {
	if less == nil || l.len < 2 {
		return
	}
	nodes := make([]*NodeElement[T], 0, l.len)
	for e := l.getRootHead(); e != l.root; e = e.next {
		nodes = append(nodes, e)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return less(nodes[i].Value, nodes[j].Value)
	})
	prev := l.root
	for _, e := range nodes {
		prev.next, e.prev = e, prev
		prev = e
	}
	prev.next, l.root.prev = l.root, prev
}

func (l *doublyLinkedList[T]) Resize(n int64, fill T) {
	if n < 0 {
		n = 0
	}
	for l.len > n {
		l.unlink(l.getRootTail())
	}
	for l.len < n {
		l.link(newNodeElement(fill, l), l.getRootTail())
	}
}

// Swap exchanges the elements of both lists. Every element has to be
// relabeled, so it runs in linear time.
func (l *doublyLinkedList[T]) Swap(src LinkedList[T]) {
	dl, ok := l.asList(src)
	if !ok {
		return
	}
	l.root, dl.root = dl.root, l.root
	l.len, dl.len = dl.len, l.len
	relabel := func(list *doublyLinkedList[T]) {
		list.root.listRef = list
		for e := list.getRootHead(); e != list.root; e = e.next {
			e.listRef = list
		}
	}
	relabel(l)
	relabel(dl)
}

func (l *doublyLinkedList[T]) Clone() LinkedList[T] {
	clone := new(doublyLinkedList[T]).init()
	for e := l.getRootHead(); e != l.root; e = e.next {
		clone.link(newNodeElement(e.Value, clone), clone.getRootTail())
	}
	return clone
}
