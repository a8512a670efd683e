package queue

import (
	"github.com/benz9527/xcontainer/lib/tree"
)

type pqItem[E comparable] struct {
	priority int64
	index    int64
	value    E
}

func (item *pqItem[E]) Index() int64 {
	if item == nil {
		return -1
	}
	return item.index
}

func (item *pqItem[E]) Value() (val E) {
	if item == nil {
		// return empty value by default
		return
	}
	return item.value
}

func (item *pqItem[E]) Priority() int64 {
	if item == nil {
		return -1
	}
	return item.priority
}

func (item *pqItem[E]) SetIndex(idx int64) {
	if item == nil {
		return
	}
	item.index = idx
}

// SetPriority must not be called while the item is queued, the queue
// would lose its ordering.
func (item *pqItem[E]) SetPriority(pri int64) {
	if item == nil {
		return
	}
	item.priority = pri
}

func NewPriorityQueueItem[E comparable](val E, pri int64) PQItem[E] {
	return &pqItem[E]{
		priority: pri,
		value:    val,
		index:    -1,
	}
}

func defaultPQItemComparator[E comparable](i, j ReadOnlyPQItem[E]) CmpEnum {
	// The difference of two priorities may overflow int64.
	if pi, pj := i.Priority(), j.Priority(); pi > pj {
		return iGTj
	} else if pi < pj {
		return iLTj
	}
	return iEQj
}

var _ PriorityQueue[int] = (*TreePriorityQueue[int])(nil)

// TreePriorityQueue keeps the items in a duplicate mode rbtree, so the
// items of equal priority pop in push order. Index is the push sequence
// of a queued item and -1 once it is popped.
type TreePriorityQueue[E comparable] struct {
	tree       tree.RBTree[PQItem[E], struct{}]
	comparator PQItemLessThenComparator[E]
	isDesc     bool
	seq        int64
}

func (pq *TreePriorityQueue[E]) Len() int64 {
	return pq.tree.Len()
}

func (pq *TreePriorityQueue[E]) Push(item PQItem[E]) {
	if item == nil {
		return
	}
	item.SetIndex(pq.seq)
	pq.seq++
	pq.tree.InsertDuplicate(item, struct{}{})
}

func (pq *TreePriorityQueue[E]) Pop() ReadOnlyPQItem[E] {
	item, _, err := pq.tree.RemoveMin()
	if err != nil {
		return nil
	}
	item.SetIndex(-1)
	return item
}

func (pq *TreePriorityQueue[E]) Peek() ReadOnlyPQItem[E] {
	if it := pq.tree.Begin(); !it.IsEnd() {
		return it.Key()
	}
	return nil
}

type TreePriorityQueueOption[E comparable] func(*TreePriorityQueue[E])

func NewTreePriorityQueue[E comparable](opts ...TreePriorityQueueOption[E]) PriorityQueue[E] {
	pq := &TreePriorityQueue[E]{}
	for _, o := range opts {
		if o != nil {
			o(pq)
		}
	}
	if pq.comparator == nil {
		pq.comparator = defaultPQItemComparator[E]
	}
	treeOpts := make([]tree.RBTreeOpt[PQItem[E], struct{}], 0, 1)
	if pq.isDesc {
		treeOpts = append(treeOpts, tree.WithRBTreeDesc[PQItem[E], struct{}]())
	}
	pq.tree = tree.NewRBTreeFunc[PQItem[E], struct{}](func(i, j PQItem[E]) bool {
		return pq.comparator(i, j) == iLTj
	}, treeOpts...)
	return pq
}

func WithTreePriorityQueueComparator[E comparable](fn PQItemLessThenComparator[E]) TreePriorityQueueOption[E] {
	return func(pq *TreePriorityQueue[E]) {
		pq.comparator = fn
	}
}

// WithTreePriorityQueueDesc pops the greatest priority first.
func WithTreePriorityQueueDesc[E comparable]() TreePriorityQueueOption[E] {
	return func(pq *TreePriorityQueue[E]) {
		pq.isDesc = true
	}
}
