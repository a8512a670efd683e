package queue

// Queue is the FIFO adapter of a linked list.
type Queue[T comparable] interface {
	Len() int64
	Empty() bool
	Push(v T)
	PushMany(vs ...T)
	Pop() (T, error)
	Front() (T, error)
	Back() (T, error)
	Swap(other Queue[T])
}

// Stack is the LIFO adapter of a linked list.
type Stack[T comparable] interface {
	Len() int64
	Empty() bool
	Push(v T)
	// PushMany pushes in order, the last value becomes the top.
	PushMany(vs ...T)
	Pop() (T, error)
	Top() (T, error)
	Swap(other Stack[T])
}

type PriorityQueue[E comparable] interface {
	Len() int64
	Push(item PQItem[E])
	// Pop returns nil if the queue is empty.
	Pop() ReadOnlyPQItem[E]
	Peek() ReadOnlyPQItem[E]
}

type ReadOnlyPQItem[E comparable] interface {
	Index() int64
	Value() E
	Priority() int64
}

type CmpEnum int64

const (
	iLTj CmpEnum = -1 + iota
	iEQj
	iGTj
)

// PQItemLessThenComparator
// Priority queue item comparator
// if return 1, i > j
// if return 0, i == j
// if return -1, i < j
type PQItemLessThenComparator[E comparable] func(i, j ReadOnlyPQItem[E]) CmpEnum

type PQItem[E comparable] interface {
	ReadOnlyPQItem[E]
	SetIndex(idx int64)
	SetPriority(pri int64)
}
