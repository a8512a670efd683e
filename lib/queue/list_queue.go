package queue

import (
	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/list"
)

var (
	ErrQueueEmpty = infra.NewErrorStack("[queue] empty")
	ErrStackEmpty = infra.NewErrorStack("[stack] empty")
)

var _ Queue[int] = (*listQueue[int])(nil)

type listQueue[T comparable] struct {
	l list.LinkedList[T]
}

func NewQueue[T comparable](vs ...T) Queue[T] {
	return &listQueue[T]{l: list.NewLinkedList[T](vs...)}
}

func (q *listQueue[T]) Len() int64 {
	return q.l.Len()
}

func (q *listQueue[T]) Empty() bool {
	return q.l.Empty()
}

func (q *listQueue[T]) Push(v T) {
	q.l.PushBack(v)
}

func (q *listQueue[T]) PushMany(vs ...T) {
	q.l.AppendValue(vs...)
}

func (q *listQueue[T]) Pop() (T, error) {
	v, err := q.l.PopFront()
	if err != nil {
		return v, ErrQueueEmpty
	}
	return v, nil
}

func (q *listQueue[T]) Front() (T, error) {
	if e := q.l.Front(); e != nil {
		return e.Value, nil
	}
	var v T
	return v, ErrQueueEmpty
}

func (q *listQueue[T]) Back() (T, error) {
	if e := q.l.Back(); e != nil {
		return e.Value, nil
	}
	var v T
	return v, ErrQueueEmpty
}

func (q *listQueue[T]) Swap(other Queue[T]) {
	if o, ok := other.(*listQueue[T]); ok && o != q {
		q.l, o.l = o.l, q.l
	}
}

var _ Stack[int] = (*listStack[int])(nil)

// listStack keeps the top at the back of the list.
type listStack[T comparable] struct {
	l list.LinkedList[T]
}

func NewStack[T comparable](vs ...T) Stack[T] {
	return &listStack[T]{l: list.NewLinkedList[T](vs...)}
}

func (s *listStack[T]) Len() int64 {
	return s.l.Len()
}

func (s *listStack[T]) Empty() bool {
	return s.l.Empty()
}

func (s *listStack[T]) Push(v T) {
	s.l.PushBack(v)
}

func (s *listStack[T]) PushMany(vs ...T) {
	s.l.AppendValue(vs...)
}

func (s *listStack[T]) Pop() (T, error) {
	v, err := s.l.PopBack()
	if err != nil {
		return v, ErrStackEmpty
	}
	return v, nil
}

func (s *listStack[T]) Top() (T, error) {
	if e := s.l.Back(); e != nil {
		return e.Value, nil
	}
	var v T
	return v, ErrStackEmpty
}

func (s *listStack[T]) Swap(other Stack[T]) {
	if o, ok := other.(*listStack[T]); ok && o != s {
		s.l, o.l = o.l, s.l
	}
}
