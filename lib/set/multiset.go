package set

import (
	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
)

var _ MultiSet[int] = (*rbMultiSet[int])(nil)

type rbMultiSet[K any] struct {
	tree tree.RBTree[K, struct{}]
}

func (s *rbMultiSet[K]) Len() int64 {
	return s.tree.Len()
}

func (s *rbMultiSet[K]) Empty() bool {
	return s.tree.Empty()
}

func (s *rbMultiSet[K]) MaxSize() int64 {
	return s.tree.MaxSize()
}

func (s *rbMultiSet[K]) Begin() tree.RBIterator[K, struct{}] {
	return s.tree.Begin()
}

func (s *rbMultiSet[K]) End() tree.RBIterator[K, struct{}] {
	return s.tree.End()
}

func (s *rbMultiSet[K]) Insert(key K) tree.RBIterator[K, struct{}] {
	return s.tree.InsertDuplicate(key, struct{}{})
}

func (s *rbMultiSet[K]) InsertMany(keys ...K) int64 {
	return int64(len(s.tree.InsertManyDuplicate(toKeyVals(keys)...)))
}

func (s *rbMultiSet[K]) Erase(it tree.RBIterator[K, struct{}]) error {
	return s.tree.Erase(it)
}

func (s *rbMultiSet[K]) Remove(key K) error {
	_, _, err := s.tree.Remove(key)
	return err
}

func (s *rbMultiSet[K]) Find(key K) tree.RBIterator[K, struct{}] {
	return s.tree.Find(key)
}

func (s *rbMultiSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *rbMultiSet[K]) Count(key K) int64 {
	return s.tree.Count(key)
}

func (s *rbMultiSet[K]) LowerBound(key K) tree.RBIterator[K, struct{}] {
	return s.tree.LowerBound(key)
}

func (s *rbMultiSet[K]) UpperBound(key K) tree.RBIterator[K, struct{}] {
	return s.tree.UpperBound(key)
}

func (s *rbMultiSet[K]) EqualRange(key K) (tree.RBIterator[K, struct{}], tree.RBIterator[K, struct{}]) {
	return s.tree.EqualRange(key)
}

func (s *rbMultiSet[K]) Clear() {
	s.tree.Clear()
}

func (s *rbMultiSet[K]) Swap(other MultiSet[K]) {
	if o, ok := other.(*rbMultiSet[K]); ok && o != s {
		s.tree.Swap(o.tree)
	}
}

func (s *rbMultiSet[K]) Merge(other MultiSet[K]) {
	if o, ok := other.(*rbMultiSet[K]); ok && o != s {
		s.tree.Merge(o.tree, true)
	}
}

func (s *rbMultiSet[K]) Clone() MultiSet[K] {
	return &rbMultiSet[K]{tree: s.tree.Clone()}
}

func (s *rbMultiSet[K]) Move() MultiSet[K] {
	return &rbMultiSet[K]{tree: s.tree.Move()}
}

func (s *rbMultiSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.tree.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		return action(idx, key)
	})
}

func (s *rbMultiSet[K]) Keys() []K {
	return collectKeys(s.tree)
}

func NewMultiSet[K infra.OrderedKey](keys ...K) MultiSet[K] {
	s := NewMultiSetFunc[K](infra.OrderedLess[K])
	s.InsertMany(keys...)
	return s
}

func NewMultiSetFunc[K any](less infra.LessFunc[K], opts ...tree.RBTreeOpt[K, struct{}]) MultiSet[K] {
	return &rbMultiSet[K]{
		tree: tree.NewRBTreeFunc[K, struct{}](less, opts...),
	}
}
