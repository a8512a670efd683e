package set

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
)

var _ Set[int] = (*rbSet[int])(nil)

type rbSet[K any] struct {
	tree tree.RBTree[K, struct{}]
}

func toKeyVals[K any](keys []K) []tree.KeyVal[K, struct{}] {
	return lo.Map(keys, func(key K, _ int) tree.KeyVal[K, struct{}] {
		return tree.KeyVal[K, struct{}]{Key: key}
	})
}

func collectKeys[K any](t tree.RBTree[K, struct{}]) []K {
	keys := make([]K, 0, t.Len())
	t.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (s *rbSet[K]) Len() int64 {
	return s.tree.Len()
}

func (s *rbSet[K]) Empty() bool {
	return s.tree.Empty()
}

func (s *rbSet[K]) MaxSize() int64 {
	return s.tree.MaxSize()
}

func (s *rbSet[K]) Begin() tree.RBIterator[K, struct{}] {
	return s.tree.Begin()
}

func (s *rbSet[K]) End() tree.RBIterator[K, struct{}] {
	return s.tree.End()
}

func (s *rbSet[K]) Insert(key K) (tree.RBIterator[K, struct{}], bool) {
	return s.tree.InsertUnique(key, struct{}{})
}

// InsertMany returns the number of added keys.
func (s *rbSet[K]) InsertMany(keys ...K) int64 {
	res := s.tree.InsertManyUnique(toKeyVals(keys)...)
	return int64(lo.CountBy(res, func(r tree.InsertResult[K, struct{}]) bool {
		return r.Inserted
	}))
}

func (s *rbSet[K]) Erase(it tree.RBIterator[K, struct{}]) error {
	return s.tree.Erase(it)
}

func (s *rbSet[K]) Remove(key K) error {
	_, _, err := s.tree.Remove(key)
	return err
}

func (s *rbSet[K]) Find(key K) tree.RBIterator[K, struct{}] {
	return s.tree.Find(key)
}

func (s *rbSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *rbSet[K]) LowerBound(key K) tree.RBIterator[K, struct{}] {
	return s.tree.LowerBound(key)
}

func (s *rbSet[K]) UpperBound(key K) tree.RBIterator[K, struct{}] {
	return s.tree.UpperBound(key)
}

func (s *rbSet[K]) Clear() {
	s.tree.Clear()
}

func (s *rbSet[K]) Swap(other Set[K]) {
	if o, ok := other.(*rbSet[K]); ok && o != s {
		s.tree.Swap(o.tree)
	}
}

func (s *rbSet[K]) Merge(other Set[K]) {
	if o, ok := other.(*rbSet[K]); ok && o != s {
		s.tree.Merge(o.tree, false)
	}
}

func (s *rbSet[K]) Clone() Set[K] {
	return &rbSet[K]{tree: s.tree.Clone()}
}

func (s *rbSet[K]) Move() Set[K] {
	return &rbSet[K]{tree: s.tree.Move()}
}

func (s *rbSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.tree.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		return action(idx, key)
	})
}

func (s *rbSet[K]) Keys() []K {
	return collectKeys(s.tree)
}

// NewSet builds a set ordered by the natural order of K.
func NewSet[K infra.OrderedKey](keys ...K) Set[K] {
	s := NewSetFunc[K](infra.OrderedLess[K])
	s.InsertMany(keys...)
	return s
}

// NewSetFunc builds an empty set ordered by less. The options configure
// the underlying engine.
func NewSetFunc[K any](less infra.LessFunc[K], opts ...tree.RBTreeOpt[K, struct{}]) Set[K] {
	return &rbSet[K]{
		tree: tree.NewRBTreeFunc[K, struct{}](less, opts...),
	}
}
