package kv

import (
	"github.com/samber/lo"

	"github.com/benz9527/xcontainer/lib/infra"
	"github.com/benz9527/xcontainer/lib/tree"
)

var _ TreeMap[int, int] = (*treeMap[int, int])(nil)

type treeMap[K any, V any] struct {
	tree tree.RBTree[K, V]
}

func (m *treeMap[K, V]) Len() int64 {
	return m.tree.Len()
}

func (m *treeMap[K, V]) Empty() bool {
	return m.tree.Empty()
}

func (m *treeMap[K, V]) MaxSize() int64 {
	return m.tree.MaxSize()
}

func (m *treeMap[K, V]) Begin() tree.RBIterator[K, V] {
	return m.tree.Begin()
}

func (m *treeMap[K, V]) End() tree.RBIterator[K, V] {
	return m.tree.End()
}

func (m *treeMap[K, V]) Insert(key K, val V) (tree.RBIterator[K, V], bool) {
	return m.tree.InsertUnique(key, val)
}

func (m *treeMap[K, V]) InsertOrAssign(key K, val V) (tree.RBIterator[K, V], bool) {
	it, ok := m.tree.InsertUnique(key, val)
	if !ok {
		it.SetVal(val)
	}
	return it, ok
}

func (m *treeMap[K, V]) At(key K) (V, error) {
	it := m.tree.Find(key)
	if it.IsEnd() {
		var val V
		return val, ErrKeyNotFound
	}
	return it.Val(), nil
}

func (m *treeMap[K, V]) GetOrInsert(key K) tree.RBIterator[K, V] {
	var val V
	it, _ := m.tree.InsertUnique(key, val)
	return it
}

func (m *treeMap[K, V]) Erase(it tree.RBIterator[K, V]) error {
	return m.tree.Erase(it)
}

func (m *treeMap[K, V]) Remove(key K) (V, error) {
	it := m.tree.Find(key)
	if it.IsEnd() {
		var val V
		return val, ErrKeyNotFound
	}
	val := it.Val()
	return val, m.tree.Erase(it)
}

func (m *treeMap[K, V]) Find(key K) tree.RBIterator[K, V] {
	return m.tree.Find(key)
}

func (m *treeMap[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

func (m *treeMap[K, V]) LowerBound(key K) tree.RBIterator[K, V] {
	return m.tree.LowerBound(key)
}

func (m *treeMap[K, V]) UpperBound(key K) tree.RBIterator[K, V] {
	return m.tree.UpperBound(key)
}

func (m *treeMap[K, V]) Clear() {
	m.tree.Clear()
}

func (m *treeMap[K, V]) Swap(other TreeMap[K, V]) {
	if o, ok := other.(*treeMap[K, V]); ok && o != m {
		m.tree.Swap(o.tree)
	}
}

func (m *treeMap[K, V]) Merge(other TreeMap[K, V]) {
	if o, ok := other.(*treeMap[K, V]); ok && o != m {
		m.tree.Merge(o.tree, false)
	}
}

func (m *treeMap[K, V]) Clone() TreeMap[K, V] {
	return &treeMap[K, V]{tree: m.tree.Clone()}
}

func (m *treeMap[K, V]) Move() TreeMap[K, V] {
	return &treeMap[K, V]{tree: m.tree.Move()}
}

func (m *treeMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	m.tree.Foreach(func(idx int64, color tree.RBColor, key K, val V) bool {
		return action(idx, key, val)
	})
}

func (m *treeMap[K, V]) Entries() []tree.KeyVal[K, V] {
	entries := make([]tree.KeyVal[K, V], 0, m.tree.Len())
	m.Foreach(func(idx int64, key K, val V) bool {
		entries = append(entries, tree.KeyVal[K, V]{Key: key, Val: val})
		return true
	})
	return entries
}

func (m *treeMap[K, V]) Keys(filters ...KeyFilterFunc[K]) []K {
	realFilters := lo.Filter(filters, func(filter KeyFilterFunc[K], _ int) bool {
		return filter != nil
	})
	if len(realFilters) == 0 {
		realFilters = append(realFilters, defaultAllKeysFilter[K])
	}
	keys := lo.Map(m.Entries(), func(e tree.KeyVal[K, V], _ int) K {
		return e.Key
	})
	return lo.Filter(keys, func(key K, _ int) bool {
		return lo.ContainsBy(realFilters, func(filter KeyFilterFunc[K]) bool {
			return filter(key)
		})
	})
}

func (m *treeMap[K, V]) Values() []V {
	return lo.Map(m.Entries(), func(e tree.KeyVal[K, V], _ int) V {
		return e.Val
	})
}

func NewTreeMap[K infra.OrderedKey, V any](opts ...tree.RBTreeOpt[K, V]) TreeMap[K, V] {
	return NewTreeMapFunc[K, V](infra.OrderedLess[K], opts...)
}

func NewTreeMapFunc[K any, V any](less infra.LessFunc[K], opts ...tree.RBTreeOpt[K, V]) TreeMap[K, V] {
	return &treeMap[K, V]{
		tree: tree.NewRBTreeFunc[K, V](less, opts...),
	}
}

// NewTreeMapFrom copies the entries of a builtin map.
func NewTreeMapFrom[K infra.OrderedKey, V any](items map[K]V) TreeMap[K, V] {
	m := NewTreeMap[K, V]()
	for _, e := range lo.Entries(items) {
		m.Insert(e.Key, e.Value)
	}
	return m
}
