package tree

import (
	"math"
)

// handle addresses a node inside an arena. It stays stable until the
// node is released, so it is safe to keep in iterators.
type handle int32

const (
	nilHandle     handle = -1
	maxArenaNodes        = math.MaxInt32

	rbChunkShift = 6
	rbChunkSize  = 1 << rbChunkShift
	rbChunkMask  = rbChunkSize - 1
)

// rbOwner identifies the tree a node belongs to. Swap and Move hand the
// owner over to another tree, so the nodes and their iterators follow
// without being relabeled one by one.
type rbOwner[K any, V any] struct {
	tree *rbTree[K, V]
}

type rbNode[K any, V any] struct {
	parent handle
	left   handle
	right  handle
	// gen is bumped whenever the slot is released.
	gen   uint32
	color RBColor
	inUse bool
	owner *rbOwner[K, V]
	key   K
	val   V // The type of val may be struct{}, keep it the last field.
}

type rbChunk[K any, V any] [rbChunkSize]rbNode[K, V]

// rbArena owns the node storage. The nodes live in fixed chunks that never
// move, so another arena can take them over by adopting the chunks.
// Several trees are allowed to share one arena, then merging between them
// only rewrites links.
type rbArena[K any, V any] struct {
	chunks   []*rbChunk[K, V]
	next     handle // The first slot never handed out.
	freelist []handle
	live     int64
	users    int    // Trees placing their nodes here.
	// An absorbed arena forwards its old handles to the new arena.
	fwd     *rbArena[K, V]
	fwdBase handle
}

func newRBArena[K any, V any](capacity int) *rbArena[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &rbArena[K, V]{
		chunks: make([]*rbChunk[K, V], 0, (capacity+rbChunkMask)>>rbChunkShift),
	}
}

// resolve follows the forwarding of absorbed arenas.
func (a *rbArena[K, V]) resolve(h handle) (*rbArena[K, V], handle) {
	for a.fwd != nil {
		h += a.fwdBase
		a = a.fwd
	}
	return a, h
}

func (a *rbArena[K, V]) node(h handle) *rbNode[K, V] {
	return &a.chunks[h>>rbChunkShift][h&rbChunkMask]
}

func (a *rbArena[K, V]) contains(h handle) bool {
	return h >= 0 && h < a.next && a.node(h).inUse
}

func (a *rbArena[K, V]) capacity() int64 {
	return int64(len(a.chunks)) << rbChunkShift
}

// alloc returns a detached red node. It reuses released slots first.
func (a *rbArena[K, V]) alloc(key K, val V, owner *rbOwner[K, V]) handle {
	var h handle
	if n := len(a.freelist); n > 0 {
		h = a.freelist[n-1]
		a.freelist = a.freelist[:n-1]
	} else {
		if int64(a.next) >= a.capacity() {
			if a.capacity()+rbChunkSize > maxArenaNodes {
				panic(ErrRBTreeArenaExhausted)
			}
			a.chunks = append(a.chunks, new(rbChunk[K, V]))
		}
		h = a.next
		a.next++
	}
	x := a.node(h)
	x.parent, x.left, x.right = nilHandle, nilHandle, nilHandle
	x.color = Red
	x.inUse = true
	x.owner = owner
	x.key, x.val = key, val
	a.live++
	return h
}

// free puts the slot back to the free list. The payload is zeroed so the
// arena does not retain the references of released elements.
func (a *rbArena[K, V]) free(h handle) {
	var (
		zeroK K
		zeroV V
	)
	x := a.node(h)
	x.parent, x.left, x.right = nilHandle, nilHandle, nilHandle
	x.key, x.val = zeroK, zeroV
	x.owner = nil
	x.inUse = false
	x.gen++
	a.freelist = append(a.freelist, h)
	a.live--
}

// absorb takes over the chunks of src. The nodes stay where they are, only
// their links are shifted by the returned base. src forwards to a
// afterwards and must not be used by any tree any more.
func (a *rbArena[K, V]) absorb(src *rbArena[K, V]) (handle, bool) {
	if src == a || src.fwd != nil || a.fwd != nil ||
		a.capacity()+src.capacity() > maxArenaNodes {
		return 0, false
	}
	base := handle(a.capacity())
	// The untouched tail of the last chunk can not be handed out by next
	// any more.
	for h := a.next; h < base; h++ {
		a.freelist = append(a.freelist, h)
	}
	a.chunks = append(a.chunks, src.chunks...)
	for _, h := range src.freelist {
		a.freelist = append(a.freelist, h+base)
	}
	a.next = base + src.next
	a.live += src.live

	shift := func(h handle) handle {
		if h == nilHandle {
			return h
		}
		return h + base
	}
	for h := base; h < a.next; h++ {
		if x := a.node(h); x.inUse {
			x.parent, x.left, x.right = shift(x.parent), shift(x.left), shift(x.right)
		}
	}

	src.chunks, src.freelist = nil, nil
	src.next, src.live, src.users = 0, 0, 0
	src.fwd, src.fwdBase = a, base
	return base, true
}
