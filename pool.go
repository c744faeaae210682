package roamterrain

// BinTriPool is a fixed-capacity arena that owns every BinTri node used by
// an Engine: it preallocates a single backing slice once and hands out
// slots from it every frame without touching the general-purpose
// allocator. Reclamation uses a free-list rather than swap-remove,
// because a BinTri that has just been merged away must not invalidate
// its slot while some other neighbor link might still (briefly)
// reference it mid-pass; the free-list keeps handles stable for the
// slot's entire dead-to-realloc lifetime.
type BinTriPool struct {
	slots []BinTri

	// next is the high-water mark: slots[:next] have been touched by
	// alloc at least once. Slots beyond it are uninitialized zero values.
	next int

	// freeHead is the head of the free-list threaded through poolNext.
	// NoHandle means the free-list is empty.
	freeHead NodeHandle

	// freeCount tracks live free-list length for pool accounting without
	// walking the list.
	freeCount int
}

// NewBinTriPool constructs a pool with the given fixed capacity. capacity
// must be positive; it is not validated here, and New does not check the
// pool's capacity against Config.PoolCapacity.
func NewBinTriPool(capacity int) *BinTriPool {
	return &BinTriPool{
		slots:    make([]BinTri, capacity),
		freeHead: NoHandle,
	}
}

// Capacity returns the pool's fixed slot count.
func (p *BinTriPool) Capacity() int {
	return len(p.slots)
}

// Next returns the high-water mark: the number of slots ever touched by
// Alloc. Combined with FreeCount, this gives the live node count
// property 5: Next - FreeCount == reachable nodes from the two roots).
func (p *BinTriPool) Next() int {
	return p.next
}

// FreeCount returns the number of slots currently on the free-list.
func (p *BinTriPool) FreeCount() int {
	return p.freeCount
}

// LiveCount returns the number of currently-allocated (not freed) slots.
func (p *BinTriPool) LiveCount() int {
	return p.next - p.freeCount
}

// Exhausted reports whether Alloc would currently fail.
func (p *BinTriPool) Exhausted() bool {
	return p.freeHead == NoHandle && p.next >= len(p.slots)
}

// Alloc returns a freshly-cleared node and its handle. ok is false when
// both the free-list is empty and the high-water mark has reached
// capacity; the returned handle is NoHandle in that case. This is never
// an error value: pool exhaustion is expected and handled by
// the caller (the split-merge engine abandons the split and leaves the
// triangle as a leaf for the frame).
func (p *BinTriPool) Alloc() (NodeHandle, bool) {
	if p.freeHead != NoHandle {
		h := p.freeHead
		slot := &p.slots[h]
		p.freeHead = slot.poolNext
		p.freeCount--
		slot.clear()
		return h, true
	}
	if p.next >= len(p.slots) {
		return NoHandle, false
	}
	h := NodeHandle(p.next)
	p.next++
	p.slots[h].clear()
	return h, true
}

// Free returns a node to the free-list. The caller must have already
// detached it from every neighbor/parent/child link in the mesh;
// double-free or freeing a still-referenced node is a caller bug and is
// not detected here.
func (p *BinTriPool) Free(h NodeHandle) {
	slot := &p.slots[h]
	slot.poolNext = p.freeHead
	p.freeHead = h
	p.freeCount++
}

// Get returns a pointer to the node at h. The pointer is valid until the
// next Alloc/Free/Reset call that touches h's slot; callers must not
// retain it across pool mutations.
func (p *BinTriPool) Get(h NodeHandle) *BinTri {
	return &p.slots[h]
}

// Reset logically empties the pool in O(1): the high-water mark and
// free-list are cleared, invalidating every outstanding handle. Slot
// contents are lazily cleared by the next Alloc that reaches them.
func (p *BinTriPool) Reset() {
	p.next = 0
	p.freeHead = NoHandle
	p.freeCount = 0
}
