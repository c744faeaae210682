package roamterrain

// This file implements the force-split protocol, the companion merge,
// and the per-frame recursive tessellation driver that decides where
// to apply them.
//
// The neighbor-fixup pointer algebra below is the classic ROAM bintree
// construction: a split triangle's hypotenuse bisects at its midpoint,
// the apex-to-midpoint segment becomes the new internal edge between
// the two children, and the two half-hypotenuse segments become the
// children's new hypotenuses, inheriting whatever triangle used to
// border T's legs.

// fixExternalNeighbor finds whichever of neighbor's three neighbor
// fields currently points at oldSelf and repoints it at newSelf. A
// neighbor can reference oldSelf through any of its three fields
// depending on the relative level and orientation of the two triangles,
// so all three are checked (mirrors the reciprocal fixup every
// established ROAM implementation performs on split).
func fixExternalNeighbor(pool *BinTriPool, neighbor, oldSelf, newSelf NodeHandle) {
	if neighbor == NoHandle {
		return
	}
	n := pool.Get(neighbor)
	switch oldSelf {
	case n.BaseNeighbor:
		n.BaseNeighbor = newSelf
	case n.LeftNeighbor:
		n.LeftNeighbor = newSelf
	case n.RightNeighbor:
		n.RightNeighbor = newSelf
	}
}

// splitNoBase allocates T's two children and wires everything that can
// be determined from T alone: their vertices, their shared internal
// edge, and the external left/right neighbor links (which never need a
// same-level check, since a leg edge always matches its neighbor's full
// hypotenuse by construction). It does not touch T's base-neighbor
// relationship; that half of the wiring is only valid once the base
// neighbor has matched T's level, which is split's job. Returns false,
// leaving T untouched, if the pool cannot supply both children.
func splitNoBase(pool *BinTriPool, h NodeHandle) bool {
	t := pool.Get(h)
	if !t.IsLeaf() {
		return true
	}

	leftH, ok := pool.Alloc()
	if !ok {
		return false
	}
	rightH, ok := pool.Alloc()
	if !ok {
		pool.Free(leftH)
		return false
	}

	t = pool.Get(h)
	m := midpoint(t.V0, t.V1)
	number := t.Number
	level := t.Level

	left := pool.Get(leftH)
	left.V0, left.V1, left.Va = t.Va, t.V0, m
	left.Level = level + 1
	left.Number = number * 2
	left.Parent = h
	left.LeftNeighbor = rightH // internal edge, shared with the right child

	right := pool.Get(rightH)
	right.V0, right.V1, right.Va = t.V1, t.Va, m
	right.Level = level + 1
	right.Number = number*2 + 1
	right.Parent = h
	right.RightNeighbor = leftH // internal edge, shared with the left child

	if t.LeftNeighbor != NoHandle {
		fixExternalNeighbor(pool, t.LeftNeighbor, h, leftH)
		left.BaseNeighbor = t.LeftNeighbor
	}
	if t.RightNeighbor != NoHandle {
		fixExternalNeighbor(pool, t.RightNeighbor, h, rightH)
		right.BaseNeighbor = t.RightNeighbor
	}

	t.LeftChild = leftH
	t.RightChild = rightH
	return true
}

// unsplitChildren frees h's two children and reverses every external
// fixup splitNoBase performed, restoring h to a leaf whose leg-neighbor
// links match the current mesh. It is the shared machinery behind both merge and
// split's own failure-path rollback: when pool allocation fails
// mid-cascade, the split is abandoned without partial mutation.
func unsplitChildren(pool *BinTriPool, h NodeHandle) {
	t := pool.Get(h)
	if t.IsLeaf() {
		return
	}
	left := pool.Get(t.LeftChild)
	right := pool.Get(t.RightChild)

	if left.BaseNeighbor != NoHandle {
		fixExternalNeighbor(pool, left.BaseNeighbor, t.LeftChild, h)
	}
	if right.BaseNeighbor != NoHandle {
		fixExternalNeighbor(pool, right.BaseNeighbor, t.RightChild, h)
	}

	// h's legs are its children's hypotenuses, so whatever now borders
	// those (possibly changed while h was internal) is h's leg neighbor.
	t.LeftNeighbor = left.BaseNeighbor
	t.RightNeighbor = right.BaseNeighbor

	pool.Free(t.LeftChild)
	pool.Free(t.RightChild)
	t.LeftChild = NoHandle
	t.RightChild = NoHandle
}

// split applies the force-split protocol to T: T may only gain
// children once its base neighbor (if any) is at the same level, so a
// mismatched base neighbor is recursively forced to split first.
// Returns false, leaving the whole forest as it was before the call, if
// the pool runs out of room anywhere in the cascade.
func split(pool *BinTriPool, h NodeHandle) bool {
	t := pool.Get(h)
	if !t.IsLeaf() {
		return true
	}

	if t.BaseNeighbor == NoHandle {
		return splitNoBase(pool, h)
	}

	b := t.BaseNeighbor
	bNode := pool.Get(b)

	if bNode.BaseNeighbor == h {
		// T and B form a matching diamond at the same level: split both
		// and cross-link the four children's base-neighbor fields across
		// the shared edge.
		if !splitNoBase(pool, h) {
			return false
		}
		if !splitNoBase(pool, b) {
			unsplitChildren(pool, h)
			return false
		}

		tNode := pool.Get(h)
		bNode = pool.Get(b)
		tLeft, tRight := tNode.LeftChild, tNode.RightChild
		bLeft, bRight := bNode.LeftChild, bNode.RightChild

		tLeftNode := pool.Get(tLeft)
		tRightNode := pool.Get(tRight)
		bLeftNode := pool.Get(bLeft)
		bRightNode := pool.Get(bRight)

		tLeftNode.RightNeighbor = bRight
		bRightNode.LeftNeighbor = tLeft
		tRightNode.LeftNeighbor = bLeft
		bLeftNode.RightNeighbor = tRight
		return true
	}

	// B does not (yet) reciprocate, meaning it is not at T's level. Force
	// it to split first, then retry T; by induction B's own call leaves
	// no partial mutation on failure, so there is nothing to undo here.
	if !split(pool, b) {
		return false
	}
	return split(pool, h)
}

// goodForMerge reports whether T is exactly in the post-split state
// split would have produced: internal with two leaf children, and if T
// has a base neighbor, that neighbor is internal with two leaf children
// that are T's children's reciprocal cross-linked pair.
func goodForMerge(pool *BinTriPool, h NodeHandle) bool {
	t := pool.Get(h)
	if t.IsLeaf() {
		return false
	}
	left := pool.Get(t.LeftChild)
	right := pool.Get(t.RightChild)
	if !left.IsLeaf() || !right.IsLeaf() {
		return false
	}
	if t.BaseNeighbor == NoHandle {
		return true
	}
	b := pool.Get(t.BaseNeighbor)
	if b.IsLeaf() {
		return false
	}
	bLeft := pool.Get(b.LeftChild)
	bRight := pool.Get(b.RightChild)
	if !bLeft.IsLeaf() || !bRight.IsLeaf() {
		return false
	}
	return left.RightNeighbor == b.RightChild && right.LeftNeighbor == b.LeftChild
}

// merge collapses T and, if present, its base neighbor back to leaves,
// freeing all four grandchildren and repairing every external neighbor
// link unsplitChildren had redirected away from T (and from the base
// neighbor). Callers must have already confirmed goodForMerge(h).
func merge(pool *BinTriPool, h NodeHandle) {
	t := pool.Get(h)
	if t.BaseNeighbor != NoHandle {
		b := t.BaseNeighbor
		if !pool.Get(b).IsLeaf() {
			unsplitChildren(pool, b)
		}
	}
	unsplitChildren(pool, h)
}

// tesselateContext carries the per-update-call state recurse needs:
// the precomputed variance/hypotenuse tables, the registered callbacks,
// and the current quality constant and budget guards. One is built
// fresh by Engine.Update for each frame's pass over both roots.
type tesselateContext struct {
	pool     *BinTriPool
	vt       *varianceTree
	hypoLen  []float64
	cb       Callbacks
	quality  float64
	maxLevel int
	capacity int
	satCutoff float64
	changed  bool
}

func (c *tesselateContext) poolNearExhausted() bool {
	cutoff := int(float64(c.capacity) * c.satCutoff)
	return c.pool.LiveCount() >= cutoff
}

// recurse frustum-culls a node, then compares its distance-scaled
// variance with the quality constant: a leaf that clears it (below
// maxLevel, with the pool not near exhaustion) is split and its children
// visited; an internal node that does not clear it is merged when
// goodForMerge holds, and otherwise its children are visited.
// entirelyInFrustum, once true for an
// ancestor, is passed down unchanged so descendants skip their own
// frustum test. root selects which root's variance-tree index range
// applies to every triangle in this call (0 for NW, 1 for SE).
func (c *tesselateContext) recurse(h NodeHandle, root int, entirelyInFrustum bool) {
	t := c.pool.Get(h)

	if !entirelyInFrustum {
		// The centroid (not the hypotenuse midpoint) is used as the
		// bounding sphere's center: two sibling-root-sized triangles
		// sharing a hypotenuse also share that midpoint, which would
		// make the root-level test unable to tell NW from SE apart. The
		// centroid differs between them, and hypoLen (looser than the
		// true centroid-to-vertex bound) keeps the sphere a safe
		// superset of the triangle at every level.
		cx, cy := t.centroid()
		radius := c.hypoLen[t.Level]
		switch c.cb.classify(cx, cy, radius) {
		case FrustumOutside:
			return
		case FrustumInside:
			entirelyInFrustum = true
		}
	}

	cx, cy := t.centroid()
	dist := c.cb.DistToCamera(cx, cy)
	metric := float64(c.vt.varianceOf(root, t.Number)) * c.hypoLen[t.Level] / dist
	canSplit := metric > c.quality && int(t.Level) < c.maxLevel && !c.poolNearExhausted()

	if t.IsLeaf() {
		if canSplit && split(c.pool, h) {
			c.changed = true
			t = c.pool.Get(h)
			c.recurse(t.LeftChild, root, entirelyInFrustum)
			c.recurse(t.RightChild, root, entirelyInFrustum)
		}
		return
	}

	if !canSplit && goodForMerge(c.pool, h) {
		merge(c.pool, h)
		c.changed = true
		return
	}

	c.recurse(t.LeftChild, root, entirelyInFrustum)
	c.recurse(t.RightChild, root, entirelyInFrustum)
}
