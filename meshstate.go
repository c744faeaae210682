package roamterrain

// meshState holds the two bintree roots and the pool that backs them:
// the current triangulation, created at Init, mutated by the
// split-merge engine, and reset by reinitialization.
type meshState struct {
	pool    *BinTriPool
	rootNW  NodeHandle
	rootSE  NodeHandle
	size    int
}

// initMeshState allocates the two root triangles covering the NW/SE
// halves of the square domain and wires them as
// each other's base neighbor. size must be a power of two; New
// validates it before an Engine exists to call this.
func initMeshState(pool *BinTriPool, size int) (*meshState, error) {
	nw, ok := pool.Alloc()
	if !ok {
		return nil, ErrInvalidConfig
	}
	se, ok := pool.Alloc()
	if !ok {
		return nil, ErrInvalidConfig
	}

	nwNode := pool.Get(nw)
	nwNode.V0 = GridPoint{X: 0, Y: 0}
	nwNode.V1 = GridPoint{X: size, Y: size}
	nwNode.Va = GridPoint{X: 0, Y: size}
	nwNode.Level = 0
	nwNode.Number = 1
	nwNode.BaseNeighbor = se

	seNode := pool.Get(se)
	seNode.V0 = GridPoint{X: size, Y: size}
	seNode.V1 = GridPoint{X: 0, Y: 0}
	seNode.Va = GridPoint{X: size, Y: 0}
	seNode.Level = 0
	seNode.Number = 1
	seNode.BaseNeighbor = nw

	return &meshState{pool: pool, rootNW: nw, rootSE: se, size: size}, nil
}

// leafVisitor is called once per leaf triangle during a traversal, in a
// fixed winding order (apex, v0, v1).
type leafVisitor func(t *BinTri)

// walkPreOrder visits every leaf reachable from h in pre-order (this
// node, then left subtree, then right subtree). Internal nodes are not
// visited; only leaves carry renderable geometry.
func walkPreOrder(pool *BinTriPool, h NodeHandle, visit leafVisitor) {
	if h == NoHandle {
		return
	}
	t := pool.Get(h)
	if t.IsLeaf() {
		visit(t)
		return
	}
	walkPreOrder(pool, t.LeftChild, visit)
	walkPreOrder(pool, t.RightChild, visit)
}

// countLeaves returns the number of leaf triangles reachable from h.
func countLeaves(pool *BinTriPool, h NodeHandle) int {
	n := 0
	walkPreOrder(pool, h, func(*BinTri) { n++ })
	return n
}
