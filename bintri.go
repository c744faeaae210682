package roamterrain

// NodeHandle is a stable, non-owning reference to a BinTri node inside a
// BinTriPool. It is an arena index, never a pointer: the bintree's
// neighbor graph is cyclic (two triangles reference each other across a
// shared edge), so a raw pointer graph would fight Go's ownership model
// the moment a node is freed and its slot reused. An index into a fixed
// arena sidesteps that: a stale handle is just a number until resolved
// through the pool, never a dangling reference.
type NodeHandle int32

// NoHandle is the zero-value-safe "absent" handle. Handle 0 is a valid
// pool slot, so absence is encoded as -1, not the zero value.
const NoHandle NodeHandle = -1

// Valid reports whether h refers to an allocated slot (i.e. is not NoHandle).
// It does not prove the slot is still live; callers that need that must go
// through a BinTriPool method.
func (h NodeHandle) Valid() bool {
	return h != NoHandle
}

// GridPoint is an integer grid coordinate in [0, size].
type GridPoint struct {
	X, Y int
}

// triFlags is a small bitset reserved for traversal marking.
type triFlags uint8

const (
	flagVisited triFlags = 1 << iota // already visited this traversal pass
)

// BinTri is one right-isoceles triangle node in the bintree forest.
//
// v0, v1 is the hypotenuse; va is the apex. level 0 is a root. number is
// this triangle's implicit-heap index into the variance tree. Both
// children are present or both are absent (never a half-split state
// outside of an in-progress split/merge call). Neighbor fields are
// optional (NoHandle means "absent": that edge lies on the domain
// boundary). The two roots store each other as base neighbor.
type BinTri struct {
	V0, V1, Va GridPoint

	Level  uint8
	Number uint32

	Parent     NodeHandle
	LeftChild  NodeHandle
	RightChild NodeHandle

	BaseNeighbor  NodeHandle
	LeftNeighbor  NodeHandle
	RightNeighbor NodeHandle

	flags triFlags

	// poolNext threads the pool's free-list through this node while it is
	// not live. Never read/written outside pool.go; zeroed on alloc.
	poolNext NodeHandle
}

// IsLeaf reports whether this node has no children. Per the pool/mesh
// invariant, a node is either a leaf (both children absent) or internal
// (both present); this method only needs to check one side.
func (t *BinTri) IsLeaf() bool {
	return t.LeftChild == NoHandle
}

// clear resets a node to its zero-value-equivalent state (every link
// NoHandle). Alloc calls it when handing out a slot; Free leaves a freed
// slot's contents in place until the slot is allocated again.
func (t *BinTri) clear() {
	*t = BinTri{
		Parent:        NoHandle,
		LeftChild:     NoHandle,
		RightChild:    NoHandle,
		BaseNeighbor:  NoHandle,
		LeftNeighbor:  NoHandle,
		RightNeighbor: NoHandle,
		poolNext:      NoHandle,
	}
}

// midpoint returns the grid-space midpoint of the hypotenuse v0-v1,
// rounded to the nearest integer grid index. Because v0 and v1 are
// always either a domain corner or a previously-computed midpoint, this
// stays within the closed grid by induction from the two roots.
func midpoint(a, b GridPoint) GridPoint {
	return GridPoint{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// centroid returns the float64 centroid of the triangle, used as the
// point sampled by the DistToCamera callback.
func (t *BinTri) centroid() (x, y float64) {
	x = float64(t.V0.X+t.V1.X+t.Va.X) / 3
	y = float64(t.V0.Y+t.V1.Y+t.Va.Y) / 3
	return
}
