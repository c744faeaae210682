package roamterrain

import "testing"

func newTestMesh(t *testing.T, capacity, size int) (*BinTriPool, *meshState) {
	t.Helper()
	p := NewBinTriPool(capacity)
	mesh, err := initMeshState(p, size)
	if err != nil {
		t.Fatalf("initMeshState: %v", err)
	}
	return p, mesh
}

func TestSplitNoBaseProducesTwoLeafChildren(t *testing.T) {
	p, mesh := newTestMesh(t, 8, 16)
	if !splitNoBase(p, mesh.rootNW) {
		t.Fatal("splitNoBase failed with ample pool capacity")
	}
	nw := p.Get(mesh.rootNW)
	if nw.IsLeaf() {
		t.Fatal("expected root to become internal")
	}
	left := p.Get(nw.LeftChild)
	right := p.Get(nw.RightChild)
	if !left.IsLeaf() || !right.IsLeaf() {
		t.Fatal("expected both new children to be leaves")
	}
	if left.Level != 1 || right.Level != 1 {
		t.Fatalf("expected level 1 children, got %d and %d", left.Level, right.Level)
	}
	if left.Number != nw.Number*2 || right.Number != nw.Number*2+1 {
		t.Fatalf("unexpected child numbers: %d, %d", left.Number, right.Number)
	}
}

func TestSplitNoBaseInternalEdgeIsReciprocal(t *testing.T) {
	p, mesh := newTestMesh(t, 8, 16)
	splitNoBase(p, mesh.rootNW)
	nw := p.Get(mesh.rootNW)
	left := p.Get(nw.LeftChild)
	right := p.Get(nw.RightChild)
	if left.LeftNeighbor != nw.RightChild {
		t.Errorf("left.LeftNeighbor = %v, want right child %v", left.LeftNeighbor, nw.RightChild)
	}
	if right.RightNeighbor != nw.LeftChild {
		t.Errorf("right.RightNeighbor = %v, want left child %v", right.RightNeighbor, nw.LeftChild)
	}
}

func TestSplitNoBaseChildrenShareMidpointAndPreserveVertices(t *testing.T) {
	p, mesh := newTestMesh(t, 8, 16)
	nw := p.Get(mesh.rootNW)
	v0, v1, va := nw.V0, nw.V1, nw.Va
	m := midpoint(v0, v1)

	splitNoBase(p, mesh.rootNW)
	nw = p.Get(mesh.rootNW)
	left := p.Get(nw.LeftChild)
	right := p.Get(nw.RightChild)

	if left.V0 != va || left.V1 != v0 || left.Va != m {
		t.Errorf("left child vertices = (%v,%v,%v), want (%v,%v,%v)", left.V0, left.V1, left.Va, va, v0, m)
	}
	if right.V0 != v1 || right.V1 != va || right.Va != m {
		t.Errorf("right child vertices = (%v,%v,%v), want (%v,%v,%v)", right.V0, right.V1, right.Va, v1, va, m)
	}
}

func TestSplitNoBaseFailsCleanlyWhenPoolExhausted(t *testing.T) {
	p, mesh := newTestMesh(t, 2, 16) // both slots already used by the two roots
	if splitNoBase(p, mesh.rootNW) {
		t.Fatal("expected splitNoBase to fail with an exhausted pool")
	}
	nw := p.Get(mesh.rootNW)
	if !nw.IsLeaf() {
		t.Fatal("expected root to remain a leaf after failed split")
	}
}

func TestSplitOnRootsCrossLinksBaseNeighbors(t *testing.T) {
	p, mesh := newTestMesh(t, 8, 16)
	// The two roots are reciprocal base neighbors at the same level (0),
	// so splitting one must force-split the other and cross-link.
	if !split(p, mesh.rootNW) {
		t.Fatal("split failed with ample pool capacity")
	}

	nw := p.Get(mesh.rootNW)
	se := p.Get(mesh.rootSE)
	if nw.IsLeaf() || se.IsLeaf() {
		t.Fatal("expected both roots to have split (reciprocal same-level base neighbors)")
	}

	nwLeft := p.Get(nw.LeftChild)
	nwRight := p.Get(nw.RightChild)
	seLeft := p.Get(se.LeftChild)
	seRight := p.Get(se.RightChild)

	if nwLeft.RightNeighbor != se.RightChild {
		t.Errorf("nwLeft.RightNeighbor = %v, want se.RightChild %v", nwLeft.RightNeighbor, se.RightChild)
	}
	if seRight.LeftNeighbor != nw.LeftChild {
		t.Errorf("seRight.LeftNeighbor = %v, want nw.LeftChild %v", seRight.LeftNeighbor, nw.LeftChild)
	}
	if nwRight.LeftNeighbor != se.LeftChild {
		t.Errorf("nwRight.LeftNeighbor = %v, want se.LeftChild %v", nwRight.LeftNeighbor, se.LeftChild)
	}
	if seLeft.RightNeighbor != nw.RightChild {
		t.Errorf("seLeft.RightNeighbor = %v, want nw.RightChild %v", seLeft.RightNeighbor, nw.RightChild)
	}
}

func TestSplitFailureLeavesNoPartialMutation(t *testing.T) {
	// Capacity for exactly the two roots plus two children: enough for
	// nw's splitNoBase to succeed but not se's, forcing the rollback path.
	p, mesh := newTestMesh(t, 4, 16)
	if split(p, mesh.rootNW) {
		t.Fatal("expected split to fail when the base-neighbor side cannot allocate")
	}
	nw := p.Get(mesh.rootNW)
	se := p.Get(mesh.rootSE)
	if !nw.IsLeaf() {
		t.Fatal("expected rootNW to be restored to a leaf after rollback")
	}
	if !se.IsLeaf() {
		t.Fatal("expected rootSE to remain untouched")
	}
	if p.LiveCount() != 2 {
		t.Fatalf("LiveCount = %d, want 2 (no leaked allocations after rollback)", p.LiveCount())
	}
}

func TestForceSplitCascadesThroughMismatchedLevels(t *testing.T) {
	p, mesh := newTestMesh(t, 64, 16)
	// Splitting the NW root also splits the SE root (a same-level
	// diamond). NW's left child has its hypotenuse on the domain boundary,
	// so it splits alone. That child's left child (level 2) then has NW's
	// right child (level 1) as its base neighbor, one level coarser, so
	// splitting it must force-split NW's right child first.
	if !split(p, mesh.rootNW) {
		t.Fatal("initial split failed")
	}
	nw := p.Get(mesh.rootNW)
	if !split(p, nw.LeftChild) {
		t.Fatal("second-level split failed")
	}
	left := p.Get(nw.LeftChild)
	if !split(p, left.LeftChild) {
		t.Fatal("third-level split failed")
	}

	// The coarser base neighbor was force-split by the cascade.
	if p.Get(nw.RightChild).IsLeaf() {
		t.Fatal("expected NW's right child to be force-split by the level-2 split")
	}

	// Sanity: the forest grew past the two original leaves.
	total := countLeaves(p, mesh.rootNW) + countLeaves(p, mesh.rootSE)
	if total < 4 {
		t.Fatalf("expected mesh to have grown past the two original leaves, got %d leaves", total)
	}
}

func TestGoodForMergeFalseOnLeaf(t *testing.T) {
	p, mesh := newTestMesh(t, 8, 16)
	if goodForMerge(p, mesh.rootNW) {
		t.Fatal("a leaf is never good for merge")
	}
}

func TestSplitThenMergeRestoresOriginalLeafState(t *testing.T) {
	p, mesh := newTestMesh(t, 8, 16)
	nw := p.Get(mesh.rootNW)
	origV0, origV1, origVa := nw.V0, nw.V1, nw.Va
	origBase := nw.BaseNeighbor

	if !split(p, mesh.rootNW) {
		t.Fatal("split failed")
	}
	if !goodForMerge(p, mesh.rootNW) {
		t.Fatal("expected freshly split root to be good for merge")
	}
	merge(p, mesh.rootNW)

	nw = p.Get(mesh.rootNW)
	if !nw.IsLeaf() {
		t.Fatal("expected root to be a leaf again after merge")
	}
	if nw.V0 != origV0 || nw.V1 != origV1 || nw.Va != origVa {
		t.Fatalf("vertices changed across split/merge: got (%v,%v,%v)", nw.V0, nw.V1, nw.Va)
	}
	if nw.BaseNeighbor != origBase {
		t.Fatalf("BaseNeighbor changed across split/merge: got %v, want %v", nw.BaseNeighbor, origBase)
	}
	se := p.Get(mesh.rootSE)
	if !se.IsLeaf() {
		t.Fatal("expected SE root to also be a leaf again after merge")
	}
}

func TestSplitMergeReleasesAllFourNodesBackToPool(t *testing.T) {
	p, mesh := newTestMesh(t, 8, 16)
	if !split(p, mesh.rootNW) {
		t.Fatal("split failed")
	}
	liveAfterSplit := p.LiveCount()
	if liveAfterSplit != 6 {
		t.Fatalf("LiveCount after split = %d, want 6 (2 roots + 4 children)", liveAfterSplit)
	}

	merge(p, mesh.rootNW)
	if p.LiveCount() != 2 {
		t.Fatalf("LiveCount after merge = %d, want 2", p.LiveCount())
	}
}

func TestMergeExternalNeighborLinksRepaired(t *testing.T) {
	p, mesh := newTestMesh(t, 32, 16)
	// Split NW's left child (a level-1 leaf whose hypotenuse lies on the
	// x=0 boundary) so that its two leg neighbors, NW's right child and
	// SE's right child, are redirected to the new grandchildren; then
	// merge it back and confirm both links point at the level-1 node again.
	split(p, mesh.rootNW) // splits both roots (reciprocal)
	nw := p.Get(mesh.rootNW)
	leftLevel1 := nw.LeftChild

	if !split(p, leftLevel1) {
		t.Fatal("level-1 split failed")
	}
	if !goodForMerge(p, leftLevel1) {
		t.Fatal("expected level-1 node to be good for merge")
	}
	merge(p, leftLevel1)

	refreshed := p.Get(leftLevel1)
	if !refreshed.IsLeaf() {
		t.Fatal("expected level-1 node to be a leaf again")
	}
	// Both external leg-neighbor links must resolve reciprocally again.
	for _, nb := range []NodeHandle{refreshed.LeftNeighbor, refreshed.RightNeighbor} {
		if nb == NoHandle {
			t.Fatal("expected level-1 node to keep both leg neighbors after merge")
		}
		other := p.Get(nb)
		if other.BaseNeighbor != leftLevel1 && other.LeftNeighbor != leftLevel1 && other.RightNeighbor != leftLevel1 {
			t.Fatal("external neighbor link not reciprocal after merge")
		}
	}
}
