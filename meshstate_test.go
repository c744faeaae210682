package roamterrain

import "testing"

func TestInitMeshStateRootsAreReciprocalBaseNeighbors(t *testing.T) {
	p := NewBinTriPool(8)
	mesh, err := initMeshState(p, 16)
	if err != nil {
		t.Fatalf("initMeshState: %v", err)
	}
	nw := p.Get(mesh.rootNW)
	se := p.Get(mesh.rootSE)
	if nw.BaseNeighbor != mesh.rootSE || se.BaseNeighbor != mesh.rootNW {
		t.Fatalf("roots are not reciprocal base neighbors: nw.Base=%v se.Base=%v", nw.BaseNeighbor, se.BaseNeighbor)
	}
	if !nw.IsLeaf() || !se.IsLeaf() {
		t.Fatal("fresh roots must be leaves")
	}
}

func TestInitMeshStateCoversDomainCorners(t *testing.T) {
	p := NewBinTriPool(8)
	mesh, err := initMeshState(p, 32)
	if err != nil {
		t.Fatalf("initMeshState: %v", err)
	}
	nw := p.Get(mesh.rootNW)
	se := p.Get(mesh.rootSE)

	corners := map[GridPoint]bool{
		{X: 0, Y: 0}:   false,
		{X: 32, Y: 32}: false,
		{X: 0, Y: 32}:  false,
		{X: 32, Y: 0}:  false,
	}
	for _, v := range []GridPoint{nw.V0, nw.V1, nw.Va, se.V0, se.V1, se.Va} {
		if _, ok := corners[v]; ok {
			corners[v] = true
		}
	}
	for corner, seen := range corners {
		if !seen {
			t.Errorf("corner %+v not covered by either root triangle", corner)
		}
	}
}

func TestInitMeshStateAllocFailureReturnsError(t *testing.T) {
	p := NewBinTriPool(1) // only room for one root
	if _, err := initMeshState(p, 8); err == nil {
		t.Fatal("expected error when pool cannot hold both roots")
	}
}

func TestWalkPreOrderVisitsBothRootsAsLeaves(t *testing.T) {
	p := NewBinTriPool(8)
	mesh, _ := initMeshState(p, 8)

	var seen []NodeHandle
	walkPreOrder(p, mesh.rootNW, func(tri *BinTri) {
		for h := NodeHandle(0); h < NodeHandle(p.Next()); h++ {
			if p.Get(h) == tri {
				seen = append(seen, h)
			}
		}
	})
	if len(seen) != 1 {
		t.Fatalf("expected exactly one leaf visited from an unsplit root, got %d", len(seen))
	}

	if n := countLeaves(p, mesh.rootNW) + countLeaves(p, mesh.rootSE); n != 2 {
		t.Fatalf("countLeaves across both roots = %d, want 2", n)
	}
}
