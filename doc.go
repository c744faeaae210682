// Package roamterrain implements a real-time continuous-level-of-detail
// terrain mesh using the Split-Merge ROAM algorithm: a bintree forest
// over a square heightfield, refined and coarsened frame-by-frame
// toward a target triangle budget.
//
// # Quick start
//
//	pool := roamterrain.NewBinTriPool(40000)
//	engine, err := roamterrain.New(256, pool, roamterrain.Config{
//		TargetPolygonCount: 8000,
//	})
//	// ... handle err ...
//
//	grid := roamterrain.NewGrid(256)
//	grid.Fill(func(x, y int) uint8 { return sampleHeight(x, y) })
//
//	engine.RegisterCallbacks(roamterrain.Callbacks{
//		GetHeight:       grid.Sample,
//		DistToCamera:    camera.DistToCamera,
//		SphereInFrustum: frustum.SphereInFrustum,
//		SendVertex:      sink.SendVertex,
//	})
//	if err := engine.Init(); err != nil {
//		// ...
//	}
//
//	for {
//		if _, err := engine.Update(); err != nil {
//			// ...
//		}
//		sink.Reset()
//		if err := engine.Draw(); err != nil {
//			// ...
//		}
//		// upload sink.Vertices()/sink.Indices() and present
//	}
//
// # Mesh state
//
// The mesh is a forest of two bintree roots (one per half of the square
// domain), each node a [BinTri] allocated from a fixed-capacity
// [BinTriPool]. Nodes reference each other by [NodeHandle], an arena
// index rather than a pointer, so the cyclic neighbor graph a bintree
// requires never fights Go's ownership model.
//
// # Refinement
//
// [Engine.Update] runs the split-merge engine over both roots each
// frame: leaves whose distance-scaled variance exceeds the current
// quality constant are split via the force-split protocol (which may
// cascade into a neighbor to keep base-neighbor pairs at the same
// level), and internal nodes whose distance-scaled variance no longer
// exceeds it are merged back down where goodForMerge allows. A
// quality controller nudges the quality constant after every frame to
// steer the live triangle count toward Config.TargetPolygonCount.
//
// # Output
//
// [Engine.Draw] walks the current mesh and emits each leaf's three
// vertices through the registered SendVertex callback in a fixed
// winding order. [EbitenVertexSink] is a ready-made adapter for
// rendering the result with [Ebitengine]'s DrawTriangles.
//
// [Ebitengine]: https://ebitengine.org
package roamterrain
