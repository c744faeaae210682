package roamterrain

import "github.com/hajimehoshi/ebiten/v2"

// EbitenVertexSink adapts Engine's SendVertex callback into a flat
// ebiten.Vertex/index buffer pair suitable for a single
// *ebiten.Image.DrawTriangles call per frame. A high-water-mark slice
// buffer that only grows, truncated (not reallocated) at the start of
// each frame, so a steady-state mesh settles into zero per-frame
// allocation.
type EbitenVertexSink struct {
	verts   []ebiten.Vertex
	indices []uint16

	// Color tints every emitted vertex uniformly; a caller wanting
	// per-triangle color (e.g. height-based shading) should read Vertices()
	// after a Draw call and rewrite the color fields directly before
	// handing the buffer to ebiten.
	Color struct{ R, G, B, A float32 }

	// Transform maps grid coordinates to screen space, including
	// rotation or zoom about an arbitrary grid-space pivot.
	Transform ScreenTransform
}

// NewEbitenVertexSink returns a sink with an identity grid-to-screen
// mapping and opaque white vertex color.
func NewEbitenVertexSink() *EbitenVertexSink {
	s := &EbitenVertexSink{Transform: ScreenTransform{Scale: 1}}
	s.Color.R, s.Color.G, s.Color.B, s.Color.A = 1, 1, 1, 1
	return s
}

// Reset truncates the vertex/index buffers to zero length without
// releasing their backing arrays, to be called once before each Draw.
func (s *EbitenVertexSink) Reset() {
	s.verts = s.verts[:0]
	s.indices = s.indices[:0]
}

// SendVertex is registered as Callbacks.SendVertex. It appends one
// screen-space vertex and the next sequential triangle index; Engine
// guarantees three calls per emitted leaf, so every three appended
// vertices form one triangle in emission order.
//
// The index is a uint16, matching ebiten.Image.DrawTriangles's index
// buffer type: a single sink cannot hold more than 65536 vertices
// between Reset calls without its indices wrapping. A PoolCapacity
// large enough to produce that many leaves in one frame needs either
// multiple sinks or multiple DrawTriangles calls per frame.
func (s *EbitenVertexSink) SendVertex(x, y int) {
	fx, fy := s.Transform.Apply(float64(x), float64(y))
	sx, sy := float32(fx), float32(fy)
	idx := uint16(len(s.verts))
	s.verts = append(s.verts, ebiten.Vertex{
		DstX: sx, DstY: sy,
		SrcX: 0, SrcY: 0,
		ColorR: s.Color.R, ColorG: s.Color.G, ColorB: s.Color.B, ColorA: s.Color.A,
	})
	s.indices = append(s.indices, idx)
}

// Vertices returns the buffer filled by the most recent Draw call,
// valid until the next Reset.
func (s *EbitenVertexSink) Vertices() []ebiten.Vertex {
	return s.verts
}

// Indices returns the triangle index buffer filled by the most recent
// Draw call, valid until the next Reset.
func (s *EbitenVertexSink) Indices() []uint16 {
	return s.indices
}

// TriangleCount returns the number of triangles currently buffered.
func (s *EbitenVertexSink) TriangleCount() int {
	return len(s.indices) / 3
}
