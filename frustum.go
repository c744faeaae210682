package roamterrain

// FrustumClass is the three-way classification of a bounding sphere
// against a view frustum: entirely outside, entirely inside, or
// straddling the boundary. The required Callbacks.SphereInFrustum
// callback only reports a single inside-or-intersecting bool, which
// cannot by itself distinguish Inside from Intersecting. An optional
// Callbacks.ClassifySphere — a fast reject test plus a richer
// classification used only where it pays for itself — lets a caller
// with a real frustum supply the finer answer so the split-merge
// recursion can skip re-testing an already-fully-visible subtree.
// Without it, the engine falls back to a conservative two-way answer
// derived from the bool (never promotes to Inside), which is always
// correct, just less able to skip work.
type FrustumClass uint8

const (
	FrustumOutside FrustumClass = iota
	FrustumIntersecting
	FrustumInside
)

// classify resolves a sphere's frustum class using ClassifySphere if the
// caller registered one, otherwise deriving a conservative answer from
// the required SphereInFrustum bool.
func (cb Callbacks) classify(x, y, radius float64) FrustumClass {
	if cb.ClassifySphere != nil {
		return cb.ClassifySphere(x, y, radius)
	}
	if cb.SphereInFrustum(x, y, radius) {
		return FrustumIntersecting
	}
	return FrustumOutside
}

// Plane is a 2D half-plane ax + by + c >= 0 describes the "inside" side.
// BoxFrustum composes planes to bound an axis-aligned or rotated viewing
// region; this is a reference implementation for callers (tests, demos)
// that don't already own a real 3D frustum. An arbitrary convex
// half-plane set, rather than a fixed AABB, so it can also express a
// rotated or perspective-projected frustum's footprint on the terrain
// plane.
type Plane struct {
	A, B, C float64
}

// signedDistance returns the signed distance from (x, y) to the plane,
// positive on the inside.
func (p Plane) signedDistance(x, y float64) float64 {
	return p.A*x + p.B*y + p.C
}

// BoxFrustum is a convex region described by its bounding planes.
// SphereInFrustum and ClassifySphere below satisfy the Callbacks
// SphereInFrustum/ClassifySphere fields directly.
type BoxFrustum struct {
	Planes []Plane
}

// NewRectFrustum builds a BoxFrustum for the axis-aligned rectangle
// [minX, maxX] x [minY, maxY], the common case for a top-down terrain
// viewer (demos, tests).
func NewRectFrustum(minX, minY, maxX, maxY float64) *BoxFrustum {
	return &BoxFrustum{Planes: []Plane{
		{A: 1, B: 0, C: -minX},  // x >= minX
		{A: -1, B: 0, C: maxX},  // x <= maxX
		{A: 0, B: 1, C: -minY},  // y >= minY
		{A: 0, B: -1, C: maxY},  // y <= maxY
	}}
}

// SphereInFrustum reports whether the sphere intersects or lies inside
// the frustum: true unless some plane places the sphere entirely on its
// outside. Satisfies Callbacks.SphereInFrustum.
func (f *BoxFrustum) SphereInFrustum(x, y, radius float64) bool {
	return f.ClassifySphere(x, y, radius) != FrustumOutside
}

// ClassifySphere performs the full three-way test. Satisfies
// Callbacks.ClassifySphere.
func (f *BoxFrustum) ClassifySphere(x, y, radius float64) FrustumClass {
	allInside := true
	for _, p := range f.Planes {
		d := p.signedDistance(x, y)
		if d < -radius {
			return FrustumOutside
		}
		if d < radius {
			allInside = false
		}
	}
	if allInside {
		return FrustumInside
	}
	return FrustumIntersecting
}
