package roamterrain

import "math"

// identityTransform is the identity affine matrix, [a, b, c, d, tx, ty].
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// ScreenTransform describes a grid-to-screen affine mapping: translate
// to the origin, scale, rotate, then translate to screen position.
// EbitenVertexSink.Transform is a ScreenTransform, so a host can pan,
// zoom, or rotate the rendered mesh around any grid-space pivot instead
// of only the flat axis-aligned scale+offset a bare Scale field allows.
type ScreenTransform struct {
	OriginX, OriginY float64 // grid-space point that maps to (ScreenX, ScreenY)
	Scale            float64
	Rotation         float64 // radians, clockwise
	ScreenX, ScreenY float64
}

// translateMatrix returns the affine matrix for a pure translation.
func translateMatrix(tx, ty float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, tx, ty}
}

// scaleMatrix returns the affine matrix for a uniform scale about the origin.
func scaleMatrix(s float64) [6]float64 {
	return [6]float64{s, 0, 0, s, 0, 0}
}

// rotateMatrix returns the affine matrix for a rotation about the origin.
func rotateMatrix(radians float64) [6]float64 {
	sin, cos := math.Sincos(radians)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// matrix computes the affine matrix for t: [a, b, c, d, tx, ty] such
// that screenX = a*x + c*y + tx, screenY = b*x + d*y + ty. Built by
// composing elementary matrices in application order (translate to
// origin, scale, rotate, translate to screen position) via
// multiplyAffine rather than hand-expanding the product, so adding a
// further stage (e.g. skew) only means inserting another factor.
func (t ScreenTransform) matrix() [6]float64 {
	m := translateMatrix(-t.OriginX, -t.OriginY)
	m = multiplyAffine(scaleMatrix(t.Scale), m)
	m = multiplyAffine(rotateMatrix(t.Rotation), m)
	m = multiplyAffine(translateMatrix(t.ScreenX, t.ScreenY), m)
	return m
}

// Apply maps a grid-space point to screen space.
func (t ScreenTransform) Apply(x, y float64) (sx, sy float64) {
	return transformPoint(t.matrix(), x, y)
}

// ScreenToGrid maps a screen-space point back to grid space, the
// inverse of Apply. If t's matrix is singular (Scale == 0), invertAffine
// falls back to the identity and (sx, sy) is returned unchanged.
func (t ScreenTransform) ScreenToGrid(sx, sy float64) (x, y float64) {
	return transformPoint(invertAffine(t.matrix()), sx, sy)
}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
