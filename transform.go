package trellis

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the layer's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(l *Layer) [6]float64 {
	sx := l.ScaleX
	sy := l.ScaleY
	if l.Rotation == 0 {
		return [6]float64{sx, 0, 0, sy, l.X, l.Y}
	}
	sin, cos := math.Sincos(l.Rotation)
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, l.X, l.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
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

// updateWorldTransform recomputes a layer's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this layer even if it's not dirty.
func updateWorldTransform(l *Layer, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := l.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(l)
		l.worldTransform = multiplyAffine(parentTransform, local)
		l.worldAlpha = parentAlpha * l.Alpha
		l.transformDirty = false
	}

	for _, child := range l.children {
		updateWorldTransform(child, l.worldTransform, l.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the layer's local X and Y and marks it dirty.
func (l *Layer) SetPosition(x, y float64) {
	l.X = x
	l.Y = y
	l.transformDirty = true
}

// Translate adds (dx, dy) to the layer's current position.
func (l *Layer) Translate(dx, dy float64) {
	l.X += dx
	l.Y += dy
	l.transformDirty = true
}

// SetScale sets the layer's ScaleX and ScaleY and marks it dirty.
func (l *Layer) SetScale(sx, sy float64) {
	l.ScaleX = sx
	l.ScaleY = sy
	l.transformDirty = true
}

// SetRotation sets the layer's rotation (in radians) and marks it dirty.
func (l *Layer) SetRotation(r float64) {
	l.Rotation = r
	l.transformDirty = true
}

// SetAlpha sets the layer's alpha and marks it dirty.
func (l *Layer) SetAlpha(a float64) {
	l.Alpha = a
	l.transformDirty = true
}

// MarkDirty marks the layer's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (l *Layer) MarkDirty() {
	l.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this layer's local coordinate space.
func (l *Layer) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(l.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (l *Layer) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(l.worldTransform, lx, ly)
}

// parentToLocal converts a point in the parent's space to this layer's space.
// It does not depend on world transforms being current.
func (l *Layer) parentToLocal(px, py float64) (float64, float64) {
	return transformPoint(invertAffine(computeLocalTransform(l)), px, py)
}
