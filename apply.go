package geomtransform

import "github.com/go-gl/mathgl/mgl64"

// Apply transforms every point in the set: each point is augmented with a
// homogeneous coordinate of 1, multiplied through the matrix, and the
// homogeneous coordinate dropped again. A new PointSet is returned; points
// is left untouched. A nil set stays nil.
func (t Transform) Apply(points PointSet) PointSet {
	if points == nil {
		return nil
	}
	m := t.Mat4()
	out := make(PointSet, len(points))
	for i, p := range points {
		out[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	return out
}

// ApplyPoint transforms a single point.
func (t Transform) ApplyPoint(p mgl64.Vec3) mgl64.Vec3 {
	return t.Mat4().Mul4x1(p.Vec4(1)).Vec3()
}
