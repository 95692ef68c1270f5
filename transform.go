package geomtransform

import "github.com/go-gl/mathgl/mgl64"

// Transform is a 4×4 homogeneous transformation acting on 3D points: a
// rotation block in the upper-left 3×3, a translation in the last column.
// The last row must be [0 0 0 1]; [HomogeneousRow] rejects anything else.
type Transform mgl64.Mat4

// Identity returns the identity transform.
func Identity() Transform {
	return Transform(mgl64.Ident4())
}

// Translate returns a pure translation by v.
func Translate(v mgl64.Vec3) Transform {
	return Transform(mgl64.Translate3D(v.X(), v.Y(), v.Z()))
}

// RotateX returns a rotation of angle radians around the X axis.
func RotateX(angle float64) Transform {
	return Transform(mgl64.HomogRotate3DX(angle))
}

// RotateY returns a rotation of angle radians around the Y axis.
func RotateY(angle float64) Transform {
	return Transform(mgl64.HomogRotate3DY(angle))
}

// RotateZ returns a rotation of angle radians around the Z axis.
func RotateZ(angle float64) Transform {
	return Transform(mgl64.HomogRotate3DZ(angle))
}

// Scale returns a uniform scaling by s.
func Scale(s float64) Transform {
	return Transform(mgl64.Scale3D(s, s, s))
}

// ScaleAxes returns a per-axis scaling. The result is not rigid unless x, y
// and z are all 1.
func ScaleAxes(x, y, z float64) Transform {
	return Transform(mgl64.Scale3D(x, y, z))
}

// Mat4 returns the underlying matrix.
func (t Transform) Mat4() mgl64.Mat4 {
	return mgl64.Mat4(t)
}

// Mul composes two transforms: the result applies u first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform(t.Mat4().Mul4(u.Mat4()))
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	return Transform(t.Mat4().Inv())
}

// RotationOnly returns the upper-left 3×3 block embedded in an otherwise
// identity matrix: the same rotation (and scale, if any) with the translation
// zeroed. Orientation fields go through this so direction vectors never shift
// with position.
func (t Transform) RotationOnly() Transform {
	return Transform(t.Mat4().Mat3().Mat4())
}
