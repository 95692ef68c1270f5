package geomtransform

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// epsilon64 is the machine epsilon for float64.
const epsilon64 = 1.0 / (1 << 52)

// rigidTolerance absorbs the floating-point noise of composed rotations while
// still rejecting real scaling or shear.
const rigidTolerance = 100 * epsilon64

type rigidRule struct {
	tol float64
}

// Rigid is a validation rule that checks the rotation block of a Transform
// has determinant 1, i.e. the transform is a rigid-body motion of rotation
// and translation only.
var Rigid validation.Rule = rigidRule{tol: rigidTolerance}

// RigidWithin is like [Rigid] with a caller-chosen tolerance on |det - 1|.
func RigidWithin(tol float64) validation.Rule {
	return rigidRule{tol: tol}
}

func (r rigidRule) Validate(value any) error {
	t, ok := value.(Transform)
	if !ok {
		return errors.New("must be a Transform")
	}
	det := t.Mat4().Mat3().Det()
	if math.Abs(det-1) > r.tol {
		return &NonRigidTransformError{Det: det}
	}
	return nil
}

type uniformScaleRule struct {
	tol float64
}

// UniformScale is a validation rule that checks the three axes are scaled by
// the same factor. A volume-preserving anisotropic scale such as
// ScaleAxes(2, 1, 0.5) has determinant 1 and slips past [Rigid];
// TransformGeometry accepts it on any path that does not require rigidity,
// matching the historical behavior. Callers wanting the stricter check add
// the rule themselves:
//
//	err := validation.Validate(t, geomtransform.HomogeneousRow, geomtransform.UniformScale)
var UniformScale validation.Rule = uniformScaleRule{tol: rigidTolerance}

func (r uniformScaleRule) Validate(value any) error {
	t, ok := value.(Transform)
	if !ok {
		return errors.New("must be a Transform")
	}
	m := t.Mat4().Mat3()
	scale := mgl64.Vec3{m.Col(0).Len(), m.Col(1).Len(), m.Col(2).Len()}
	lo := math.Min(scale.X(), math.Min(scale.Y(), scale.Z()))
	hi := math.Max(scale.X(), math.Max(scale.Y(), scale.Z()))
	if hi-lo > r.tol*hi {
		return &NonUniformScaleError{Scale: scale}
	}
	return nil
}
