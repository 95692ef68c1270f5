package geomtransform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their validation errors, as
// returned by [GeometricRecord.Validate]. It is an alias for
// [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

// InvalidTransformError reports a matrix whose last row is not [0 0 0 1].
// Such a matrix is not an affine homogeneous transform and is rejected
// outright, regardless of how the record classifies.
type InvalidTransformError struct {
	Row mgl64.Vec4 // the offending last row
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("invalid transform: last row must be [0 0 0 1], got %v", e.Row)
}

// NonRigidTransformError reports a transform that scales or shears where the
// record's classification demands a rigid-body transform.
type NonRigidTransformError struct {
	Det float64 // determinant of the rotation block
}

func (e *NonRigidTransformError) Error() string {
	return fmt.Sprintf("non-rigid transform: rotation determinant is %v, want 1", e.Det)
}

// NonUniformScaleError reports a transform whose rotation block scales the
// axes unevenly. Only the opt-in [UniformScale] rule returns it.
type NonUniformScaleError struct {
	Scale mgl64.Vec3 // per-axis scale factors
}

func (e *NonUniformScaleError) Error() string {
	return fmt.Sprintf("non-uniform scaling: per-axis factors %v differ", e.Scale)
}
