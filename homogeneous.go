package geomtransform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// affineRow is the only last row an affine homogeneous transform may have.
var affineRow = mgl64.Vec4{0, 0, 0, 1}

type homogeneousRowRule struct{}

// HomogeneousRow is a validation rule that checks the last row of a Transform
// equals [0 0 0 1] exactly. Composed rotations accumulate floating-point
// noise in the rotation block, but the last row is set, not computed, so no
// tolerance applies.
var HomogeneousRow validation.Rule = homogeneousRowRule{}

// Validate checks if the given value is valid or not.
func (homogeneousRowRule) Validate(value any) error {
	t, ok := value.(Transform)
	if !ok {
		return errors.New("must be a Transform")
	}
	if row := t.Mat4().Row(3); row != affineRow {
		return &InvalidTransformError{Row: row}
	}
	return nil
}
