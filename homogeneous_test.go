package geomtransform

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestHomogeneousRow(t *testing.T) {
	projective := Identity()
	projective[15] = 2 // last row becomes [0 0 0 2]

	sheared := Identity()
	sheared[3] = 0.5 // leaks x into the homogeneous coordinate

	tests := []struct {
		name    string
		tr      Transform
		wantErr bool
	}{
		{name: "identity", tr: Identity(), wantErr: false},
		{name: "rigid motion", tr: Translate(mgl64.Vec3{1, 2, 3}).Mul(RotateX(0.3)), wantErr: false},
		{name: "scaling keeps the row", tr: Scale(2), wantErr: false},
		{name: "projective row", tr: projective, wantErr: true},
		{name: "contaminated row", tr: sheared, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HomogeneousRow.Validate(tt.tr)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var ite *InvalidTransformError
			require.ErrorAs(t, err, &ite)
		})
	}
}

func TestHomogeneousRowReportsRow(t *testing.T) {
	tr := Identity()
	tr[15] = 2
	err := HomogeneousRow.Validate(tr)
	var ite *InvalidTransformError
	require.ErrorAs(t, err, &ite)
	require.Equal(t, mgl64.Vec4{0, 0, 0, 2}, ite.Row)
}

func TestHomogeneousRowRejectsOtherTypes(t *testing.T) {
	err := HomogeneousRow.Validate("not a transform")
	require.Error(t, err)
	var ite *InvalidTransformError
	require.False(t, errors.As(err, &ite))
}
