package geomtransform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     GeometricRecord
		wantErr bool
	}{
		{name: "empty", rec: GeometricRecord{}, wantErr: false},
		{name: "millimeters", rec: GeometricRecord{Unit: "mm"}, wantErr: false},
		{name: "made-up unit", rec: GeometricRecord{Unit: "furlong"}, wantErr: true},
		{name: "negative radius", rec: GeometricRecord{Radius: -1}, wantErr: true},
		{name: "negative radii entry", rec: GeometricRecord{Radii: []float64{7.1, -0.5}}, wantErr: true},
		{name: "spheres", rec: GeometricRecord{Unit: "cm", Radius: 8.2}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
