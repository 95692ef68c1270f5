package geomtransform

import (
	"github.com/go-gl/mathgl/mgl64"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PointSet is an ordered set of 3D points or direction vectors, one row per
// point.
type PointSet []mgl64.Vec3

// GeometricRecord is an open, heterogeneous description of a geometric
// object: a sensor array, a volume conductor, a boundary mesh, or any mix.
// Every member is optional.
//
// The geom tag names the transform policy for each field:
//   - position: full transform (rotation, translation, scaling)
//   - orientation: rotation block only, never translated
//   - recurse: nested records, each re-classified and re-validated
//
// Untagged fields pass through unchanged.
type GeometricRecord struct {
	// Kind optionally names the object type, e.g. "meg306", "eeg1020" or
	// "singlesphere". The default classifiers consult it before falling
	// back on field presence.
	Kind string `json:"type,omitempty"`

	Label []string `json:"label,omitempty"`
	Unit  string   `json:"unit,omitempty"`

	Positions          PointSet `geom:"position" json:"pos,omitempty"`
	ChannelPositions   PointSet `geom:"position" json:"chanpos,omitempty"`
	ElectrodePositions PointSet `geom:"position" json:"elecpos,omitempty"`
	CoilPositions      PointSet `geom:"position" json:"coilpos,omitempty"`
	OptodePositions    PointSet `geom:"position" json:"optopos,omitempty"`
	// SphereOrigins holds the center of each sphere of a spherical volume
	// conductor, one row per sphere.
	SphereOrigins PointSet `geom:"position" json:"o,omitempty"`

	Orientations        PointSet `geom:"orientation" json:"ori,omitempty"`
	ChannelOrientations PointSet `geom:"orientation" json:"chanori,omitempty"`
	CoilOrientations    PointSet `geom:"orientation" json:"coilori,omitempty"`
	OptodeOrientations  PointSet `geom:"orientation" json:"optoori,omitempty"`

	Fiducials  *GeometricRecord  `geom:"recurse" json:"fid,omitempty"`
	Boundaries []GeometricRecord `geom:"recurse" json:"bnd,omitempty"`

	// Triangles indexes into Positions, three vertex indices per face.
	Triangles [][3]int  `json:"tri,omitempty"`
	Radius    float64   `json:"r,omitempty"`
	Radii     []float64 `json:"radii,omitempty"`

	// Extra carries fields with no recognized policy. It is passed through
	// untouched.
	Extra map[string]any `json:"-"`
}

// Validate sanity-checks the record's shape: a recognized unit name and
// non-negative sphere radii. It is optional; TransformGeometry does not call
// it.
func (r GeometricRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Unit, validation.In("m", "dm", "cm", "mm")),
		validation.Field(&r.Radius, validation.Min(0.0)),
		validation.Field(&r.Radii, validation.Each(validation.Min(0.0))),
	)
}
