// Package geomtransform applies 4×4 homogeneous transformations to the
// geometry of sensor arrays and volume-conductor models.
//
// A [GeometricRecord] is an open record of optional fields: position arrays,
// orientation arrays, and nested sub-records such as fiducials and boundary
// meshes. [TransformGeometry] validates the transform against the record's
// classification, then walks the fields:
//
//	moved, err := geomtransform.TransformGeometry(t, rec)
//
// Position fields are rotated and translated, orientation fields are only
// rotated (a direction must not shift with position), nested records are
// transformed recursively, and everything else passes through unchanged.
//
// Whether the transform must be rigid depends on what the record describes:
//   - volume conductors may only be moved rigidly
//   - MEG sensor arrays may only be moved rigidly
//   - other sensor arrays may additionally be scaled, e.g. for a unit change
//   - unclassified records accept any affine transform
//
// Classification is pluggable via [TransformGeometryWith]; the defaults are
// [ClassifySensorType] and [ClassifyVolumeConductorType].
package geomtransform
