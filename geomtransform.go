package geomtransform

import validation "github.com/go-ozzo/ozzo-validation/v4"

// TransformGeometry applies t to every recognized geometric field of rec and
// returns the transformed record. The transform is validated against the
// record's classification before any field is touched, so an error never
// leaves a partially transformed record behind.
//
// Position fields get the full transform, orientation fields only its
// rotation block. Nested records (fiducials, boundary meshes) are transformed
// recursively, each re-classified and re-validated on its own. Everything
// else is carried over unchanged.
func TransformGeometry(t Transform, rec GeometricRecord) (GeometricRecord, error) {
	return transformGeometry(t, rec, ClassifySensorType, ClassifyVolumeConductorType)
}

// TransformGeometryWith is like TransformGeometry but with caller-supplied
// classifiers. A nil classifier falls back to the default.
func TransformGeometryWith(t Transform, rec GeometricRecord, sensor SensorClassifier, volume VolumeClassifier) (GeometricRecord, error) {
	if sensor == nil {
		sensor = ClassifySensorType
	}
	if volume == nil {
		volume = ClassifyVolumeConductorType
	}
	return transformGeometry(t, rec, sensor, volume)
}

func transformGeometry(t Transform, rec GeometricRecord, sensor SensorClassifier, volume VolumeClassifier) (GeometricRecord, error) {
	if err := ValidateTransform(t, sensor(&rec), volume(&rec)); err != nil {
		return GeometricRecord{}, err
	}
	return transformRecord(t, rec, sensor, volume)
}

// ValidateTransform checks that t is admissible for an object with the given
// classification: the last row must be [0 0 0 1], and where RequiresRigid
// says so, the rotation block must have determinant 1.
func ValidateTransform(t Transform, sensor SensorType, volume VolumeType) error {
	rules := []validation.Rule{HomogeneousRow}
	if RequiresRigid(sensor, volume) {
		rules = append(rules, Rigid)
	}
	return validation.Validate(t, rules...)
}

// RequiresRigid reports whether an object with the given classification may
// only be moved rigidly. Volume conductors always require it, with or
// without a sensor classification. Sensor arrays require it only for MEG,
// where the coil geometry is fixed by the hardware; a global rescale is fine
// for an EEG or NIRS description in other units.
func RequiresRigid(sensor SensorType, volume VolumeType) bool {
	switch {
	case volume != VolumeUnknown:
		return true
	case sensor != SensorUnknown:
		return sensor == SensorMEG
	default:
		return false
	}
}
