package geomtransform

import "strings"

// SensorType tags the sensor family of a record. SensorUnknown is the
// sentinel for records that do not look like any recognized sensor array.
type SensorType int

const (
	SensorUnknown SensorType = iota
	SensorMEG
	SensorEEG
	SensorNIRS
)

func (s SensorType) String() string {
	switch s {
	case SensorMEG:
		return "meg"
	case SensorEEG:
		return "eeg"
	case SensorNIRS:
		return "nirs"
	default:
		return "unknown"
	}
}

// VolumeType tags the volume-conductor family of a record. VolumeUnknown is
// the sentinel for records that do not look like a volume conductor.
type VolumeType int

const (
	VolumeUnknown VolumeType = iota
	VolumeSingleSphere
	VolumeConcentricSpheres
	VolumeBEM
)

func (v VolumeType) String() string {
	switch v {
	case VolumeSingleSphere:
		return "singlesphere"
	case VolumeConcentricSpheres:
		return "concentricspheres"
	case VolumeBEM:
		return "bem"
	default:
		return "unknown"
	}
}

// SensorClassifier reports the sensor family of a record.
type SensorClassifier func(rec *GeometricRecord) SensorType

// VolumeClassifier reports the volume-conductor family of a record.
type VolumeClassifier func(rec *GeometricRecord) VolumeType

// ClassifySensorType is the default SensorClassifier. An explicit Kind wins;
// otherwise the distinguishing position fields decide. Records matching
// neither get SensorUnknown.
func ClassifySensorType(rec *GeometricRecord) SensorType {
	kind := strings.ToLower(rec.Kind)
	switch {
	case strings.HasPrefix(kind, "meg"):
		return SensorMEG
	case strings.HasPrefix(kind, "eeg"),
		strings.HasPrefix(kind, "ieeg"),
		strings.HasPrefix(kind, "ecog"):
		return SensorEEG
	case strings.HasPrefix(kind, "nirs"),
		strings.HasPrefix(kind, "opto"):
		return SensorNIRS
	}
	switch {
	case len(rec.CoilPositions) > 0:
		return SensorMEG
	case len(rec.ElectrodePositions) > 0:
		return SensorEEG
	case len(rec.OptodePositions) > 0:
		return SensorNIRS
	}
	return SensorUnknown
}

// ClassifyVolumeConductorType is the default VolumeClassifier. An explicit
// Kind wins; otherwise boundary meshes mean BEM and radii mean spheres.
func ClassifyVolumeConductorType(rec *GeometricRecord) VolumeType {
	kind := strings.ToLower(rec.Kind)
	switch {
	case strings.HasPrefix(kind, "singlesphere"):
		return VolumeSingleSphere
	case strings.HasPrefix(kind, "concentricspheres"),
		strings.HasPrefix(kind, "localspheres"):
		return VolumeConcentricSpheres
	case strings.HasPrefix(kind, "bem"),
		kind == "dipoli",
		kind == "openmeeg":
		return VolumeBEM
	}
	switch {
	case len(rec.Boundaries) > 0:
		return VolumeBEM
	case len(rec.Radii) > 1:
		return VolumeConcentricSpheres
	case rec.Radius > 0:
		return VolumeSingleSphere
	}
	return VolumeUnknown
}
