package geomtransform

import (
	"fmt"
	"reflect"
	"strings"
)

// transformRecord walks the record's fields and dispatches each one on its
// geom tag. It returns a new record; rec itself is never written to.
// Recursed sub-records go back through transformGeometry so that their own
// classification decides whether rigidity applies, independent of the parent.
func transformRecord(t Transform, rec GeometricRecord, sensor SensorClassifier, volume VolumeClassifier) (GeometricRecord, error) {
	out := rec
	rot := t.RotationOnly()

	rv := reflect.ValueOf(&out).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rv.Field(i)
		switch rt.Field(i).Tag.Get("geom") {
		case "position":
			if pts := field.Interface().(PointSet); pts != nil {
				field.Set(reflect.ValueOf(t.Apply(pts)))
			}
		case "orientation":
			if pts := field.Interface().(PointSet); pts != nil {
				field.Set(reflect.ValueOf(rot.Apply(pts)))
			}
		case "recurse":
			if err := recurseField(t, field, fieldKey(rt.Field(i)), sensor, volume); err != nil {
				return GeometricRecord{}, err
			}
		}
	}
	return out, nil
}

// recurseField re-runs the full transform on a nested record field, either a
// single record pointer or a slice of records.
func recurseField(t Transform, field reflect.Value, key string, sensor SensorClassifier, volume VolumeClassifier) error {
	switch sub := field.Interface().(type) {
	case *GeometricRecord:
		if sub == nil {
			return nil
		}
		nested, err := transformGeometry(t, *sub, sensor, volume)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		field.Set(reflect.ValueOf(&nested))
	case []GeometricRecord:
		if sub == nil {
			return nil
		}
		nested := make([]GeometricRecord, len(sub))
		for j := range sub {
			nr, err := transformGeometry(t, sub[j], sensor, volume)
			if err != nil {
				return fmt.Errorf("%s[%d]: %w", key, j, err)
			}
			nested[j] = nr
		}
		field.Set(reflect.ValueOf(nested))
	}
	return nil
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}
