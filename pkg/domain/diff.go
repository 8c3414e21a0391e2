package domain

import (
	"reflect"
)

// Diff calculates the top-level keys that differ between two form values.
// Added or modified keys carry their new value; deleted keys are present with
// a nil value. It returns nil when nothing changed.
func Diff(old, new map[string]any) map[string]any {
	delta := make(map[string]any)

	for k, newVal := range new {
		oldVal, exists := old[k]
		if !exists || !reflect.DeepEqual(oldVal, newVal) {
			delta[k] = newVal
		}
	}

	for k := range old {
		if _, exists := new[k]; !exists {
			delta[k] = nil
		}
	}

	// Return nil if delta is empty so omitempty can remove the key
	if len(delta) == 0 {
		return nil
	}
	return delta
}
