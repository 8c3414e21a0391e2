package fields

import (
	"reflect"

	"github.com/aretw0/formtree/pkg/domain"
)

// asList reads a sequence value. Typed slices are copied into []any.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asRecord reads a keyed record. Maps with string keys are copied into map[string]any.
func asRecord(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// currentList reads the sequence an update is applied to. A missing value is
// an empty sequence; anything else that is not a sequence is a usage bug and
// panics with a *domain.TypeError.
func currentList(op string, v any) []any {
	if v == nil {
		return nil
	}
	list, ok := asList(v)
	if !ok {
		panic(&domain.TypeError{Op: op, Expected: "sequence", Value: v})
	}
	return list
}

// currentRecord is currentList for keyed records.
func currentRecord(op string, v any) map[string]any {
	if v == nil {
		return nil
	}
	rec, ok := asRecord(v)
	if !ok {
		panic(&domain.TypeError{Op: op, Expected: "record", Value: v})
	}
	return rec
}
