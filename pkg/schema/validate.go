package schema

import (
	"reflect"
	"sort"

	"github.com/aretw0/formtree/pkg/domain"
)

// CheckData checks the structure of raw form data against the fields of a
// definition, before any normalization. It reports undeclared keys, shapes
// given something other than a record, collections given something other
// than a list and leaves given a list or record (toggles may take a
// {checked, value} record). Absent keys are fine: they take their defaults.
// Returns an *AggregateError with every failure found.
func CheckData(fs Fields, data map[string]any) error {
	c := &collector{}
	checkRecord(c, "", fs, data)
	return c.err()
}

func checkRecord(c *collector, path string, fs Fields, data map[string]any) {
	for _, f := range fs {
		value, exists := data[f.Key]
		if !exists || value == nil {
			continue
		}
		checkValue(c, domain.ChildName(path, f.Key), f.Def, value)
	}

	var undeclared []string
	for key := range data {
		if _, ok := fs.Lookup(key); !ok {
			undeclared = append(undeclared, key)
		}
	}
	sort.Strings(undeclared)
	for _, key := range undeclared {
		c.fail(domain.ChildName(path, key), "not declared in definition", nil)
	}
}

func checkValue(c *collector, path string, def FieldDef, value any) {
	typ, err := ParseType(def.Type)
	if err != nil {
		c.fail(path, err.Error(), def.Type)
		return
	}
	checkTyped(c, path, typ, def, value)
}

func checkTyped(c *collector, path string, typ Type, def FieldDef, value any) {
	kind := reflect.ValueOf(value).Kind()
	switch t := typ.(type) {
	case *ShapeType:
		rec, ok := value.(map[string]any)
		if !ok {
			c.fail(path, "expected a record", kindName(value))
			return
		}
		checkRecord(c, path, def.Fields, rec)

	case *CollectionType:
		if kind != reflect.Slice && kind != reflect.Array {
			c.fail(path, "expected a list", kindName(value))
			return
		}
		rv := reflect.ValueOf(value)
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			if elem == nil {
				continue
			}
			name := domain.ChildName(path, i)
			if t.Elem == nil {
				if def.Of != nil {
					checkValue(c, name, *def.Of, elem)
				}
				continue
			}
			checkTyped(c, name, t.Elem, def, elem)
		}

	case *LeafType:
		if kind == reflect.Map && t.Toggle() {
			return
		}
		if kind == reflect.Map || kind == reflect.Slice || kind == reflect.Array {
			c.fail(path, "expected a single value", kindName(value))
		}
	}
}

func kindName(value any) string {
	return reflect.ValueOf(value).Kind().String()
}
