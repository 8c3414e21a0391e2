package domain

import (
	"fmt"
	"sort"
)

// Violations is a tree of validation messages shaped like the validated value.
// A nil Violations, at any level, means "no violation here".
//
// The concrete types are Messages (leaf), ListViolations (collection) and
// MapViolations (shape).
type Violations interface {
	// Empty reports whether the tree holds no message at all.
	Empty() bool
	violations()
}

// Messages are the ordered violations recorded against a leaf field.
type Messages []string

func (m Messages) Empty() bool { return len(m) == 0 }
func (Messages) violations() {}

// ListViolations mirrors a collection value. It has the same length as the
// value; indices without violations hold nil.
type ListViolations []Violations

func (l ListViolations) Empty() bool {
	for _, v := range l {
		if v != nil && !v.Empty() {
			return false
		}
	}
	return true
}
func (ListViolations) violations() {}

// MapViolations mirrors a shape value. Only keys with violations are present.
type MapViolations map[string]Violations

func (m MapViolations) Empty() bool {
	for _, v := range m {
		if v != nil && !v.Empty() {
			return false
		}
	}
	return true
}
func (MapViolations) violations() {}

// Flatten lists every message of the tree by its field name, using the same
// naming scheme as accessors: "root[0][key]".
func Flatten(root string, v Violations) map[string][]string {
	out := make(map[string][]string)
	flatten(root, v, out)
	return out
}

func flatten(name string, v Violations, out map[string][]string) {
	switch t := v.(type) {
	case nil:
		return
	case Messages:
		if len(t) > 0 {
			out[name] = append(out[name], t...)
		}
	case ListViolations:
		for i, child := range t {
			flatten(ChildName(name, i), child, out)
		}
	case MapViolations:
		for key, child := range t {
			flatten(ChildName(name, key), child, out)
		}
	}
}

// ChildName builds the name of a child path.
// An empty parent yields the bare key, as top-level form fields are named.
func ChildName(parent string, key any) string {
	if parent == "" {
		return fmt.Sprint(key)
	}
	return fmt.Sprintf("%s[%v]", parent, key)
}

// SortedPaths returns the keys of a flattened tree in lexical order.
func SortedPaths(flat map[string][]string) []string {
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
