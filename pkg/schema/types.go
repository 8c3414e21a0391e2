package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/validators"
)

// Type is a parsed field type.
type Type interface {
	// Name returns the type as written in definitions (e.g. "input", "[input]").
	Name() string
}

// LeafType is one of the leaf field types.
type LeafType struct {
	name string
	new  func(vs ...validators.Validator) (fields.Node, error)
}

func (t *LeafType) Name() string { return t.name }

// New creates the leaf field with the given validators.
func (t *LeafType) New(vs ...validators.Validator) (fields.Node, error) {
	return t.new(vs...)
}

// Toggle reports whether the leaf stores a toggle state.
func (t *LeafType) Toggle() bool {
	return t.name == "checkbox" || t.name == "toggle"
}

// CollectionType repeats an element type. A nil Elem means the element is
// described by the entry's "of" definition.
type CollectionType struct {
	Elem Type
}

func (t *CollectionType) Name() string {
	if t.Elem == nil {
		return "collection"
	}
	return fmt.Sprintf("[%s]", t.Elem.Name())
}

// ShapeType is a nested record described by the entry's fields.
type ShapeType struct{}

func (t *ShapeType) Name() string { return "shape" }

func newSimple(vs ...validators.Validator) (fields.Node, error) {
	n, err := fields.NewSimple(vs...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func newToggle(vs ...validators.Validator) (fields.Node, error) {
	n, err := fields.NewToggle(vs...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func newRadio(vs ...validators.Validator) (fields.Node, error) {
	n, err := fields.NewRadio(vs...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

var leafTypes = map[string]*LeafType{
	"input":    {name: "input", new: newSimple},
	"textarea": {name: "textarea", new: newSimple},
	"select":   {name: "select", new: newSimple},
	"checkbox": {name: "checkbox", new: newToggle},
	"toggle":   {name: "toggle", new: newToggle},
	"radio":    {name: "radio", new: newRadio},
}

// TypeNames lists every type keyword, in lexical order.
func TypeNames() []string {
	names := []string{"collection", "shape"}
	for name := range leafTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseType converts a type string to a Type.
// Supports the leaf types, "shape", "collection" and "[T]" for any T.
func ParseType(typeStr string) (Type, error) {
	typeStr = strings.TrimSpace(typeStr)

	// Handle collection types: [input], [[radio]], etc.
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elem, err := ParseType(typeStr[1 : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		if c, ok := elem.(*CollectionType); ok && c.Elem == nil {
			return nil, fmt.Errorf("collection cannot be used as an element type, nest brackets instead")
		}
		return &CollectionType{Elem: elem}, nil
	}

	switch typeStr {
	case "":
		return nil, fmt.Errorf("type is required")
	case "shape":
		return &ShapeType{}, nil
	case "collection":
		return &CollectionType{}, nil
	}
	if t, ok := leafTypes[typeStr]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unsupported type: %s", typeStr)
}
