package dsl

import (
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/validators"
)

type kind int

const (
	kindUnset kind = iota
	kindSimple
	kindToggle
	kindRadio
	kindCollection
	kindGroup
	kindNode
)

// FieldBuilder provides a fluent API for configuring one field.
// The last kind set wins.
type FieldBuilder struct {
	key        string
	kind       kind
	validators []validators.Validator
	short      bool
	child      fields.Node
	group      func(*Builder)
	node       fields.Node
	builder    *Builder
}

// Input marks the field as a simple text field.
func (f *FieldBuilder) Input() *FieldBuilder {
	f.kind = kindSimple
	return f
}

// Textarea marks the field as a simple multi-line text field.
func (f *FieldBuilder) Textarea() *FieldBuilder {
	return f.Input()
}

// Select marks the field as a simple choice field.
func (f *FieldBuilder) Select() *FieldBuilder {
	return f.Input()
}

// Checkbox marks the field as a toggle.
func (f *FieldBuilder) Checkbox() *FieldBuilder {
	f.kind = kindToggle
	return f
}

// Radio marks the field as a radio group.
func (f *FieldBuilder) Radio() *FieldBuilder {
	f.kind = kindRadio
	return f
}

// CollectionOf marks the field as a collection repeating child.
func (f *FieldBuilder) CollectionOf(child fields.Node) *FieldBuilder {
	f.kind = kindCollection
	f.child = child
	return f
}

// Group marks the field as a nested shape declared by fn.
func (f *FieldBuilder) Group(fn func(*Builder)) *FieldBuilder {
	f.kind = kindGroup
	f.group = fn
	return f
}

// Node uses an already built field as is.
func (f *FieldBuilder) Node(node fields.Node) *FieldBuilder {
	f.kind = kindNode
	f.node = node
	return f
}

// Validate appends validators to a leaf field.
func (f *FieldBuilder) Validate(vs ...validators.Validator) *FieldBuilder {
	f.validators = append(f.validators, vs...)
	return f
}

// ShortCircuit stops validation at the first validator that records a violation.
func (f *FieldBuilder) ShortCircuit() *FieldBuilder {
	f.short = true
	return f
}

// Key returns the field key.
func (f *FieldBuilder) Key() string {
	return f.key
}

// Build returns the configured field.
// This is primarily used by the Builder, but exposed for advanced usage.
func (f *FieldBuilder) Build() (fields.Node, error) {
	if f.kind >= kindCollection && len(f.validators) > 0 {
		return nil, domain.NewConfigurationError("dsl.Build", "validators only apply to leaf fields")
	}

	vs := f.validators
	if f.short && len(vs) > 1 {
		for _, v := range vs {
			if v == nil {
				return nil, domain.NewConfigurationError("dsl.Build", "all field validators must be functions")
			}
		}
		vs = []validators.Validator{validators.ShortChain(vs...)}
	}

	var (
		node fields.Node
		err  error
	)
	switch f.kind {
	case kindSimple:
		node, err = fields.NewSimple(vs...)
	case kindToggle:
		node, err = fields.NewToggle(vs...)
	case kindRadio:
		node, err = fields.NewRadio(vs...)
	case kindCollection:
		node, err = fields.NewCollection(f.child)
	case kindGroup:
		nested := New()
		if f.group != nil {
			f.group(nested)
		}
		node, err = nested.Build()
	case kindNode:
		if f.node == nil {
			return nil, domain.NewConfigurationError("dsl.Build", "field has no definition")
		}
		return f.node, nil
	default:
		return nil, domain.NewConfigurationError("dsl.Build", "field kind was never set")
	}
	if err != nil {
		return nil, err
	}
	return node, nil
}

// Done returns the shape builder the field belongs to, to keep chaining.
func (f *FieldBuilder) Done() *Builder {
	return f.builder
}
