package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/validators"
)

// Builder manages the construction of a shape.
type Builder struct {
	keys   []string
	fields map[string]*FieldBuilder
}

// New creates a new shape builder.
func New() *Builder {
	return &Builder{
		fields: make(map[string]*FieldBuilder),
	}
}

// Add starts a new field in the shape.
// If the field already exists, it returns the existing builder.
func (b *Builder) Add(key string) *FieldBuilder {
	if fb, ok := b.fields[key]; ok {
		return fb
	}
	fb := &FieldBuilder{key: key, builder: b}
	b.keys = append(b.keys, key)
	b.fields[key] = fb
	return fb
}

// Input adds a simple text field.
func (b *Builder) Input(key string, vs ...validators.Validator) *Builder {
	b.Add(key).Input().Validate(vs...)
	return b
}

// Textarea adds a simple multi-line text field.
func (b *Builder) Textarea(key string, vs ...validators.Validator) *Builder {
	b.Add(key).Textarea().Validate(vs...)
	return b
}

// Select adds a simple choice field.
func (b *Builder) Select(key string, vs ...validators.Validator) *Builder {
	b.Add(key).Select().Validate(vs...)
	return b
}

// Checkbox adds a toggle field.
func (b *Builder) Checkbox(key string, vs ...validators.Validator) *Builder {
	b.Add(key).Checkbox().Validate(vs...)
	return b
}

// Radio adds a radio group field.
func (b *Builder) Radio(key string, vs ...validators.Validator) *Builder {
	b.Add(key).Radio().Validate(vs...)
	return b
}

// Collection adds a collection repeating child.
func (b *Builder) Collection(key string, child fields.Node) *Builder {
	b.Add(key).CollectionOf(child)
	return b
}

// Shape adds an already built field under key, usually a shape.
func (b *Builder) Shape(key string, node fields.Node) *Builder {
	b.Add(key).Node(node)
	return b
}

// Group adds a nested shape declared by fn.
func (b *Builder) Group(key string, fn func(*Builder)) *Builder {
	b.Add(key).Group(fn)
	return b
}

// Build compiles the declared fields into a shape, in declaration order.
// All field errors are reported together.
func (b *Builder) Build() (*fields.ShapeNode, error) {
	named := make([]fields.Named, 0, len(b.keys))
	var errs []error
	for _, key := range b.keys {
		node, err := b.fields[key].Build()
		if err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", key, err))
			continue
		}
		named = append(named, fields.Named{Key: key, Node: node})
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to build shape: %w", errors.Join(errs...))
	}

	shape, err := fields.NewOrderedShape(named...)
	if err != nil {
		return nil, fmt.Errorf("failed to build shape: %w", err)
	}
	return shape, nil
}

// MustBuild is Build for definitions known to be valid; it panics on error.
func (b *Builder) MustBuild() *fields.ShapeNode {
	shape, err := b.Build()
	if err != nil {
		panic(err)
	}
	return shape
}
