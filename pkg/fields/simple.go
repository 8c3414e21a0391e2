package fields

import (
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/validators"
)

// SimpleNode is a field bound through a value and a change handler: text
// inputs, textareas and selects.
type SimpleNode struct {
	leaf
}

// NewSimple creates a simple field. A nil validator is a *domain.ConfigurationError.
func NewSimple(vs ...validators.Validator) (*SimpleNode, error) {
	l, err := newLeaf("fields.NewSimple", vs)
	if err != nil {
		return nil, err
	}
	return &SimpleNode{leaf: l}, nil
}

// Input creates a simple field and panics on a bad definition.
func Input(vs ...validators.Validator) *SimpleNode {
	return must(NewSimple(vs...))
}

// Textarea is Input under the name of its usual control.
func Textarea(vs ...validators.Validator) *SimpleNode {
	return Input(vs...)
}

// Select is Input under the name of its usual control.
func Select(vs ...validators.Validator) *SimpleNode {
	return Input(vs...)
}

// FilterInput maps falsy input to the empty string and keeps everything else.
func (n *SimpleNode) FilterInput(raw any) (any, error) {
	return scalarInput(raw), nil
}

func (n *SimpleNode) FilterOutput(value any) (domain.Output, error) {
	return domain.Present(value), nil
}

func (n *SimpleNode) Validate(value any, ctx *validators.Context) error {
	n.run(value, ctx)
	return nil
}

// Accessors returns an accessor whose change handler replaces the value with
// the raw input.
func (n *SimpleNode) Accessors(name string, update domain.UpdateFunc, get domain.Getter) Accessor {
	return &leafAccessor{
		name: name,
		props: func([]any) (domain.Props, error) {
			return domain.Props{
				Name:     name,
				Value:    get(),
				OnChange: replaceHandler(update),
			}, nil
		},
	}
}

func scalarInput(raw any) any {
	if !domain.Truthy(raw) {
		return ""
	}
	return raw
}

func replaceHandler(update domain.UpdateFunc) domain.ChangeHandler {
	return func(raw any) {
		update(domain.Replace(raw))
	}
}
