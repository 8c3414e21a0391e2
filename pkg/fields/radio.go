package fields

import (
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/validators"
)

// RadioNode is a field rendered as a group of options sharing one value.
type RadioNode struct {
	leaf
}

// NewRadio creates a radio field. A nil validator is a *domain.ConfigurationError.
func NewRadio(vs ...validators.Validator) (*RadioNode, error) {
	l, err := newLeaf("fields.NewRadio", vs)
	if err != nil {
		return nil, err
	}
	return &RadioNode{leaf: l}, nil
}

// Radio creates a radio field and panics on a bad definition.
func Radio(vs ...validators.Validator) *RadioNode {
	return must(NewRadio(vs...))
}

func (n *RadioNode) FilterInput(raw any) (any, error) {
	return scalarInput(raw), nil
}

func (n *RadioNode) FilterOutput(value any) (domain.Output, error) {
	return domain.Present(value), nil
}

func (n *RadioNode) Validate(value any, ctx *validators.Context) error {
	n.run(value, ctx)
	return nil
}

// Accessors returns an accessor whose Props requires the option value the
// control stands for; Checked reports whether it is the stored value.
func (n *RadioNode) Accessors(name string, update domain.UpdateFunc, get domain.Getter) Accessor {
	return &leafAccessor{
		name: name,
		props: func(args []any) (domain.Props, error) {
			if len(args) == 0 || args[0] == nil {
				return domain.Props{}, domain.NewConfigurationError("fields.Radio.Props", "you must supply a field value to radio field props")
			}
			option := args[0]
			return domain.Props{
				Name:     name,
				Value:    option,
				Checked:  validators.SameValue(get(), option),
				OnChange: replaceHandler(update),
			}, nil
		},
	}
}
