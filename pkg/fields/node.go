package fields

import (
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/validators"
)

// Node describes one field or subtree of a form.
type Node interface {
	// FilterInput normalizes raw inbound data. Absent data yields the field's default.
	FilterInput(raw any) (any, error)
	// FilterOutput returns the value to submit, or an omitted output.
	FilterOutput(value any) (domain.Output, error)
	// Validate records violations for value on ctx. It never mutates value.
	Validate(value any, ctx *validators.Context) error
	// Accessors binds the node to the path called name.
	Accessors(name string, update domain.UpdateFunc, get domain.Getter) Accessor
}

// Accessor is the per-path object controls bind to.
type Accessor interface {
	Name() string
	// Props returns the binding for a control. Leaf fields take an optional
	// option value; composites take the child index or key first.
	Props(args ...any) (domain.Props, error)
}

// must panics with err when it is not nil. Field constructors run at form
// definition time, where a bad definition is a programming error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// leaf holds the state shared by all leaf variants: the validator list.
type leaf struct {
	validators []validators.Validator
}

func newLeaf(op string, vs []validators.Validator) (leaf, error) {
	for i, v := range vs {
		if v == nil {
			return leaf{}, domain.NewConfigurationError(op, "all field validators must be functions (validator %d is nil)", i)
		}
	}
	return leaf{validators: append([]validators.Validator(nil), vs...)}, nil
}

func (l leaf) run(value any, ctx *validators.Context) {
	for _, v := range l.validators {
		v(value, ctx)
	}
}

// leafAccessor is the accessor of every leaf variant.
type leafAccessor struct {
	name  string
	props func(args []any) (domain.Props, error)
}

func (a *leafAccessor) Name() string { return a.name }

func (a *leafAccessor) Props(args ...any) (domain.Props, error) {
	return a.props(args)
}
