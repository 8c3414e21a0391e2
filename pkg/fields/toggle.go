package fields

import (
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/validators"
	"github.com/mitchellh/mapstructure"
)

// DefaultToggleValue is stored when a toggle is given no value of its own,
// so the bound control always reports one.
const DefaultToggleValue = "1"

// ToggleNode is a checkbox-style field. It stores a domain.ToggleState and
// submits its value only while checked.
type ToggleNode struct {
	leaf
}

// NewToggle creates a toggle field. A nil validator is a *domain.ConfigurationError.
func NewToggle(vs ...validators.Validator) (*ToggleNode, error) {
	l, err := newLeaf("fields.NewToggle", vs)
	if err != nil {
		return nil, err
	}
	return &ToggleNode{leaf: l}, nil
}

// Checkbox creates a toggle field and panics on a bad definition.
func Checkbox(vs ...validators.Validator) *ToggleNode {
	return must(NewToggle(vs...))
}

// FilterInput accepts a domain.ToggleState (or a pointer to one), a
// {"checked", "value"} record, or a scalar whose truthiness becomes the
// checked state. The result is always a fresh domain.ToggleState.
func (n *ToggleNode) FilterInput(raw any) (any, error) {
	return toToggle(raw), nil
}

// FilterOutput submits the stored value (or true when it is empty) while the
// toggle is checked, and omits the field otherwise.
func (n *ToggleNode) FilterOutput(value any) (domain.Output, error) {
	state, ok := asToggle(value)
	if !ok {
		return domain.Output{}, &domain.TypeError{Op: "fields.Toggle.FilterOutput", Expected: "toggle state", Value: value}
	}
	if !state.Checked {
		return domain.Omitted(), nil
	}
	if !domain.Truthy(state.Value) {
		return domain.Present(true), nil
	}
	return domain.Present(state.Value), nil
}

// Validate runs the validators against the submitted value rather than the
// stored state; an omitted toggle validates as nil.
func (n *ToggleNode) Validate(value any, ctx *validators.Context) error {
	out, err := n.FilterOutput(value)
	if err != nil {
		return err
	}
	n.run(out.OrNil(), ctx)
	return nil
}

// Accessors returns an accessor whose change handler flips the checked state
// of the value current when the update is applied and records the raw input
// as the new value. Props takes an optional option value that only overrides
// the reported Value.
func (n *ToggleNode) Accessors(name string, update domain.UpdateFunc, get domain.Getter) Accessor {
	onChange := func(raw any) {
		update(domain.Transform(func(current any) any {
			state := toToggle(current)
			return domain.ToggleState{Checked: !state.Checked, Value: raw}
		}))
	}

	return &leafAccessor{
		name: name,
		props: func(args []any) (domain.Props, error) {
			state := toToggle(get())
			value := state.Value
			if len(args) > 0 && args[0] != nil {
				value = args[0]
			}
			return domain.Props{
				Name:     name,
				Value:    value,
				Checked:  state.Checked,
				OnChange: onChange,
			}, nil
		},
	}
}

func toToggle(raw any) domain.ToggleState {
	state, ok := asToggle(raw)
	if !ok {
		state = domain.ToggleState{Checked: domain.Truthy(raw), Value: raw}
	}
	if state.Value == nil {
		state.Value = DefaultToggleValue
	}
	return state
}

// asToggle reads the record forms of a toggle: a ToggleState, or any
// string-keyed record with "checked" and "value" keys. nil reads as unchecked.
func asToggle(raw any) (domain.ToggleState, bool) {
	switch v := raw.(type) {
	case nil:
		return domain.ToggleState{}, true
	case domain.ToggleState:
		return v, true
	case *domain.ToggleState:
		if v == nil {
			return domain.ToggleState{}, true
		}
		return *v, true
	}
	if rec, ok := asRecord(raw); ok {
		return decodeToggle(rec), true
	}
	return domain.ToggleState{}, false
}

// decodeToggle decodes a toggle record. A "checked" entry that does not
// convert to a bool ("on", "yes") falls back to its truthiness.
func decodeToggle(rec map[string]any) domain.ToggleState {
	var state domain.ToggleState
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &state,
		WeaklyTypedInput: true,
	})
	if err == nil {
		err = dec.Decode(rec)
	}
	if err != nil {
		return domain.ToggleState{Checked: domain.Truthy(rec["checked"]), Value: rec["value"]}
	}
	return state
}
