package domain

// ChangeHandler receives the raw input reported by a control.
type ChangeHandler func(raw any)

// Props is the binding a control needs to render and report changes for a field.
type Props struct {
	Name     string
	Value    any
	Checked  bool
	OnChange ChangeHandler
}

// ToggleState is the stored value of a toggle (checkbox-style) field.
// Value is what gets submitted when the toggle is checked.
type ToggleState struct {
	Checked bool `json:"checked" yaml:"checked" mapstructure:"checked"`
	Value   any  `json:"value" yaml:"value" mapstructure:"value"`
}
