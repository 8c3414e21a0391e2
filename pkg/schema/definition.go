package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is a declarative form document.
type Definition struct {
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`
	Fields Fields `yaml:"fields" json:"fields"`
}

// FieldDef is the entry of one field. In documents an entry may also be
// written as its bare type string.
type FieldDef struct {
	Type string `yaml:"type" json:"type"`
	// ShortCircuit stops at the first validator that records a violation.
	ShortCircuit bool           `yaml:"short_circuit,omitempty" json:"short_circuit,omitempty"`
	Validators   []ValidatorDef `yaml:"validators,omitempty" json:"validators,omitempty"`
	Fields       Fields         `yaml:"fields,omitempty" json:"fields,omitempty"`
	Of           *FieldDef      `yaml:"of,omitempty" json:"of,omitempty"`
}

// ValidatorDef names a registered validator and its arguments. In documents
// it may also be written as the bare name.
type ValidatorDef struct {
	Name string         `yaml:"name" json:"name"`
	Args map[string]any `yaml:"args,omitempty" json:"args,omitempty"`
}

// Field is one keyed entry of an ordered field list.
type Field struct {
	Key string
	Def FieldDef
}

// Fields is an ordered list of field entries, decoded from a mapping.
type Fields []Field

// Lookup returns the entry declared under key.
func (fs Fields) Lookup(key string) (FieldDef, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Def, true
		}
	}
	return FieldDef{}, false
}

func (fs *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fields must be a mapping", node.Line)
	}

	out := make(Fields, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var def FieldDef
		if err := node.Content[i+1].Decode(&def); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		out = append(out, Field{Key: key, Def: def})
	}
	*fs = out
	return nil
}

func (fs *Fields) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*fs = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("fields must be an object")
	}

	var out Fields
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var def FieldDef
		if err := dec.Decode(&def); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		out = append(out, Field{Key: key, Def: def})
	}
	*fs = out
	return nil
}

type plainFieldDef FieldDef

func (d *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*d = FieldDef{Type: node.Value}
		return nil
	}
	return node.Decode((*plainFieldDef)(d))
}

func (d *FieldDef) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err == nil {
		*d = FieldDef{Type: typ}
		return nil
	}
	return json.Unmarshal(data, (*plainFieldDef)(d))
}

type plainValidatorDef ValidatorDef

func (v *ValidatorDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*v = ValidatorDef{Name: node.Value}
		return nil
	}
	return node.Decode((*plainValidatorDef)(v))
}

func (v *ValidatorDef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*v = ValidatorDef{Name: name}
		return nil
	}
	return json.Unmarshal(data, (*plainValidatorDef)(v))
}
