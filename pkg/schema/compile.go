package schema

import (
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/registry"
	"github.com/aretw0/formtree/pkg/validators"
)

// Compile builds the field tree of the definition, resolving validators
// through reg (registry.Default() when nil). Every problem is reported: the
// error is an *AggregateError of *ValidationError.
func (d *Definition) Compile(reg *registry.Registry) (*fields.ShapeNode, error) {
	if reg == nil {
		reg = registry.Default()
	}
	c := &compiler{reg: reg}

	if len(d.Fields) == 0 {
		c.fail("", "definition declares no fields", nil)
		return nil, c.err()
	}

	shape := c.shape("", d.Fields)
	if err := c.err(); err != nil {
		return nil, err
	}
	return shape, nil
}

type compiler struct {
	collector
	reg *registry.Registry
}

func (c *compiler) shape(path string, fs Fields) *fields.ShapeNode {
	named := make([]fields.Named, 0, len(fs))
	for _, f := range fs {
		if f.Key == "" {
			c.fail(path, "field keys must not be empty", nil)
			continue
		}
		if node := c.field(domain.ChildName(path, f.Key), f.Def); node != nil {
			named = append(named, fields.Named{Key: f.Key, Node: node})
		}
	}

	shape, err := fields.NewOrderedShape(named...)
	if err != nil {
		c.fail(path, err.Error(), nil)
		return nil
	}
	return shape
}

func (c *compiler) field(path string, def FieldDef) fields.Node {
	typ, err := ParseType(def.Type)
	if err != nil {
		c.fail(path, err.Error(), def.Type)
		return nil
	}
	return c.build(path, typ, def)
}

func (c *compiler) build(path string, typ Type, def FieldDef) fields.Node {
	switch t := typ.(type) {
	case *LeafType:
		if len(def.Fields) > 0 || def.Of != nil {
			c.fail(path, "only shapes declare fields and only collections declare of", nil)
		}
		vs := c.validators(path, def)
		node, err := t.New(vs...)
		if err != nil {
			c.fail(path, err.Error(), nil)
			return nil
		}
		return node

	case *ShapeType:
		if len(def.Validators) > 0 {
			c.fail(path, "validators belong to the fields of a shape", nil)
		}
		if len(def.Fields) == 0 {
			c.fail(path, "shape declares no fields", nil)
			return nil
		}
		if shape := c.shape(path, def.Fields); shape != nil {
			return shape
		}
		return nil

	case *CollectionType:
		var child fields.Node
		if t.Elem == nil {
			if def.Of == nil {
				c.fail(path, "collection needs an element entry under of", nil)
				return nil
			}
			if len(def.Validators) > 0 {
				c.fail(path, "validators of a collection belong to its of entry", nil)
			}
			child = c.field(path+"[]", *def.Of)
		} else {
			child = c.build(path+"[]", t.Elem, def)
		}
		if child == nil {
			return nil
		}
		node, err := fields.NewCollection(child)
		if err != nil {
			c.fail(path, err.Error(), nil)
			return nil
		}
		return node
	}

	c.fail(path, "unsupported type", typ.Name())
	return nil
}

func (c *compiler) validators(path string, def FieldDef) []validators.Validator {
	vs := make([]validators.Validator, 0, len(def.Validators))
	for _, vd := range def.Validators {
		v, err := c.reg.Build(vd.Name, vd.Args)
		if err != nil {
			c.fail(path, err.Error(), nil)
			continue
		}
		vs = append(vs, v)
	}
	if def.ShortCircuit && len(vs) > 1 {
		return []validators.Validator{validators.ShortChain(vs...)}
	}
	return vs
}
