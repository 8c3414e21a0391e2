package fields

import (
	"fmt"
	"maps"
	"sort"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/validators"
)

// Named pairs a key with its field, for shapes whose key order matters.
type Named struct {
	Key  string
	Node Node
}

// ShapeNode is a fixed record of named child fields. Its value is a
// map[string]any holding every declared key.
type ShapeNode struct {
	keys   []string
	fields map[string]Node
}

// NewShape creates a shape from a record of fields; keys are kept in lexical
// order. A nil record or nil child is a *domain.ConfigurationError.
func NewShape(fields map[string]Node) (*ShapeNode, error) {
	if fields == nil {
		return nil, domain.NewConfigurationError("fields.NewShape", "fields must be a record of fields")
	}
	named := make([]Named, 0, len(fields))
	for key, node := range fields {
		named = append(named, Named{Key: key, Node: node})
	}
	sort.Slice(named, func(i, j int) bool { return named[i].Key < named[j].Key })
	return NewOrderedShape(named...)
}

// NewOrderedShape creates a shape whose keys keep the given order.
// Empty, duplicate keys and nil children are *domain.ConfigurationError.
func NewOrderedShape(fields ...Named) (*ShapeNode, error) {
	n := &ShapeNode{
		keys:   make([]string, 0, len(fields)),
		fields: make(map[string]Node, len(fields)),
	}
	for _, f := range fields {
		switch {
		case f.Key == "":
			return nil, domain.NewConfigurationError("fields.NewShape", "field keys must not be empty")
		case f.Node == nil:
			return nil, domain.NewConfigurationError("fields.NewShape", "field %q has no definition", f.Key)
		}
		if _, dup := n.fields[f.Key]; dup {
			return nil, domain.NewConfigurationError("fields.NewShape", "field %q is declared twice", f.Key)
		}
		n.keys = append(n.keys, f.Key)
		n.fields[f.Key] = f.Node
	}
	return n, nil
}

// Shape creates a shape and panics on a bad definition.
func Shape(fields map[string]Node) *ShapeNode {
	return must(NewShape(fields))
}

// Keys returns the declared keys in order.
func (n *ShapeNode) Keys() []string {
	return append([]string(nil), n.keys...)
}

// Field returns the child declared under key.
func (n *ShapeNode) Field(key string) (Node, bool) {
	f, ok := n.fields[key]
	return f, ok
}

// FilterInput normalizes every declared key through its field. Absent input
// yields every default; undeclared input keys are dropped; input that is not
// a record is a *domain.TypeError.
func (n *ShapeNode) FilterInput(raw any) (any, error) {
	in := map[string]any{}
	if raw != nil {
		rec, ok := asRecord(raw)
		if !ok {
			return nil, &domain.TypeError{Op: "fields.Shape.FilterInput", Expected: "record", Value: raw}
		}
		in = rec
	}

	out := make(map[string]any, len(n.keys))
	for _, key := range n.keys {
		v, err := n.fields[key].FilterInput(in[key])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}

// FilterOutput filters every declared key through its field. Keys whose
// field omits its output are left out of the submitted record.
func (n *ShapeNode) FilterOutput(value any) (domain.Output, error) {
	rec, ok := asRecord(value)
	if !ok {
		return domain.Output{}, &domain.TypeError{Op: "fields.Shape.FilterOutput", Expected: "record", Value: value}
	}

	out := make(map[string]any, len(n.keys))
	for _, key := range n.keys {
		o, err := n.fields[key].FilterOutput(rec[key])
		if err != nil {
			return domain.Output{}, fmt.Errorf("field %q: %w", key, err)
		}
		if o.Present {
			out[key] = o.Value
		}
	}
	return domain.Present(out), nil
}

// Validate validates every declared key in an isolated context and nests a
// domain.MapViolations holding only the keys with violations.
func (n *ShapeNode) Validate(value any, ctx *validators.Context) error {
	rec, ok := asRecord(value)
	if !ok {
		return &domain.TypeError{Op: "fields.Shape.Validate", Expected: "record", Value: value}
	}

	tree := domain.MapViolations{}
	for _, key := range n.keys {
		sub := validators.NewContext()
		sub.Data = ctx.Data
		if err := n.fields[key].Validate(rec[key], sub); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if sub.HasViolations() {
			tree[key] = sub.Violations()
		}
	}

	ctx.Nest(tree)
	return nil
}

// Accessors returns a *ShapeAccessor for the path called name.
func (n *ShapeNode) Accessors(name string, update domain.UpdateFunc, get domain.Getter) Accessor {
	return &ShapeAccessor{
		node:   n,
		name:   name,
		update: update,
		get:    get,
		cache:  make(map[string]Accessor),
	}
}

// ShapeAccessor navigates a shape value by key.
// Per-key accessors are built on first use and cached for the lifetime of the
// ShapeAccessor.
type ShapeAccessor struct {
	node   *ShapeNode
	name   string
	update domain.UpdateFunc
	get    domain.Getter
	cache  map[string]Accessor
}

func (a *ShapeAccessor) Name() string { return a.name }

// Keys returns the declared keys of the underlying shape, in order.
func (a *ShapeAccessor) Keys() []string { return a.node.Keys() }

// MethodsFor returns the cached accessor of key. An undeclared key is a
// *domain.ConfigurationError.
func (a *ShapeAccessor) MethodsFor(key string) (Accessor, error) {
	if acc, ok := a.cache[key]; ok {
		return acc, nil
	}
	field, ok := a.node.fields[key]
	if !ok {
		return nil, domain.NewConfigurationError("fields.Shape.MethodsFor", "field %q must exist in the underlying field shape", key)
	}

	acc := field.Accessors(domain.ChildName(a.name, key), func(u domain.Update) {
		a.update(domain.Transform(func(current any) any {
			rec := currentRecord("fields.Shape.Update", current)
			out := maps.Clone(rec)
			if out == nil {
				out = make(map[string]any)
			}
			out[key] = u.Apply(rec[key])
			return out
		}))
	}, func() any {
		rec, _ := asRecord(a.get())
		return rec[key]
	})

	a.cache[key] = acc
	return acc, nil
}

// Props proxies to the Props of the key given as first argument; the
// remaining arguments are passed through.
func (a *ShapeAccessor) Props(args ...any) (domain.Props, error) {
	if len(args) == 0 {
		return domain.Props{}, domain.NewConfigurationError("fields.Shape.Props", "a field key is required")
	}
	key, ok := args[0].(string)
	if !ok {
		return domain.Props{}, domain.NewConfigurationError("fields.Shape.Props", "field key must be a string, got %T", args[0])
	}
	acc, err := a.MethodsFor(key)
	if err != nil {
		return domain.Props{}, err
	}
	return acc.Props(args[1:]...)
}
