package fields

import (
	"fmt"
	"slices"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/validators"
)

// CollectionNode is an ordered, variable-length repetition of one child field.
// Its value is a []any.
type CollectionNode struct {
	child Node
}

// NewCollection creates a collection of child. A nil child is a *domain.ConfigurationError.
func NewCollection(child Node) (*CollectionNode, error) {
	if child == nil {
		return nil, domain.NewConfigurationError("fields.NewCollection", "a collection needs a child field")
	}
	return &CollectionNode{child: child}, nil
}

// Collection creates a collection of child and panics on a bad definition.
func Collection(child Node) *CollectionNode {
	return must(NewCollection(child))
}

// Child returns the repeated field.
func (n *CollectionNode) Child() Node {
	return n.child
}

// FilterInput normalizes every element through the child. Absent input is an
// empty sequence; input that is not a sequence is a *domain.TypeError.
func (n *CollectionNode) FilterInput(raw any) (any, error) {
	if raw == nil {
		return []any{}, nil
	}
	list, ok := asList(raw)
	if !ok {
		return nil, &domain.TypeError{Op: "fields.Collection.FilterInput", Expected: "sequence", Value: raw}
	}
	out := make([]any, len(list))
	for i, elem := range list {
		v, err := n.child.FilterInput(elem)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// FilterOutput filters every element through the child. The sequence keeps
// its length: an element the child omits is submitted as nil.
func (n *CollectionNode) FilterOutput(value any) (domain.Output, error) {
	list, ok := asList(value)
	if !ok {
		return domain.Output{}, &domain.TypeError{Op: "fields.Collection.FilterOutput", Expected: "sequence", Value: value}
	}
	out := make([]any, len(list))
	for i, elem := range list {
		o, err := n.child.FilterOutput(elem)
		if err != nil {
			return domain.Output{}, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = o.OrNil()
	}
	return domain.Present(out), nil
}

// Validate validates every element in an isolated context and nests a
// domain.ListViolations as long as the value, nil where an element is clean.
func (n *CollectionNode) Validate(value any, ctx *validators.Context) error {
	list, ok := asList(value)
	if !ok {
		return &domain.TypeError{Op: "fields.Collection.Validate", Expected: "sequence", Value: value}
	}

	tree := make(domain.ListViolations, len(list))
	for i, elem := range list {
		sub := validators.NewContext()
		sub.Data = ctx.Data
		if err := n.child.Validate(elem, sub); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
		if sub.HasViolations() {
			tree[i] = sub.Violations()
		}
	}

	ctx.Nest(tree)
	return nil
}

// Accessors returns a *CollectionAccessor for the path called name.
func (n *CollectionNode) Accessors(name string, update domain.UpdateFunc, get domain.Getter) Accessor {
	return &CollectionAccessor{
		node:   n,
		name:   name,
		update: update,
		get:    get,
		cache:  make(map[int]Accessor),
	}
}

// CollectionAccessor navigates and mutates a collection value.
// Per-index accessors are built on first use and cached for the lifetime of
// the CollectionAccessor.
//
// Element methods are reached with the element index as first argument:
// Props(i, ...) for any element, MethodsFor(i, key) for shape elements and
// CollectionAt(i) for nested collections. Index(i) returns the element
// accessor itself.
type CollectionAccessor struct {
	node   *CollectionNode
	name   string
	update domain.UpdateFunc
	get    domain.Getter
	cache  map[int]Accessor
}

func (a *CollectionAccessor) Name() string { return a.name }

// Length returns the current number of elements.
func (a *CollectionAccessor) Length() int {
	list, _ := asList(a.get())
	return len(list)
}

// Add inserts a freshly normalized element at index, or at the end when no
// index is given. Indices past the end append.
func (a *CollectionAccessor) Add(index ...int) {
	a.update(domain.Transform(func(current any) any {
		list := currentList("fields.Collection.Add", current)
		where := len(list)
		if len(index) > 0 && index[0] >= 0 && index[0] < where {
			where = index[0]
		}
		elem, err := a.node.child.FilterInput(nil)
		if err != nil {
			panic(err)
		}
		return slices.Insert(slices.Clone(list), where, elem)
	}))
}

// Remove deletes the element at index. Out of range indices leave the value unchanged.
func (a *CollectionAccessor) Remove(index int) {
	a.update(domain.Transform(func(current any) any {
		list := currentList("fields.Collection.Remove", current)
		out := slices.Clone(list)
		if index < 0 || index >= len(list) {
			return out
		}
		return slices.Delete(out, index, index+1)
	}))
}

// Map calls fn with the accessor of every current element and returns the
// results. It never mutates the value and may be called any number of times.
func (a *CollectionAccessor) Map(fn func(child Accessor, index int) any) []any {
	n := a.Length()
	out := make([]any, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a.Index(i), i)
	}
	return out
}

// Index returns the cached accessor of the element at i.
// An element update applied after the sequence shrank below i is dropped,
// so a stale handler never resurrects a removed element.
func (a *CollectionAccessor) Index(i int) Accessor {
	if acc, ok := a.cache[i]; ok {
		return acc
	}

	acc := a.node.child.Accessors(domain.ChildName(a.name, i), func(u domain.Update) {
		a.update(domain.Transform(func(current any) any {
			list := currentList("fields.Collection.Update", current)
			out := slices.Clone(list)
			if i < len(out) {
				out[i] = u.Apply(list[i])
			}
			return out
		}))
	}, func() any {
		list, _ := asList(a.get())
		if i < 0 || i >= len(list) {
			return nil
		}
		return list[i]
	})

	a.cache[i] = acc
	return acc
}

// Props proxies to the Props of the element at the index given as first
// argument; the remaining arguments are passed through.
func (a *CollectionAccessor) Props(args ...any) (domain.Props, error) {
	if len(args) == 0 {
		return domain.Props{}, domain.NewConfigurationError("fields.Collection.Props", "an element index is required")
	}
	i, ok := args[0].(int)
	if !ok {
		return domain.Props{}, domain.NewConfigurationError("fields.Collection.Props", "element index must be an int, got %T", args[0])
	}
	return a.Index(i).Props(args[1:]...)
}

// MethodsFor proxies to the MethodsFor of the shape element at i.
func (a *CollectionAccessor) MethodsFor(i int, key string) (Accessor, error) {
	shape, ok := a.Index(i).(*ShapeAccessor)
	if !ok {
		return nil, domain.NewConfigurationError("fields.Collection.MethodsFor", "element %s is not a shape", domain.ChildName(a.name, i))
	}
	return shape.MethodsFor(key)
}

// CollectionAt returns the accessor of the nested collection element at i,
// for its Add, Remove, Length and Map methods.
func (a *CollectionAccessor) CollectionAt(i int) (*CollectionAccessor, error) {
	col, ok := a.Index(i).(*CollectionAccessor)
	if !ok {
		return nil, domain.NewConfigurationError("fields.Collection.CollectionAt", "element %s is not a collection", domain.ChildName(a.name, i))
	}
	return col, nil
}
