package formtree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/aretw0/formtree/internal/logging"
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/validators"
	"github.com/google/uuid"
)

// ErrInvalid is returned by Submit when at least one field has violations.
// The violations are available through Errors.
var ErrInvalid = errors.New("form has violations")

type pending struct {
	key    string
	update domain.Update
}

// Form owns the value of a field tree. It is the single writer of that value:
// accessors hand it updates, which are queued and applied by Flush.
//
// A Form is not safe for concurrent use.
type Form struct {
	id        string
	shape     *fields.ShapeNode
	value     map[string]any
	errors    domain.MapViolations
	queue     []pending
	accessors map[string]fields.Accessor

	initial   any
	autoFlush bool
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// New creates a form over shape. The value starts as the normalized initial
// data (see WithInitialData), or as every field's default.
func New(shape *fields.ShapeNode, opts ...Option) (*Form, error) {
	if shape == nil {
		return nil, domain.NewConfigurationError("formtree.New", "a form needs a field shape")
	}

	f := &Form{shape: shape}
	for _, opt := range opts {
		opt(f)
	}

	if f.id == "" {
		f.id = uuid.NewString()
	}
	if f.logger == nil {
		f.logger = logging.NewNop()
	}
	f.logger = f.logger.With("form", f.id)

	if err := f.Load(f.initial); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFromFields creates a form over a record of fields, in lexical key order.
func NewFromFields(fs map[string]fields.Node, opts ...Option) (*Form, error) {
	shape, err := fields.NewShape(fs)
	if err != nil {
		return nil, err
	}
	return New(shape, opts...)
}

// ID returns the form identifier carried by lifecycle events.
func (f *Form) ID() string {
	return f.id
}

// Shape returns the current field definition.
func (f *Form) Shape() *fields.ShapeNode {
	return f.shape
}

// Load replaces the value with raw, normalized through every field.
// Falsy field values are treated as absent. Queued updates are discarded.
func (f *Form) Load(raw any) error {
	value, err := f.normalize(raw)
	if err != nil {
		return err
	}
	f.value = value
	f.queue = nil
	f.logger.Debug("form loaded", "fields", len(value))
	return nil
}

func (f *Form) normalize(raw any) (map[string]any, error) {
	in := map[string]any{}
	switch rec := raw.(type) {
	case nil:
	case map[string]any:
		for k, v := range rec {
			if domain.Truthy(v) {
				in[k] = v
			}
		}
	default:
		return nil, &domain.TypeError{Op: "formtree.Load", Expected: "map[string]any", Value: raw}
	}

	out, err := f.shape.FilterInput(in)
	if err != nil {
		return nil, fmt.Errorf("normalize form data: %w", err)
	}
	return out.(map[string]any), nil
}

// Value returns a shallow copy of the current value.
func (f *Form) Value() map[string]any {
	return maps.Clone(f.value)
}

// Field returns the accessor of the top-level field name. Accessors are
// cached until SetFields replaces the definition.
func (f *Form) Field(name string) (fields.Accessor, error) {
	if acc, ok := f.accessors[name]; ok {
		return acc, nil
	}
	node, ok := f.shape.Field(name)
	if !ok {
		return nil, domain.NewConfigurationError("formtree.Field", "field %q is not declared", name)
	}

	acc := node.Accessors(name, func(u domain.Update) {
		f.enqueue(name, u)
	}, func() any {
		return f.value[name]
	})

	if f.accessors == nil {
		f.accessors = make(map[string]fields.Accessor)
	}
	f.accessors[name] = acc
	return acc, nil
}

// MustField is Field for names known to be declared.
func (f *Form) MustField(name string) fields.Accessor {
	acc, err := f.Field(name)
	if err != nil {
		panic(err)
	}
	return acc
}

// Fields returns the accessors of every top-level field.
func (f *Form) Fields() map[string]fields.Accessor {
	out := make(map[string]fields.Accessor, len(f.shape.Keys()))
	for _, key := range f.shape.Keys() {
		out[key] = f.MustField(key)
	}
	return out
}

func (f *Form) enqueue(key string, u domain.Update) {
	f.queue = append(f.queue, pending{key: key, update: u})
	if !f.autoFlush {
		return
	}
	if _, err := f.Flush(context.Background()); err != nil {
		f.logger.Error("auto flush failed", "error", err)
	}
}

// Pending returns the number of queued updates.
func (f *Form) Pending() int {
	return len(f.queue)
}

// Flush applies the queued updates in order. Each transform receives the
// result of the previous update to the same field. It returns the top-level
// keys that changed, or nil.
//
// Updates whose field is no longer declared are dropped. A transform that
// finds a value of the wrong shape aborts the flush and leaves the value
// untouched; the queue is discarded either way.
func (f *Form) Flush(ctx context.Context) (diff map[string]any, err error) {
	if len(f.queue) == 0 {
		return nil, nil
	}

	queue := f.queue
	f.queue = nil

	next := maps.Clone(f.value)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		typeErr, ok := r.(*domain.TypeError)
		if !ok {
			panic(r)
		}
		diff, err = nil, fmt.Errorf("flush updates: %w", typeErr)
	}()

	applied := 0
	for _, p := range queue {
		if _, ok := f.shape.Field(p.key); !ok {
			f.logger.Warn("dropping update for undeclared field", "field", p.key)
			continue
		}
		next[p.key] = p.update.Apply(next[p.key])
		applied++
	}

	diff = domain.Diff(f.value, next)
	f.value = next
	f.logger.Debug("updates flushed", "applied", applied, "changed", len(diff))

	if f.hooks.OnUpdate != nil {
		f.hooks.OnUpdate(ctx, &domain.UpdateEvent{
			EventBase: f.event(domain.EventUpdate),
			Applied:   applied,
			Changed:   diff,
		})
	}
	return diff, nil
}

// Errors returns the violations recorded by the last Submit.
func (f *Form) Errors() domain.MapViolations {
	return f.errors
}

// Validate flushes queued updates and validates every top-level field in an
// isolated context. It returns the violations of the failing fields, or an
// empty tree. Validators see the whole form value as context data.
func (f *Form) Validate(ctx context.Context) (domain.MapViolations, error) {
	if _, err := f.Flush(ctx); err != nil {
		return nil, err
	}

	data := f.Value()
	errs := domain.MapViolations{}
	for _, key := range f.shape.Keys() {
		node, _ := f.shape.Field(key)
		vctx := validators.NewContext()
		vctx.Data = data
		if err := node.Validate(f.value[key], vctx); err != nil {
			return nil, fmt.Errorf("validate %q: %w", key, err)
		}

		violations := vctx.Violations()
		if violations != nil {
			errs[key] = violations
		}
		if f.hooks.OnValidate != nil {
			f.hooks.OnValidate(ctx, &domain.ValidateEvent{
				EventBase:  f.event(domain.EventValidate),
				Field:      key,
				Violations: violations,
			})
		}
	}
	return errs, nil
}

// Submit validates the form and returns the output record: every field's
// filtered output, with omitted fields left out. The recorded errors are
// always replaced, so a clean submit clears earlier violations. When any
// field has violations Submit returns ErrInvalid.
func (f *Form) Submit(ctx context.Context) (map[string]any, error) {
	errs, err := f.Validate(ctx)
	if err != nil {
		return nil, err
	}
	f.errors = errs

	accepted := errs.Empty()
	if f.hooks.OnSubmit != nil {
		f.hooks.OnSubmit(ctx, &domain.SubmitEvent{
			EventBase: f.event(domain.EventSubmit),
			Accepted:  accepted,
			Errors:    errs,
		})
	}

	if !accepted {
		f.logger.Debug("submit rejected", "fields", len(errs))
		return nil, ErrInvalid
	}

	out, err := f.shape.FilterOutput(f.value)
	if err != nil {
		return nil, fmt.Errorf("filter output: %w", err)
	}
	f.logger.Debug("submit accepted")
	return out.Value.(map[string]any), nil
}

// SetFields replaces the field definition. Queued updates are flushed
// against the old definition first; the value is then renormalized through
// the new one and cached accessors are dropped.
func (f *Form) SetFields(ctx context.Context, shape *fields.ShapeNode) error {
	if shape == nil {
		return domain.NewConfigurationError("formtree.SetFields", "a form needs a field shape")
	}
	if shape == f.shape {
		return nil
	}
	if _, err := f.Flush(ctx); err != nil {
		return err
	}

	old := f.shape
	f.shape = shape
	value, err := f.normalize(f.value)
	if err != nil {
		f.shape = old
		return err
	}

	f.value = value
	f.accessors = nil
	f.logger.Debug("fields replaced", "fields", len(shape.Keys()))
	return nil
}

func (f *Form) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		FormID:    f.id,
	}
}
