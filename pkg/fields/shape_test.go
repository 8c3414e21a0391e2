package fields_test

import (
	"errors"
	"testing"

	"github.com/aretw0/formtree/internal/testutils"
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shapeValues = map[string]any{
	"test":  "testing 123",
	"other": "test",
}

func newTrackedShape() (*testutils.TrackingNode, *fields.ShapeNode) {
	tf := testutils.NewTrackingNode(validators.Required())
	return tf, fields.Shape(map[string]fields.Node{
		"test":  tf,
		"other": fields.Input(),
	})
}

func TestNewShape_Configuration(t *testing.T) {
	_, err := fields.NewShape(nil)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))

	_, err = fields.NewShape(map[string]fields.Node{"a": nil})
	assert.True(t, errors.Is(err, domain.ErrConfiguration))

	_, err = fields.NewOrderedShape(
		fields.Named{Key: "a", Node: fields.Input()},
		fields.Named{Key: "a", Node: fields.Input()},
	)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))

	assert.Panics(t, func() { fields.Shape(nil) })
}

func TestShape_Keys(t *testing.T) {
	_, shape := newTrackedShape()
	assert.Equal(t, []string{"other", "test"}, shape.Keys())

	ordered, err := fields.NewOrderedShape(
		fields.Named{Key: "z", Node: fields.Input()},
		fields.Named{Key: "a", Node: fields.Input()},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, ordered.Keys())

	_, ok := ordered.Field("z")
	assert.True(t, ok)
	_, ok = ordered.Field("missing")
	assert.False(t, ok)
}

func TestShape_FilterInput(t *testing.T) {
	t.Run("applies the child to every declared key", func(t *testing.T) {
		tf, shape := newTrackedShape()
		got, err := shape.FilterInput(shapeValues)
		require.NoError(t, err)

		assert.Equal(t, []any{"testing 123"}, tf.FilterInputCalls)
		assert.Equal(t, shapeValues, got)
	})

	t.Run("absent input fills every key", func(t *testing.T) {
		_, shape := newTrackedShape()
		got, err := shape.FilterInput(nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"test": "", "other": ""}, got)
	})

	t.Run("undeclared keys are dropped", func(t *testing.T) {
		_, shape := newTrackedShape()
		got, err := shape.FilterInput(map[string]string{"test": "x", "extra": "y"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"test": "x", "other": ""}, got)
	})

	t.Run("non records are type errors", func(t *testing.T) {
		_, shape := newTrackedShape()
		_, err := shape.FilterInput([]any{"a"})
		assert.True(t, errors.Is(err, domain.ErrType))
	})
}

func TestShape_FilterOutput(t *testing.T) {
	tf, shape := newTrackedShape()
	out, err := shape.FilterOutput(shapeValues)
	require.NoError(t, err)

	assert.Equal(t, []any{"testing 123"}, tf.FilterOutputCalls)
	assert.Equal(t, domain.Present(shapeValues), out)
}

func TestShape_FilterOutputDropsOmittedKeys(t *testing.T) {
	shape := fields.Shape(map[string]fields.Node{
		"name":  fields.Input(),
		"terms": fields.Checkbox(),
	})
	value, err := shape.FilterInput(map[string]any{"name": "x"})
	require.NoError(t, err)

	out, err := shape.FilterOutput(value)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "x"}, out.Value)
}

func TestShape_Validate(t *testing.T) {
	t.Run("violations for failing keys", func(t *testing.T) {
		shape := fields.Shape(map[string]fields.Node{
			"req": fields.Input(validators.Required("broken")),
		})
		ctx := validators.NewContext()

		require.NoError(t, shape.Validate(map[string]any{"req": ""}, ctx))

		assert.True(t, ctx.HasViolations())
		assert.Equal(t, domain.MapViolations{"req": domain.Messages{"broken"}}, ctx.Violations())
	})

	t.Run("no violations and no key when clean", func(t *testing.T) {
		shape := fields.Shape(map[string]fields.Node{
			"req": fields.Input(validators.Required("broken")),
		})
		ctx := validators.NewContext()

		require.NoError(t, shape.Validate(map[string]any{"req": "ok"}, ctx))

		assert.False(t, ctx.HasViolations())
		assert.Nil(t, ctx.Violations())
	})

	t.Run("only failing keys are reported", func(t *testing.T) {
		_, shape := newTrackedShape()
		ctx := validators.NewContext()

		require.NoError(t, shape.Validate(map[string]any{"test": ""}, ctx))

		tree := ctx.Violations().(domain.MapViolations)
		assert.Len(t, tree, 1)
		assert.Len(t, tree["test"], 1)
		_, ok := tree["other"]
		assert.False(t, ok)
	})

	t.Run("child contexts are isolated but share data", func(t *testing.T) {
		var seen any
		shape := fields.Shape(map[string]fields.Node{
			"a": fields.Input(func(_ any, ctx *validators.Context) { seen = ctx.Data }),
		})
		ctx := validators.NewContext()
		ctx.Data = "payload"

		require.NoError(t, shape.Validate(map[string]any{"a": "x"}, ctx))
		assert.Equal(t, "payload", seen)
	})
}

func buildShapeAccessor(shape *fields.ShapeNode) (*fields.ShapeAccessor, *testutils.UpdateRecorder) {
	rec := &testutils.UpdateRecorder{}
	acc := shape.Accessors("testField", rec.Func(), testutils.Static(shapeValues))
	return acc.(*fields.ShapeAccessor), rec
}

func TestShapeAccessor_Props(t *testing.T) {
	tf, shape := newTrackedShape()
	acc, _ := buildShapeAccessor(shape)

	props, err := acc.Props("test")
	require.NoError(t, err)

	assert.Len(t, tf.AccessorCalls, 1)
	assert.Equal(t, "testField[test]", props.Name)
	assert.Equal(t, "testing 123", props.Value)
	assert.NotNil(t, props.OnChange)
}

func TestShapeAccessor_ChangeHandlerUpdatesOnlyItsKey(t *testing.T) {
	_, shape := newTrackedShape()
	acc, rec := buildShapeAccessor(shape)

	props, err := acc.Props("test")
	require.NoError(t, err)
	props.OnChange("changed")

	assert.Equal(t, map[string]any{"test": "changed", "other": "test"}, rec.ApplyLast(t, shapeValues))
	assert.Equal(t, "testing 123", shapeValues["test"], "the current value is never mutated")
}

func TestShapeAccessor_UndeclaredKey(t *testing.T) {
	_, shape := newTrackedShape()
	acc, _ := buildShapeAccessor(shape)

	_, err := acc.MethodsFor("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))

	_, err = acc.Props("missing")
	assert.True(t, errors.Is(err, domain.ErrConfiguration))

	_, err = acc.Props(3)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestShapeAccessor_MethodsForIsCached(t *testing.T) {
	tf, shape := newTrackedShape()
	acc, _ := buildShapeAccessor(shape)

	first, err := acc.MethodsFor("test")
	require.NoError(t, err)
	second, err := acc.MethodsFor("test")
	require.NoError(t, err)
	_, err = acc.Props("test")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, tf.AccessorCalls, 1)
}

func TestShapeAccessor_NestedCollection(t *testing.T) {
	shape := fields.Shape(map[string]fields.Node{
		"tags": fields.Collection(fields.Input()),
	})
	var queue []domain.Update
	current := map[string]any{"tags": []any{"a"}}
	acc := shape.Accessors("form", func(u domain.Update) { queue = append(queue, u) }, func() any { return current }).(*fields.ShapeAccessor)

	tags, err := acc.MethodsFor("tags")
	require.NoError(t, err)
	tags.(*fields.CollectionAccessor).Add()

	props, err := acc.Props("tags", 0)
	require.NoError(t, err)
	assert.Equal(t, "form[tags][0]", props.Name)
	props.OnChange("b")

	var value any = current
	for _, u := range queue {
		value = u.Apply(value)
	}
	assert.Equal(t, map[string]any{"tags": []any{"b", ""}}, value)
}
