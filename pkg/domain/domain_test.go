package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdate_Apply(t *testing.T) {
	assert.Equal(t, "new", Replace("new").Apply("old"))
	assert.False(t, Replace("new").IsTransform())

	up := Transform(func(old any) any { return old.(string) + "!" })
	assert.True(t, up.IsTransform())
	assert.Equal(t, "old!", up.Apply("old"))
}

func TestUpdate_TransformsCompose(t *testing.T) {
	queue := []Update{
		Transform(func(old any) any { return append(old.([]any), "a") }),
		Transform(func(old any) any { return append(old.([]any), "b") }),
	}

	var value any = []any{}
	for _, u := range queue {
		value = u.Apply(value)
	}

	assert.Equal(t, []any{"a", "b"}, value)
}

func TestOutput(t *testing.T) {
	assert.Equal(t, "x", Present("x").OrNil())
	assert.True(t, Present(nil).Present)
	assert.False(t, Omitted().Present)
	assert.Nil(t, Omitted().OrNil())
}

func TestViolations_Empty(t *testing.T) {
	assert.True(t, Messages(nil).Empty())
	assert.False(t, Messages{"oops"}.Empty())
	assert.True(t, ListViolations{nil, nil}.Empty())
	assert.False(t, ListViolations{nil, Messages{"oops"}}.Empty())
	assert.True(t, MapViolations{}.Empty())
	assert.False(t, MapViolations{"a": ListViolations{Messages{"x"}}}.Empty())
}

func TestFlatten(t *testing.T) {
	tree := MapViolations{
		"name": Messages{"required"},
		"tags": ListViolations{nil, Messages{"bad"}},
		"address": MapViolations{
			"street": Messages{"missing", "short"},
		},
	}

	flat := Flatten("", tree)

	assert.Equal(t, map[string][]string{
		"name":            {"required"},
		"tags[1]":         {"bad"},
		"address[street]": {"missing", "short"},
	}, flat)
	assert.Equal(t, []string{"address[street]", "name", "tags[1]"}, SortedPaths(flat))
}

func TestErrors_Is(t *testing.T) {
	var err error = NewConfigurationError("fields.Radio.Props", "option value required")
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.False(t, errors.Is(err, ErrType))
	assert.Equal(t, "fields.Radio.Props: option value required", err.Error())

	err = &TypeError{Op: "fields.Collection.FilterInput", Expected: "sequence", Value: "nope"}
	assert.True(t, errors.Is(err, ErrType))
	assert.Contains(t, err.Error(), "got string")
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := LifecycleHooks{OnSubmit: func(context.Context, *SubmitEvent) { calls = append(calls, "a") }}
	b := LifecycleHooks{
		OnSubmit: func(context.Context, *SubmitEvent) { calls = append(calls, "b") },
		OnUpdate: func(context.Context, *UpdateEvent) { calls = append(calls, "update") },
	}

	merged := a.Merge(b)
	merged.OnSubmit(context.Background(), &SubmitEvent{})
	merged.OnUpdate(context.Background(), &UpdateEvent{})

	assert.Nil(t, merged.OnValidate)
	assert.Equal(t, []string{"a", "b", "update"}, calls)
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{nil, false},
		{"", false},
		{"0", true},
		{false, false},
		{true, true},
		{0, false},
		{int64(3), true},
		{0.0, false},
		{uint8(1), true},
		{[]any{}, true},
		{map[string]any{}, true},
		{(*ToggleState)(nil), false},
		{&ToggleState{}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truthy(tt.value), "Truthy(%#v)", tt.value)
	}
}
