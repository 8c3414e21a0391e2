package dsl

import (
	"errors"
	"regexp"
	"testing"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/validators"
)

func validate(t *testing.T, node fields.Node, raw any) domain.Violations {
	t.Helper()
	value, err := node.FilterInput(raw)
	if err != nil {
		t.Fatalf("FilterInput() failed: %v", err)
	}
	ctx := validators.NewContext()
	if err := node.Validate(value, ctx); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	return ctx.Violations()
}

func TestBuilder_SimpleForm(t *testing.T) {
	// 1. Build the shape using the DSL
	shape, err := New().
		Input("email", validators.Required()).
		Textarea("bio").
		Select("country").
		Checkbox("terms").
		Radio("plan").
		Collection("tags", fields.Input()).
		Group("address", func(b *Builder) {
			b.Input("street")
			b.Input("city")
		}).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	// 2. Keys keep declaration order
	want := []string{"email", "bio", "country", "terms", "plan", "tags", "address"}
	got := shape.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// 3. Verify field kinds
	if f, _ := shape.Field("terms"); f == nil {
		t.Fatal("terms field missing")
	} else if _, ok := f.(*fields.ToggleNode); !ok {
		t.Errorf("Expected terms to be a toggle, got %T", f)
	}
	if f, _ := shape.Field("plan"); f == nil {
		t.Fatal("plan field missing")
	} else if _, ok := f.(*fields.RadioNode); !ok {
		t.Errorf("Expected plan to be a radio, got %T", f)
	}
	address, _ := shape.Field("address")
	nested, ok := address.(*fields.ShapeNode)
	if !ok {
		t.Fatalf("Expected address to be a shape, got %T", address)
	}
	if keys := nested.Keys(); len(keys) != 2 || keys[0] != "street" || keys[1] != "city" {
		t.Errorf("Expected address keys [street city], got %v", keys)
	}

	// 4. Validators are wired
	violations := validate(t, shape, map[string]any{})
	tree, ok := violations.(domain.MapViolations)
	if !ok {
		t.Fatalf("Expected map violations, got %T", violations)
	}
	if len(tree) != 1 || tree["email"] == nil {
		t.Errorf("Expected only email to fail, got %v", tree)
	}
}

func TestBuilder_FieldOptions(t *testing.T) {
	digits := regexp.MustCompile(`^[0-9]+$`)

	b := New()
	b.Add("code").
		Input().
		Validate(validators.Required(), validators.Matches(digits)).
		ShortCircuit()
	b.Add("pin").
		Input().
		Validate(validators.Required(), validators.Matches(digits)).
		Done().
		Input("other")

	shape, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	tree := validate(t, shape, map[string]any{}).(domain.MapViolations)
	if msgs := tree["code"].(domain.Messages); len(msgs) != 1 {
		t.Errorf("Expected short circuit to stop at one violation, got %v", msgs)
	}
	if msgs := tree["pin"].(domain.Messages); len(msgs) != 2 {
		t.Errorf("Expected both violations without short circuit, got %v", msgs)
	}
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	first := b.Add("name")
	if second := b.Add("name"); first != second {
		t.Error("Add() should return the existing field builder")
	}
	if first.Key() != "name" {
		t.Errorf("Key() = %q, want name", first.Key())
	}
}

func TestBuilder_Shape(t *testing.T) {
	inner := New().Input("a").MustBuild()
	shape := New().Shape("inner", inner).MustBuild()

	if f, _ := shape.Field("inner"); f != inner {
		t.Errorf("Expected the given node to be used as is, got %v", f)
	}
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
	}{
		{"kind never set", func() *Builder {
			b := New()
			b.Add("x")
			return b
		}},
		{"nil validator", func() *Builder { return New().Input("x", nil) }},
		{"nil validator short circuit", func() *Builder {
			b := New()
			b.Add("x").Input().Validate(validators.Required(), nil).ShortCircuit()
			return b
		}},
		{"validators on collection", func() *Builder {
			b := New()
			b.Add("x").CollectionOf(fields.Input()).Validate(validators.Required())
			return b
		}},
		{"nil collection child", func() *Builder { return New().Collection("x", nil) }},
		{"nil node", func() *Builder { return New().Shape("x", nil) }},
		{"nested error", func() *Builder {
			return New().Group("g", func(b *Builder) { b.Add("y") })
		}},
		{"empty key", func() *Builder { return New().Input("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Build()
			if err == nil {
				t.Fatal("Build() should fail")
			}
			if !errors.Is(err, domain.ErrConfiguration) {
				t.Errorf("Expected a configuration error, got %v", err)
			}
		})
	}

	defer func() {
		if recover() == nil {
			t.Error("MustBuild() should panic")
		}
	}()
	New().Input("x", nil).MustBuild()
}
