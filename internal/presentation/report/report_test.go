package report

import (
	"testing"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolations(t *testing.T) {
	got := Violations(domain.MapViolations{
		"tags":  domain.ListViolations{nil, domain.Messages{"required"}},
		"email": domain.Messages{"required", "invalid"},
	})

	assert.Equal(t, "## Violations\n\n"+
		"- **email**: required\n"+
		"- **email**: invalid\n"+
		"- **tags[1]**: required\n", got)

	assert.Contains(t, Violations(nil), "No violations.")
	assert.Contains(t, Violations(domain.MapViolations{}), "No violations.")
}

func TestValue(t *testing.T) {
	got, err := Value("Output", map[string]any{"email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "## Output\n\n```json\n{\n  \"email\": \"a@b.c\"\n}\n```\n", got)

	_, err = Value("Output", func() {})
	assert.Error(t, err)
}

func TestDefinition(t *testing.T) {
	def := &schema.Definition{
		Title: "Signup",
		Fields: schema.Fields{
			{Key: "email", Def: schema.FieldDef{Type: "input", ShortCircuit: true, Validators: []schema.ValidatorDef{{Name: "required"}, {Name: "matches"}}}},
			{Key: "address", Def: schema.FieldDef{Type: "shape", Fields: schema.Fields{{Key: "city", Def: schema.FieldDef{Type: "input"}}}}},
			{Key: "people", Def: schema.FieldDef{Type: "collection", Of: &schema.FieldDef{Type: "input"}}},
		},
	}

	assert.Equal(t, "# Signup\n\n"+
		"- **email** `input` (required, matches, short circuit)\n"+
		"- **address** `shape`\n"+
		"  - **city** `input`\n"+
		"- **people** `collection`\n"+
		"  - **item** `input`\n", Definition(def))

	assert.Contains(t, Definition(&schema.Definition{}), "# Form")
}
