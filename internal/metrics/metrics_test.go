package metrics

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	ctx := context.Background()
	c := New()
	hooks := c.Hooks()

	hooks.OnUpdate(ctx, &domain.UpdateEvent{Applied: 3})
	hooks.OnValidate(ctx, &domain.ValidateEvent{Field: "email", Violations: domain.Messages{"required"}})
	hooks.OnValidate(ctx, &domain.ValidateEvent{Field: "name"})
	hooks.OnSubmit(ctx, &domain.SubmitEvent{Accepted: false})
	hooks.OnSubmit(ctx, &domain.SubmitEvent{Accepted: true})
	hooks.OnSubmit(ctx, &domain.SubmitEvent{Accepted: true})

	assert.Equal(t, 3.0, testutil.ToFloat64(c.updates))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.validations.WithLabelValues("valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.validations.WithLabelValues("invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.fieldViolations.WithLabelValues("email")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.submits.WithLabelValues("rejected")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.submits.WithLabelValues("accepted")))
}

func TestCollector_Write(t *testing.T) {
	c := New()
	c.Hooks().OnSubmit(context.Background(), &domain.SubmitEvent{Accepted: true})

	families, err := c.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	assert.Contains(t, buf.String(), "# TYPE formtree_submits_total counter")
	assert.Contains(t, buf.String(), `formtree_submits_total{result="accepted"} 1`)
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.Hooks().OnUpdate(context.Background(), &domain.UpdateEvent{Applied: 1})

	assert.Equal(t, 1.0, testutil.ToFloat64(a.updates))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.updates))
	assert.NotSame(t, a.Registry(), b.Registry())
}
