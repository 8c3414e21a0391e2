package testutils

import (
	"testing"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/validators"
	"github.com/stretchr/testify/require"
)

// AccessorCall records one Accessors invocation of a TrackingNode.
type AccessorCall struct {
	Name   string
	Update domain.UpdateFunc
	Get    domain.Getter
}

// TrackingNode wraps a simple field and records every call it receives.
type TrackingNode struct {
	*fields.SimpleNode

	FilterInputCalls  []any
	FilterOutputCalls []any
	ValidateCalls     []any
	AccessorCalls     []AccessorCall
}

// NewTrackingNode creates a TrackingNode with the given validators.
func NewTrackingNode(vs ...validators.Validator) *TrackingNode {
	return &TrackingNode{SimpleNode: fields.Input(vs...)}
}

func (n *TrackingNode) FilterInput(raw any) (any, error) {
	n.FilterInputCalls = append(n.FilterInputCalls, raw)
	return n.SimpleNode.FilterInput(raw)
}

func (n *TrackingNode) FilterOutput(value any) (domain.Output, error) {
	n.FilterOutputCalls = append(n.FilterOutputCalls, value)
	return n.SimpleNode.FilterOutput(value)
}

func (n *TrackingNode) Validate(value any, ctx *validators.Context) error {
	n.ValidateCalls = append(n.ValidateCalls, value)
	return n.SimpleNode.Validate(value, ctx)
}

func (n *TrackingNode) Accessors(name string, update domain.UpdateFunc, get domain.Getter) fields.Accessor {
	n.AccessorCalls = append(n.AccessorCalls, AccessorCall{Name: name, Update: update, Get: get})
	return n.SimpleNode.Accessors(name, update, get)
}

// UpdateRecorder collects the updates an accessor issues.
type UpdateRecorder struct {
	Updates []domain.Update
}

// Func returns the update function to hand to an accessor.
func (r *UpdateRecorder) Func() domain.UpdateFunc {
	return func(u domain.Update) {
		r.Updates = append(r.Updates, u)
	}
}

// ApplyLast applies the single recorded update to current, failing the test
// unless exactly one update was recorded.
func (r *UpdateRecorder) ApplyLast(t *testing.T, current any) any {
	t.Helper()
	require.Len(t, r.Updates, 1, "expected exactly one update")
	return r.Updates[0].Apply(current)
}

// Static returns a getter that always reads v.
func Static(v any) domain.Getter {
	return func() any { return v }
}
