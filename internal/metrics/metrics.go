package metrics

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Collector records form lifecycle events as Prometheus metrics.
type Collector struct {
	registry        *prometheus.Registry
	updates         prometheus.Counter
	validations     *prometheus.CounterVec
	fieldViolations *prometheus.CounterVec
	submits         *prometheus.CounterVec
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "formtree_updates_total",
			Help: "Total number of updates applied to form values",
		}),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formtree_validations_total",
				Help: "Total number of top-level field validations",
			},
			[]string{"result"},
		),
		fieldViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formtree_field_violations_total",
				Help: "Total number of validations that found violations, per top-level field",
			},
			[]string{"field"},
		),
		submits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formtree_submits_total",
				Help: "Total number of submit attempts",
			},
			[]string{"result"},
		),
	}
	c.registry.MustRegister(c.updates, c.validations, c.fieldViolations, c.submits)
	return c
}

// Registry returns the registry the metrics are registered with.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Hooks returns lifecycle hooks feeding the collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnUpdate: func(_ context.Context, e *domain.UpdateEvent) {
			c.updates.Add(float64(e.Applied))
		},
		OnValidate: func(_ context.Context, e *domain.ValidateEvent) {
			if e.Violations == nil || e.Violations.Empty() {
				c.validations.WithLabelValues("valid").Inc()
				return
			}
			c.validations.WithLabelValues("invalid").Inc()
			c.fieldViolations.WithLabelValues(e.Field).Inc()
		},
		OnSubmit: func(_ context.Context, e *domain.SubmitEvent) {
			result := "rejected"
			if e.Accepted {
				result = "accepted"
			}
			c.submits.WithLabelValues(result).Inc()
		},
	}
}

// Gather returns the current metric families.
func (c *Collector) Gather() ([]*dto.MetricFamily, error) {
	return c.registry.Gather()
}

// Write dumps every metric in the Prometheus text exposition format.
func (c *Collector) Write(w io.Writer) error {
	families, err := c.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
