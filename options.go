package formtree

import (
	"log/slog"

	"github.com/aretw0/formtree/pkg/domain"
)

// Option defines a functional option for configuring a Form.
type Option func(*Form)

// WithLogger sets a custom structured logger for the form.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

// WithHooks registers observability hooks. Repeated calls merge the hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(f *Form) {
		f.hooks = f.hooks.Merge(hooks)
	}
}

// WithInitialData sets the raw data the form value is loaded from.
func WithInitialData(data map[string]any) Option {
	return func(f *Form) {
		f.initial = data
	}
}

// WithID sets the form identifier. A random UUID is used by default.
func WithID(id string) Option {
	return func(f *Form) {
		f.id = id
	}
}

// AutoFlush makes every accessor update apply immediately instead of
// waiting for Flush.
func AutoFlush() Option {
	return func(f *Form) {
		f.autoFlush = true
	}
}
