package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventUpdate   EventType = "update"
	EventValidate EventType = "validate"
	EventSubmit   EventType = "submit"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	FormID    string    `json:"form_id"`
}

// UpdateEvent is emitted when queued updates are flushed into the form value.
type UpdateEvent struct {
	EventBase
	Applied int            `json:"applied"`
	Changed map[string]any `json:"changed,omitempty"`
}

// ValidateEvent is emitted after one top-level field has been validated.
type ValidateEvent struct {
	EventBase
	Field      string     `json:"field"`
	Violations Violations `json:"violations,omitempty"`
}

// SubmitEvent is emitted once per submit attempt.
type SubmitEvent struct {
	EventBase
	Accepted bool          `json:"accepted"`
	Errors   MapViolations `json:"errors,omitempty"`
}

// LifecycleHooks defines callbacks for form observability.
type LifecycleHooks struct {
	OnUpdate   func(context.Context, *UpdateEvent)
	OnValidate func(context.Context, *ValidateEvent)
	OnSubmit   func(context.Context, *SubmitEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnUpdate:   chainHook(h.OnUpdate, other.OnUpdate),
		OnValidate: chainHook(h.OnValidate, other.OnValidate),
		OnSubmit:   chainHook(h.OnSubmit, other.OnSubmit),
	}
}

func chainHook[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
