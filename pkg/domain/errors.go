package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel matched by every *ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// ErrType is the sentinel matched by every *TypeError.
var ErrType = errors.New("type error")

// ConfigurationError reports a field definition or accessor misuse.
// It indicates a bug in the form definition, never bad user input.
type ConfigurationError struct {
	Op     string // Operation that rejected the configuration (e.g. "fields.Radio.Props")
	Reason string // Human-readable reason
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError builds a ConfigurationError with a formatted reason.
func NewConfigurationError(op, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// TypeError reports a value whose runtime shape disagrees with its field.
type TypeError struct {
	Op       string
	Expected string
	Value    any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %T", e.Op, e.Expected, e.Value)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType
}
