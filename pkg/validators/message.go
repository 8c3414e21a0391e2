package validators

import (
	"fmt"

	"github.com/aretw0/formtree/pkg/domain"
)

// Message formats a violation for a value. Extra arguments are validator
// specific (the allowed values for OneOf, the pattern for Matches).
type Message func(value any, extra ...any) string

// Literal returns a Message that always yields s.
func Literal(s string) Message {
	return func(any, ...any) string { return s }
}

// EnsureMessage normalizes a user supplied message.
// nil or "" selects def; strings, Message and plain message functions are
// accepted; anything else is a *domain.ConfigurationError.
func EnsureMessage(message any, def string) (Message, error) {
	switch m := message.(type) {
	case nil:
		return Literal(def), nil
	case string:
		if m == "" {
			return Literal(def), nil
		}
		return Literal(m), nil
	case Message:
		if m == nil {
			return Literal(def), nil
		}
		return m, nil
	case func(any, ...any) string:
		if m == nil {
			return Literal(def), nil
		}
		return Message(m), nil
	default:
		return nil, domain.NewConfigurationError("validators.EnsureMessage", "messages must be strings or functions, got %T", message)
	}
}

// ToViolation renders message for value.
func ToViolation(message Message, value any, extra ...any) string {
	return message(value, extra...)
}

// mustMessage resolves an optional trailing message argument.
// Validator constructors run at form definition time, so a bad message panics.
func mustMessage(op string, args []any, def string) Message {
	if len(args) > 1 {
		panic(domain.NewConfigurationError(op, "expected at most one message, got %d", len(args)))
	}
	var raw any
	if len(args) == 1 {
		raw = args[0]
	}
	msg, err := EnsureMessage(raw, def)
	if err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
	return msg
}
