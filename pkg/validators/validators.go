package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/formtree/pkg/domain"
)

// Validator checks a value and records violations on ctx.
type Validator func(value any, ctx *Context)

// Required records a violation when the value is falsy (see domain.Truthy).
// An optional message overrides the default "This field is required.".
func Required(message ...any) Validator {
	msg := mustMessage("validators.Required", message, "This field is required.")

	return func(value any, ctx *Context) {
		if !domain.Truthy(value) {
			ctx.AddViolation(ToViolation(msg, value))
		}
	}
}

// OneOf records a violation when the value is not one of values. Numbers
// match by value (see SameValue).
// Message functions receive values as their extra argument.
func OneOf(values []any, message ...any) Validator {
	if values == nil {
		panic(domain.NewConfigurationError("validators.OneOf", "values must be a list"))
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = fmt.Sprint(v)
	}
	msg := mustMessage("validators.OneOf", message,
		fmt.Sprintf("Must be one of the following values: %s", strings.Join(names, ", ")))

	return func(value any, ctx *Context) {
		for _, allowed := range values {
			if SameValue(value, allowed) {
				return
			}
		}
		ctx.AddViolation(ToViolation(msg, value, values))
	}
}

// Matches records a violation when the value does not match pattern.
// Non-string values are matched against their default formatting; nil
// matches as the empty string.
func Matches(pattern *regexp.Regexp, message ...any) Validator {
	if pattern == nil {
		panic(domain.NewConfigurationError("validators.Matches", "pattern must be a compiled regexp"))
	}
	msg := mustMessage("validators.Matches", message, "This value is not valid.")

	return func(value any, ctx *Context) {
		if !pattern.MatchString(asText(value)) {
			ctx.AddViolation(ToViolation(msg, value, pattern))
		}
	}
}

// Chain applies every validator, regardless of earlier failures.
// Use it for independent checks.
func Chain(validators ...Validator) Validator {
	mustValidators("validators.Chain", validators)

	return func(value any, ctx *Context) {
		for _, v := range validators {
			v(value, ctx)
		}
	}
}

// ShortChain applies validators in order and stops after the first one that
// records a violation. Use it for dependent checks, such as required before
// pattern.
func ShortChain(validators ...Validator) Validator {
	mustValidators("validators.ShortChain", validators)

	return func(value any, ctx *Context) {
		for _, v := range validators {
			before := ctx.count()
			v(value, ctx)
			if ctx.count() > before {
				return
			}
		}
	}
}

func mustValidators(op string, validators []Validator) {
	if len(validators) == 0 {
		panic(domain.NewConfigurationError(op, "requires at least one validator"))
	}
	for i, v := range validators {
		if v == nil {
			panic(domain.NewConfigurationError(op, "validator %d is nil", i))
		}
	}
}

func asText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
