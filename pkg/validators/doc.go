// Package validators provides validation contexts and the built-in validators
// attached to form fields.
//
// A Validator inspects a value and records any number of violations on a
// Context. Violations are ordinary data, never errors:
//
//	ctx := validators.NewContext()
//	validators.ShortChain(
//	    validators.Required(),
//	    validators.Matches(regexp.MustCompile(`^\d+$`), "Digits only."),
//	)("", ctx)
//
//	ctx.HasViolations() // true
//	ctx.Violations()    // domain.Messages{"This field is required."}
//
// Messages are either literal strings or Message functions receiving the value
// and validator specific extras, for deferred formatting.
package validators
