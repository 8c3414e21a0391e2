/*
Package dsl provides a fluent builder for constructing form field trees in Go.

It is the programmatic counterpart of the YAML and JSON definitions read by package schema: a type-safe way to declare
fields, their validators and their nesting, with key order preserved.

Example usage:

	shape, err := dsl.New().
		Input("email", validators.Required()).
		Checkbox("terms", validators.Required("Please accept the terms.")).
		Collection("tags", fields.Input()).
		Group("address", func(b *dsl.Builder) {
			b.Input("street")
			b.Input("city")
		}).
		Build()

Per-field options are set through Add:

	b := dsl.New()
	b.Add("code").
		Input().
		Validate(validators.Required(), validators.Matches(digits)).
		ShortCircuit()
	shape, err := b.Build()
*/
package dsl
