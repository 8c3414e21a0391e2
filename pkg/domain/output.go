package domain

// Output is the externally visible value of a field at submission time.
// An omitted output means the field must be left out of the submitted data.
type Output struct {
	Value   any
	Present bool
}

// Present wraps a value that should be submitted.
func Present(v any) Output {
	return Output{Value: v, Present: true}
}

// Omitted returns the output for a field excluded from submission.
func Omitted() Output {
	return Output{}
}

// OrNil returns the value when present and nil otherwise.
func (o Output) OrNil() any {
	if !o.Present {
		return nil
	}
	return o.Value
}
