package domain

// Update is a pending mutation of a form value.
// It is either a literal replacement or a transform of the value current at
// apply time. Transforms let several updates issued before a flush compose,
// since each one receives the result of the previous.
type Update struct {
	value     any
	transform func(any) any
}

// Replace creates an update that swaps the current value for v.
func Replace(v any) Update {
	return Update{value: v}
}

// Transform creates an update computed from the value current at apply time.
func Transform(fn func(old any) any) Update {
	return Update{transform: fn}
}

// IsTransform reports whether the update depends on the current value.
func (u Update) IsTransform() bool {
	return u.transform != nil
}

// Apply resolves the update against old.
func (u Update) Apply(old any) any {
	if u.transform != nil {
		return u.transform(old)
	}
	return u.value
}

// UpdateFunc receives updates for one path of the form value.
type UpdateFunc func(Update)

// Getter reads the value at one path. It is evaluated lazily, at call time.
type Getter func() any
