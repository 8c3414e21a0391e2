package validators

import (
	"github.com/aretw0/formtree/pkg/domain"
)

// Context accumulates the violations of one validation pass.
// It is mutable and meant to be used once.
//
// Leaf fields record messages with AddViolation. Composite fields record the
// tree built from their children's isolated contexts with Nest; once a tree
// is nested it is what Violations reports.
type Context struct {
	// Data is optional caller data made available to validators.
	Data any

	messages domain.Messages
	nested   domain.Violations
}

// NewContext creates a fresh, empty validation context.
func NewContext() *Context {
	return &Context{}
}

// AddViolation records a message against the value being validated.
func (c *Context) AddViolation(message string) {
	c.messages = append(c.messages, message)
}

// Nest records a child violation tree.
func (c *Context) Nest(tree domain.Violations) {
	if tree == nil || tree.Empty() {
		return
	}
	c.nested = tree
}

// HasViolations reports whether anything was recorded.
func (c *Context) HasViolations() bool {
	return len(c.messages) > 0 || c.nested != nil
}

// Violations returns the recorded tree, or nil when the value is clean.
// Leaf messages are returned in insertion order.
func (c *Context) Violations() domain.Violations {
	if c.nested != nil {
		return c.nested
	}
	if len(c.messages) == 0 {
		return nil
	}
	out := make(domain.Messages, len(c.messages))
	copy(out, c.messages)
	return out
}

// count is used by ShortChain to detect what a single validator recorded.
func (c *Context) count() int {
	n := len(c.messages)
	if c.nested != nil {
		n++
	}
	return n
}
