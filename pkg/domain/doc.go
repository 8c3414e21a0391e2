/*
Package domain contains the shared value types of the formtree engine.

It defines the vocabulary every field node speaks: the update sum type handed to
the owning state container, the present/absent output result, the binding props
produced by accessors, and the shape-congruent violation tree returned by
validation. This package is kept pure and free of external dependencies like I/O
or rendering.

# Key Entities

  - Update: A pending mutation, either a literal replacement or an old -> new transform.
  - Output: The result of filtering a value for submission (present or omitted).
  - Props: The binding dictionary a control needs (name, value, checked, change handler).
  - Violations: A tree of validation messages mirroring the shape of the form value.
  - ConfigurationError / TypeError: Structural failures that indicate a usage bug.
*/
package domain
