/*
Package fields implements the recursive field tree: leaf fields (simple,
toggle, radio) and the composite Collection and Shape nodes.

A Node is an immutable description of a subtree. It never holds values; the
owner of the form value hands values in and receives normalized values,
submission output, violation trees and accessors back.

Every node supports the same four operations:

  - FilterInput normalizes inbound data and fills in defaults.
  - FilterOutput extracts the externally visible value, possibly omitting it.
  - Validate records violations on a validators.Context, shaped like the value.
  - Accessors binds the node to one path of the owner's value through a getter
    and an update function, producing the props controls render from.

Accessors read through the getter when they are used, not when they are built,
and express every mutation as a domain.Update relative to the value current at
apply time. A batch of updates issued before the owner flushes therefore
composes without lost writes.
*/
package fields
