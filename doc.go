/*
Package formtree manages the state of hierarchical forms, independently of any rendering technology.

A form is described once as an immutable tree of fields (see package fields): leaves such as text inputs, toggles and radio groups,
collections repeating one child field, and shapes grouping named fields. The tree knows how to normalize inbound data,
how to sanitize the value to submit, how to validate it into a violation tree of the same shape, and how to build the
accessors controls bind to.

# Concept

A Form owns the value. Accessors never write to it directly: every change handler hands the Form a domain.Update,
which is queued and applied by Flush. Updates that depend on the current value are transforms, so several changes issued
before a flush compose instead of overwriting each other.

# Usage

	package main

	import (
		"context"
		"errors"
		"fmt"
		"log"

		"github.com/aretw0/formtree"
		"github.com/aretw0/formtree/pkg/dsl"
		"github.com/aretw0/formtree/pkg/validators"
	)

	func main() {
		shape := dsl.New().
			Input("email", validators.Required()).
			Checkbox("newsletter").
			MustBuild()

		form, err := formtree.New(shape)
		if err != nil {
			log.Fatal(err)
		}

		props, _ := form.MustField("email").Props()
		props.OnChange("ada@example.com")

		out, err := form.Submit(context.Background())
		if errors.Is(err, formtree.ErrInvalid) {
			fmt.Println(form.Errors())
			return
		}
		fmt.Println(out)
	}

Definitions can also be loaded from YAML or JSON documents with package schema, and filled interactively with a Runner.
*/
package formtree
