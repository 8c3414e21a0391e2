// Package schema loads declarative form definitions and compiles them into
// field trees.
//
// A definition is a YAML or JSON document mapping field keys to field
// entries. Each entry names a type and, optionally, the validators to attach:
//
//	fields:
//	  email:
//	    type: input
//	    validators:
//	      - required
//	      - name: matches
//	        args: {pattern: "^.+@.+$", message: "Enter an email address."}
//	  terms: checkbox
//	  tags:
//	    type: "[input]"
//	    validators: [required]
//	  address:
//	    type: shape
//	    fields:
//	      street: input
//	      city: input
//
// Types follow a small grammar: the leaf types input, textarea, select,
// checkbox, toggle and radio; shape for a nested record (with fields);
// "[T]" for a collection of T, nestable; and collection for a collection
// whose element entry is given under of. Validators of a "[T]" entry apply to
// its innermost element. Key order is preserved from the document.
//
// Compiling resolves validator names through a registry.Registry and reports
// every problem at once:
//
//	def, err := schema.LoadFile("signup.yaml")
//	if err != nil {
//	    return err
//	}
//	shape, err := def.Compile(registry.Default())
//	if err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        fmt.Println(e)
//	    }
//	}
package schema
