package formtree_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/formtree"
	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/validators"
)

// ExampleForm_Submit shows the update, flush and submit cycle of a form.
func ExampleForm_Submit() {
	form, err := formtree.NewFromFields(map[string]fields.Node{
		"email": fields.Input(validators.Required("Email is required.")),
		"tags":  fields.Collection(fields.Input()),
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if _, err := form.Submit(ctx); errors.Is(err, formtree.ErrInvalid) {
		fmt.Println("errors:", form.Errors()["email"])
	}

	email, _ := form.MustField("email").Props()
	email.OnChange("ada@example.com")

	tags := form.MustField("tags").(*fields.CollectionAccessor)
	tags.Add()
	first, _ := tags.Props(0)
	first.OnChange("math")

	out, err := form.Submit(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("email:", out["email"])
	fmt.Println("tags:", out["tags"])

	// Output:
	// errors: [Email is required.]
	// email: ada@example.com
	// tags: [math]
}
