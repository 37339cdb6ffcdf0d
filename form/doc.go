// Package form binds the validators of pkg/validator to stateful form
// controls.
//
// A Control owns a value, an ordered list of Validator and the error mapping
// of its last validation pass. A Group validates named controls together and
// reports the failing ones:
//
//	g := form.NewGroup().
//	    Add("card", form.NewControl("",
//	        form.Blacklist("<>"),
//	        form.Use(validator.IsCreditCard(validator.WithProvider("visa"))),
//	    )).
//	    Add("code", form.NewControl("", form.Use(validator.Equals("A1"))))
//
//	_ = g.SetValues(map[string]any{"card": "4111 1111 1111 1111", "code": "a1"})
//	errs := g.Validate(ctx) // {"code": {"equals": {...}}}
//
// Blacklist and Sanitize never fail; they rewrite the value after the pass
// that saw it, without change notifications, and revalidate the cleaned value
// silently. Settle waits for those write-backs.
//
// Forms can also be described in YAML and built with ParseSchema and
// Schema.Build.
package form
