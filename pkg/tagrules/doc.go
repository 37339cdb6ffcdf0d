// Package tagrules registers the validator package constructors as
// go-playground/validator struct tags, so request structs can declare them
// next to the built-in rules, and maps the resulting field errors back to the
// core error mappings with Registry.Explain.
package tagrules
