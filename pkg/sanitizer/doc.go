// Package sanitizer cleans user input before it is validated or stored.
//
// Blacklist builds a transform that removes a set of characters, each taken
// literally. StripSeparators and MaskCreditCard handle the spaces and hyphens
// people type in card numbers. A handful of text transforms (Trim, ToLower,
// NormalizeWhitespace, ...) can be referenced by name through Lookup and Chain,
// which is how form schemas describe them.
//
// Apply and Compose build pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.Blacklist("<>"),
//	    sanitizer.NormalizeWhitespace,
//	)
//
//	clean("  <b>hello</b>   world ") // "bhello/b world"
//
// None of the helpers returns an error or panics on input; only Lookup and
// Chain report unknown transform names.
package sanitizer
