// Package encode renders documents back to JSON text.
//
// # Usage
//
//	// Compact
//	err := encode.Encode(doc, w)
//
//	// Pretty, two-space indent
//	err := encode.Encode(doc, w, encode.Pretty(true), encode.Indent(2))
//
//	// String helpers
//	s := encode.MustString(doc)
//	s := encode.PrettyString(doc, 2)
//
// Output is always syntactically valid for a well-formed document; the
// only failure modes are writer errors and registry errors while
// serializing typed values.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/ir - document representation
//   - github.com/signadot/jsondoc/parse - the inverse transform
package encode
