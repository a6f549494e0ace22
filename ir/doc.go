// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A parsed JSON object is represented as a Document, an ordered mapping
// from string keys to Values. Values form a closed tagged union over the
// JSON value kinds plus Typed, which carries an application value together
// with the type identifier used to reconstruct it through a registry.
//
// # Value Structure
//
// The Type field indicates the value's kind:
//
//   - NullType: null
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value; exactly one of Int32, Int64, Float64,
//     Float32 is non-nil, recording the width the value was parsed at
//   - StringType: string value, already unescaped
//   - ArrayType: ordered, possibly heterogeneous list of values
//   - ObjectType: nested Document
//   - TypedType: application value tagged with a type identifier
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromBool(true)
//	a := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
//	o := ir.FromDocument(doc)
//
// # Documents
//
// Documents preserve insertion order: iteration with Visit and encoding
// both see keys in the order they were first set. Keys are unique; Set on
// an existing key overwrites the value in place without changing its
// position.
//
// # Thread Safety
//
// Documents and Values are not thread-safe. If a Document is shared
// between goroutines the caller must synchronize mutation.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/parse - parses text into Documents
//   - github.com/signadot/jsondoc/encode - encodes Documents to text
//   - github.com/signadot/jsondoc/registry - type identifier registry
package ir
