// Package parse turns JSON text into ordered documents.
//
// # Usage
//
//	doc, err := parse.Parse([]byte(`{"name":"a","tags":["x","y"]}`))
//	if err != nil {
//	    return err
//	}
//
//	// With a type registry for discriminated objects
//	doc, err := parse.Parse(data, parse.WithRegistry(reg))
//
// The parser is a single left-to-right character scan tracking quoting
// and nesting depth; nested objects and arrays are parsed by recursing on
// the captured sub-slice. The grammar is strict: the input must be a
// brace-delimited object, numbers must be unquoted, and there is no
// comment syntax. Any violation returns an error wrapping ir.ErrMalformed
// and aborts the parse.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/ir - document representation
//   - github.com/signadot/jsondoc/encode - the inverse transform
package parse
