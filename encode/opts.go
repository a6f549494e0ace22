package encode

import (
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/registry"
)

type encState struct {
	depth  int
	indent int
	pretty bool

	reg *registry.Registry

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

type Option func(*encState)

// Pretty switches between compact output and newline-plus-indentation
// output.
func Pretty(v bool) Option {
	return func(es *encState) { es.pretty = v }
}

// Indent sets the number of spaces per nesting level in pretty mode.
func Indent(n int) Option {
	return func(es *encState) { es.indent = n }
}

// Depth sets the starting nesting level, for embedding output under
// already-indented text.
func Depth(n int) Option {
	return func(es *encState) { es.depth = n }
}

// WithRegistry supplies the registry used to serialize typed values.
func WithRegistry(reg *registry.Registry) Option {
	return func(es *encState) { es.reg = reg }
}

// EncodeColors turns on ANSI coloring. Colored output is for terminals;
// it does not re-parse.
func EncodeColors(c *Colors) Option {
	return func(es *encState) { es.Color = c.Color }
}
