package encode

import (
	"strings"

	"github.com/signadot/jsondoc/ir"
)

// String renders a document to a string.
func String(doc *ir.Document, opts ...Option) (string, error) {
	b := &strings.Builder{}
	if err := Encode(doc, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustString is String for documents that cannot fail to encode, which
// is any document without typed values.
func MustString(doc *ir.Document, opts ...Option) string {
	s, err := String(doc, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// PrettyString renders a document with newline-and-indent formatting.
// A non-positive indent defaults to 2.
func PrettyString(doc *ir.Document, indent int) string {
	if indent <= 0 {
		indent = 2
	}
	return MustString(doc, Pretty(true), Indent(indent))
}
