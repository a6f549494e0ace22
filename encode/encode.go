package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/registry"
	"github.com/signadot/jsondoc/token"
)

// Encode renders a document to w. Compact output carries no whitespace;
// pretty output places each member on its own line indented by
// depth*indent spaces, with a single space after each colon.
func Encode(doc *ir.Document, w io.Writer, opts ...Option) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return encodeDocument(doc, w, es)
}

// Value renders a single value, for tooling that extracts document
// fragments.
func Value(v *ir.Value, w io.Writer, opts ...Option) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return encodeValue(v, w, es)
}

func encodeDocument(doc *ir.Document, w io.Writer, es *encState) error {
	if doc.Len() == 0 {
		// no interior whitespace regardless of pretty mode
		return writeString(w, applySepColor(es, ir.ObjectType, "{}"))
	}
	if err := writeString(w, applySepColor(es, ir.ObjectType, "{")); err != nil {
		return err
	}
	es.depth++
	i := 0
	err := doc.Visit(func(key string, val *ir.Value) error {
		if i > 0 {
			if err := writeString(w, applySepColor(es, ir.ObjectType, ",")); err != nil {
				return err
			}
		}
		i++
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, key, es); err != nil {
			return err
		}
		return encodeValue(val, w, es)
	})
	if err != nil {
		return err
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applySepColor(es, ir.ObjectType, "}"))
}

func encodeValue(v *ir.Value, w io.Writer, es *encState) error {
	es.colorType = v.Type
	switch v.Type {
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(v.Bool)))
	case ir.NumberType:
		return encodeNumber(v, w, es)
	case ir.StringType:
		return encodeString(v.String, w, es)
	case ir.ArrayType:
		return encodeArray(v, w, es)
	case ir.ObjectType:
		return encodeDocument(v.Doc, w, es)
	case ir.TypedType:
		return encodeTyped(v, w, es)
	default:
		panic("type")
	}
}

func encodeNumber(v *ir.Value, w io.Writer, es *encState) error {
	var s string
	switch {
	case v.Int32 != nil:
		s = strconv.FormatInt(int64(*v.Int32), 10)
	case v.Int64 != nil:
		s = strconv.FormatInt(*v.Int64, 10)
	case v.Float64 != nil:
		s = floatText(*v.Float64, 64)
	case v.Float32 != nil:
		s = floatText(float64(*v.Float32), 32)
	default:
		return fmt.Errorf("number value with no width")
	}
	return writeString(w, applyValueColor(es, ir.NumberType, s))
}

// floatText renders a float at its parse width, keeping a fractional
// marker so whole-valued floats re-parse as floats.
func floatText(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		s += ".0"
	}
	return s
}

func encodeString(s string, w io.Writer, es *encState) error {
	v := `"` + token.Escape(s) + `"`
	return writeString(w, applyValueColor(es, ir.StringType, v))
}

func encodeArray(v *ir.Value, w io.Writer, es *encState) error {
	if len(v.Values) == 0 {
		return writeString(w, applySepColor(es, ir.ArrayType, "[]"))
	}
	if err := writeString(w, applySepColor(es, ir.ArrayType, "[")); err != nil {
		return err
	}
	es.depth++
	for i, elt := range v.Values {
		if i > 0 {
			if err := writeString(w, applySepColor(es, ir.ArrayType, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeValue(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applySepColor(es, ir.ArrayType, "]"))
}

// encodeTyped serializes an application value through the registry and
// renders the resulting document with the discriminator injected first.
func encodeTyped(v *ir.Value, w io.Writer, es *encState) error {
	if es.reg == nil {
		return fmt.Errorf("no registry to encode typed value %q", v.TypeID)
	}
	codec, ok := es.reg.Lookup(v.TypeID)
	if !ok {
		return fmt.Errorf("no codec registered for %q", v.TypeID)
	}
	doc, err := codec.Encode(v.App)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", v.TypeID, err)
	}
	doc.SetFront(registry.Discriminator, ir.FromString(v.TypeID))
	return encodeDocument(doc, w, es)
}

func writeNL(w io.Writer, es *encState) error {
	if !es.pretty {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeField(w io.Writer, f string, es *encState) error {
	v := `"` + token.Escape(f) + `"`
	sep := ":"
	if es.pretty {
		sep = ": "
	}
	if es.Color != nil {
		v = es.Color(ir.ObjectType, FieldColor, v)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, v+sep)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *encState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func applyValueColor(es *encState, t ir.Type, v string) string {
	return applyColor(es, t, ValueColor, v)
}

func applySepColor(es *encState, t ir.Type, v string) string {
	return applyColor(es, t, SepColor, v)
}
