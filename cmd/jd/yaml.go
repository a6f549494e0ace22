package main

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/jsondoc/ir"
)

// writeYAML renders a document as yaml, keeping member order via
// MapSlice.
func writeYAML(doc *ir.Document, w io.Writer) error {
	d, err := yaml.Marshal(docSlice(doc))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func docSlice(doc *ir.Document) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, doc.Len())
	doc.Visit(func(key string, v *ir.Value) error {
		ms = append(ms, yaml.MapItem{Key: key, Value: goValue(v)})
		return nil
	})
	return ms
}

func goValue(v *ir.Value) any {
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return v.Bool
	case ir.NumberType:
		switch {
		case v.Int32 != nil:
			return *v.Int32
		case v.Int64 != nil:
			return *v.Int64
		case v.Float64 != nil:
			return *v.Float64
		default:
			return *v.Float32
		}
	case ir.StringType:
		return v.String
	case ir.ArrayType:
		elts := make([]any, len(v.Values))
		for i, e := range v.Values {
			elts[i] = goValue(e)
		}
		return elts
	case ir.ObjectType:
		return docSlice(v.Doc)
	case ir.TypedType:
		return v.App
	default:
		panic("type")
	}
}
