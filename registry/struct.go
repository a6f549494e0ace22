package registry

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"

	"github.com/signadot/jsondoc/ir"
)

// Struct builds a reflection-based codec for the struct type of
// prototype. Field names follow `structs:"..."` tags on encode and
// `mapstructure:"..."` tags on decode; a struct meant to round-trip
// carries both.
func Struct(id string, prototype any) Codec {
	t := reflect.TypeOf(prototype)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &structCodec{id: id, typ: t}
}

type structCodec struct {
	id  string
	typ reflect.Type
}

func (c *structCodec) ID() string {
	return c.id
}

func (c *structCodec) GoType() reflect.Type {
	return c.typ
}

func (c *structCodec) Encode(v any) (*ir.Document, error) {
	if !structs.IsStruct(v) {
		return nil, fmt.Errorf("codec %q: %T is not a struct", c.id, v)
	}
	return fromGoMap(structs.Map(v))
}

func (c *structCodec) Decode(d *ir.Document) (any, error) {
	out := reflect.New(c.typ)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out.Interface(),
	})
	if err != nil {
		return nil, err
	}
	m, err := toGoMap(d)
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("codec %q: %w", c.id, err)
	}
	return out.Elem().Interface(), nil
}

func fromGoMap(m map[string]any) (*ir.Document, error) {
	d := ir.New()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v, err := fromGoValue(m[k])
		if err != nil {
			return nil, err
		}
		d.Set(k, v)
	}
	return d, nil
}

func fromGoValue(v any) (*ir.Value, error) {
	switch vv := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(vv), nil
	case int:
		return ir.FromInt(int64(vv)), nil
	case int8:
		return ir.FromInt(int64(vv)), nil
	case int16:
		return ir.FromInt(int64(vv)), nil
	case int32:
		return ir.FromInt(int64(vv)), nil
	case int64:
		return ir.FromInt(vv), nil
	case uint:
		return ir.FromInt(int64(vv)), nil
	case uint8:
		return ir.FromInt(int64(vv)), nil
	case uint16:
		return ir.FromInt(int64(vv)), nil
	case uint32:
		return ir.FromInt(int64(vv)), nil
	case uint64:
		return ir.FromInt(int64(vv)), nil
	case float32:
		return ir.FromFloat32(vv), nil
	case float64:
		return ir.FromFloat(vv), nil
	case string:
		return ir.FromString(vv), nil
	case []any:
		elts := make([]*ir.Value, len(vv))
		for i, e := range vv {
			elt, err := fromGoValue(e)
			if err != nil {
				return nil, err
			}
			elts[i] = elt
		}
		return ir.FromSlice(elts), nil
	case map[string]any:
		d, err := fromGoMap(vv)
		if err != nil {
			return nil, err
		}
		return ir.FromDocument(d), nil
	default:
		// Values outside the variant set keep their default text
		// representation; callers depend on this coercion.
		return ir.FromString(fmt.Sprintf("%v", vv)), nil
	}
}

func toGoMap(d *ir.Document) (map[string]any, error) {
	m := make(map[string]any, d.Len())
	err := d.Visit(func(key string, v *ir.Value) error {
		gv, err := toGoValue(v)
		if err != nil {
			return err
		}
		m[key] = gv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func toGoValue(v *ir.Value) (any, error) {
	switch v.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return v.Bool, nil
	case ir.NumberType:
		switch {
		case v.Int32 != nil:
			return int64(*v.Int32), nil
		case v.Int64 != nil:
			return *v.Int64, nil
		case v.Float64 != nil:
			return *v.Float64, nil
		case v.Float32 != nil:
			return float64(*v.Float32), nil
		}
		return nil, fmt.Errorf("number value with no width")
	case ir.StringType:
		return v.String, nil
	case ir.ArrayType:
		elts := make([]any, len(v.Values))
		for i, e := range v.Values {
			ge, err := toGoValue(e)
			if err != nil {
				return nil, err
			}
			elts[i] = ge
		}
		return elts, nil
	case ir.ObjectType:
		return toGoMap(v.Doc)
	case ir.TypedType:
		return v.App, nil
	default:
		return nil, fmt.Errorf("unknown value type %s", v.Type)
	}
}
