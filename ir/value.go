package ir

import "math"

// Value is a closed tagged union over the JSON value kinds. Exactly the
// fields implied by Type are meaningful; for NumberType exactly one of
// Int32, Int64, Float64, Float32 is non-nil.
type Value struct {
	Type Type

	Bool   bool
	String string

	Int32   *int32
	Int64   *int64
	Float64 *float64
	Float32 *float32

	// Values holds the elements of an ArrayType value.
	Values []*Value

	// Doc holds the backing document of an ObjectType value.
	Doc *Document

	// TypeID and App hold the identifier and application value of a
	// TypedType value.
	TypeID string
	App    any
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

// FromInt stores v at the narrowest integer width that holds it, matching
// the parser's 32-bit-first fallback.
func FromInt(v int64) *Value {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return FromInt32(int32(v))
	}
	return FromInt64(v)
}

func FromInt32(v int32) *Value {
	return &Value{Type: NumberType, Int32: &v}
}

func FromInt64(v int64) *Value {
	return &Value{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: NumberType, Float64: &v}
}

func FromFloat32(v float32) *Value {
	return &Value{Type: NumberType, Float32: &v}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Type: ArrayType, Values: vs}
}

func FromDocument(d *Document) *Value {
	return &Value{Type: ObjectType, Doc: d}
}

// FromTyped tags an application value with the identifier a registry uses
// to reconstruct it.
func FromTyped(typeID string, app any) *Value {
	return &Value{Type: TypedType, TypeID: typeID, App: app}
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:   v.Type,
		Bool:   v.Bool,
		String: v.String,
		TypeID: v.TypeID,
		App:    v.App,
	}
	if v.Int32 != nil {
		i := *v.Int32
		res.Int32 = &i
	}
	if v.Int64 != nil {
		i := *v.Int64
		res.Int64 = &i
	}
	if v.Float64 != nil {
		f := *v.Float64
		res.Float64 = &f
	}
	if v.Float32 != nil {
		f := *v.Float32
		res.Float32 = &f
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			res.Values[i] = vv.Clone()
		}
	}
	if v.Doc != nil {
		res.Doc = v.Doc.Clone()
	}
	return res
}

// Visit walks the value tree depth-first. f is called before and after
// descending into composite values, distinguished by isPost.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.Type {
		case ArrayType:
			for _, vv := range v.Values {
				if err := vv.Visit(f); err != nil {
					return err
				}
			}
		case ObjectType:
			err := v.Doc.Visit(func(_ string, vv *Value) error {
				return vv.Visit(f)
			})
			if err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
