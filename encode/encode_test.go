package encode

import (
	"strings"
	"testing"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/registry"
)

func testDoc() *ir.Document {
	inner := ir.New()
	inner.Set("d", ir.FromString("x"))
	doc := ir.New()
	doc.Set("a", ir.FromInt(1))
	doc.Set("b", ir.FromSlice([]*ir.Value{ir.FromBool(true), ir.Null()}))
	doc.Set("c", ir.FromDocument(inner))
	return doc
}

func TestEncodeCompact(t *testing.T) {
	got := MustString(testDoc())
	want := `{"a":1,"b":[true,null],"c":{"d":"x"}}`
	if got != want {
		t.Errorf("MustString = %q, want %q", got, want)
	}
}

func TestEncodePretty(t *testing.T) {
	got := PrettyString(testDoc(), 2)
	want := strings.Join([]string{
		`{`,
		`  "a": 1,`,
		`  "b": [`,
		`    true,`,
		`    null`,
		`  ],`,
		`  "c": {`,
		`    "d": "x"`,
		`  }`,
		`}`,
	}, "\n")
	if got != want {
		t.Errorf("PrettyString = %q, want %q", got, want)
	}
}

func TestEncodePrettyIndentWidth(t *testing.T) {
	doc := ir.New()
	doc.Set("a", ir.FromInt(1))
	got := PrettyString(doc, 4)
	want := "{\n    \"a\": 1\n}"
	if got != want {
		t.Errorf("PrettyString(4) = %q, want %q", got, want)
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	doc := ir.New()
	doc.Set("o", ir.FromDocument(ir.New()))
	doc.Set("a", ir.FromSlice(nil))
	if got, want := MustString(doc), `{"o":{},"a":[]}`; got != want {
		t.Errorf("compact = %q, want %q", got, want)
	}
	// empty containers carry no interior whitespace in pretty mode either
	want := "{\n  \"o\": {},\n  \"a\": []\n}"
	if got := PrettyString(doc, 2); got != want {
		t.Errorf("pretty = %q, want %q", got, want)
	}
}

func TestEncodeEmptyDocument(t *testing.T) {
	if got := MustString(ir.New()); got != "{}" {
		t.Errorf("MustString = %q, want {}", got)
	}
	if got := PrettyString(ir.New(), 2); got != "{}" {
		t.Errorf("PrettyString = %q, want {}", got)
	}
}

func TestEncodeNumbers(t *testing.T) {
	tests := []struct {
		v    *ir.Value
		want string
	}{
		{ir.FromInt32(5), "5"},
		{ir.FromInt32(-17), "-17"},
		{ir.FromInt64(5000000000), "5000000000"},
		{ir.FromFloat(5.5), "5.5"},
		// whole-valued floats keep a fractional marker
		{ir.FromFloat(1), "1.0"},
		{ir.FromFloat(1e14), "100000000000000.0"},
		{ir.FromFloat32(2.5), "2.5"},
		{ir.FromFloat32(3), "3.0"},
	}
	for _, tt := range tests {
		doc := ir.New()
		doc.Set("n", tt.v)
		want := `{"n":` + tt.want + `}`
		if got := MustString(doc); got != want {
			t.Errorf("MustString = %q, want %q", got, want)
		}
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	doc := ir.New()
	doc.Set("say \"hi\"", ir.FromString("a/b\nc"))
	want := `{"say \"hi\"":"a\/b\nc"}`
	if got := MustString(doc); got != want {
		t.Errorf("MustString = %q, want %q", got, want)
	}
}

type point struct {
	X int `structs:"x" mapstructure:"x"`
	Y int `structs:"y" mapstructure:"y"`
}

func TestEncodeTyped(t *testing.T) {
	reg := registry.New()
	if err := reg.Register(registry.Struct("geo.Point", point{})); err != nil {
		t.Fatal(err)
	}
	doc := ir.New()
	doc.Set("p", ir.FromTyped("geo.Point", point{X: 1, Y: 2}))
	got, err := String(doc, WithRegistry(reg))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"p":{"-x":"geo.Point","x":1,"y":2}}`
	if got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestEncodeTypedErrors(t *testing.T) {
	doc := ir.New()
	doc.Set("p", ir.FromTyped("geo.Point", point{}))
	if _, err := String(doc); err == nil {
		t.Error("typed value without registry encoded")
	}
	if _, err := String(doc, WithRegistry(registry.New())); err == nil {
		t.Error("typed value with unknown identifier encoded")
	}
}
