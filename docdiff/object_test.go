package docdiff

import (
	"testing"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

func mustParse(t *testing.T, in string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", in, err)
	}
	return doc
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string // compact encoding, "" for no diff
	}{
		{"equal", `{"a":1}`, `{"a":1}`, ""},
		{"equal empty", `{}`, `{}`, ""},
		{"changed", `{"a":1}`, `{"a":2}`, `{"a":{"from":1,"to":2}}`},
		{"inserted", `{}`, `{"a":1}`, `{"a":{"to":1}}`},
		{"deleted", `{"a":1}`, `{}`, `{"a":{"from":1}}`},
		{"kind change", `{"a":1}`, `{"a":"1"}`, `{"a":{"from":1,"to":"1"}}`},
		{
			"nested",
			`{"o":{"a":1,"b":2}}`,
			`{"o":{"a":1,"b":3}}`,
			`{"o":{"b":{"from":2,"to":3}}}`,
		},
		{
			"mixed",
			`{"keep":1,"drop":2,"change":3}`,
			`{"keep":1,"change":4,"add":5}`,
			`{"drop":{"from":2},"change":{"from":3,"to":4},"add":{"to":5}}`,
		},
		{
			"array replaced whole",
			`{"a":[1,2]}`,
			`{"a":[1,3]}`,
			`{"a":{"from":[1,2],"to":[1,3]}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := mustParse(t, tt.from)
			to := mustParse(t, tt.to)
			d := Diff(from, to)
			if tt.want == "" {
				if d != nil {
					t.Errorf("Diff = %s, want nil", encode.MustString(d))
				}
				return
			}
			if d == nil {
				t.Fatalf("Diff = nil, want %q", tt.want)
			}
			if got := encode.MustString(d); got != tt.want {
				t.Errorf("Diff = %q, want %q", got, tt.want)
			}
		})
	}
}
