package main

import (
	"testing"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

func TestLookupPath(t *testing.T) {
	doc, err := parse.ParseString(`{"a":{"b":[10,{"c":"hit"}]},"d":4}`)
	if err != nil {
		t.Fatal(err)
	}
	root := ir.FromDocument(doc)
	tests := []struct {
		path string
		want string
	}{
		{"d", "4"},
		{"a.b.0", "10"},
		{"a.b.1.c", `"hit"`},
		{"a.b.1", `{"c":"hit"}`},
	}
	for _, tt := range tests {
		v, err := lookupPath(root, tt.path)
		if err != nil {
			t.Errorf("lookupPath(%q): %v", tt.path, err)
			continue
		}
		d := ir.New()
		d.Set("v", v)
		if got := encode.MustString(d); got != `{"v":`+tt.want+`}` {
			t.Errorf("lookupPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
	for _, bad := range []string{"z", "a.z", "a.b.9", "a.b.x", "d.k"} {
		if _, err := lookupPath(root, bad); err == nil {
			t.Errorf("lookupPath(%q) = nil error", bad)
		}
	}
}
